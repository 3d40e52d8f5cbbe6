package storage

import (
	"context"
	"testing"
	"time"
)

func addAction(t *testing.T, store *Store, moderator, kind string, at time.Time) {
	t.Helper()
	err := store.AddModAction(context.Background(), ModAction{
		GuildID:     "g1",
		ModeratorID: moderator,
		TargetID:    "t1",
		ActionType:  kind,
		Reason:      "No reason provided",
		CreatedAt:   at,
	})
	if err != nil {
		t.Fatalf("add mod action: %v", err)
	}
}

func TestGetModStats(t *testing.T) {
	store := newTestStore(t)
	now := time.Unix(1700000000, 0)

	addAction(t, store, "m1", "ban", now)
	addAction(t, store, "m1", "ban", now)
	addAction(t, store, "m1", "kick", now)
	addAction(t, store, "m1", "unban", now)
	addAction(t, store, "m2", "timeout", now)

	stats, err := store.GetModStats(context.Background(), "g1", "m1")
	if err != nil {
		t.Fatalf("get mod stats: %v", err)
	}
	if stats.Bans != 2 || stats.Kicks != 1 || stats.Timeouts != 0 {
		t.Fatalf("expected (2,1,0), got %+v", stats)
	}
}

func TestGetModStatsEmpty(t *testing.T) {
	store := newTestStore(t)

	stats, err := store.GetModStats(context.Background(), "g1", "nobody")
	if err != nil {
		t.Fatalf("get mod stats: %v", err)
	}
	if stats != (ModStats{}) {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestListModActionsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	base := time.Unix(1700000000, 0)

	addAction(t, store, "m1", "ban", base)
	addAction(t, store, "m1", "unban", base.Add(time.Hour))

	actions, err := store.ListModActions(context.Background(), "g1", 0)
	if err != nil {
		t.Fatalf("list mod actions: %v", err)
	}
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	if actions[0].ActionType != "unban" {
		t.Fatalf("expected newest first, got %+v", actions)
	}
	// Unban rows stay retrievable even though stats exclude them.
	if actions[0].CreatedAt.Unix() != base.Add(time.Hour).Unix() {
		t.Fatalf("timestamp not preserved: %v", actions[0].CreatedAt)
	}
}
