package storage

import (
	"context"
	"testing"
)

func TestAddXPCreatesThenIncrements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.AddXP(ctx, "u1", "g1", 20); err != nil {
		t.Fatalf("add xp: %v", err)
	}
	if err := store.AddXP(ctx, "u1", "g1", 15); err != nil {
		t.Fatalf("add xp: %v", err)
	}

	got, err := store.GetUserXP(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("get user xp: %v", err)
	}
	if got.XP != 35 || got.Level != 0 {
		t.Fatalf("expected xp=35 level=0, got %+v", got)
	}
}

func TestGetUserXPMissingRow(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetUserXP(context.Background(), "nobody", "g1")
	if err != nil {
		t.Fatalf("get user xp: %v", err)
	}
	if got.XP != 0 || got.Level != 0 {
		t.Fatalf("expected zero defaults, got %+v", got)
	}
}

func TestSetLevel(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.AddXP(ctx, "u1", "g1", 450); err != nil {
		t.Fatalf("add xp: %v", err)
	}
	if err := store.SetLevel(ctx, "u1", "g1", 2); err != nil {
		t.Fatalf("set level: %v", err)
	}

	got, err := store.GetUserXP(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("get user xp: %v", err)
	}
	if got.Level != 2 {
		t.Fatalf("expected level 2, got %d", got.Level)
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.AddXP(ctx, "u1", "g1", 100)
	_ = store.AddXP(ctx, "u2", "g1", 300)
	_ = store.AddXP(ctx, "u3", "g1", 200)
	_ = store.AddXP(ctx, "u4", "g2", 999)

	entries, err := store.Leaderboard(ctx, "g1", 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].UserID != "u2" || entries[1].UserID != "u3" || entries[2].UserID != "u1" {
		t.Fatalf("wrong order: %+v", entries)
	}
}

func TestLeaderboardTiesAndLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, user := range []string{"b", "a", "c"} {
		_ = store.AddXP(ctx, user, "g1", 50)
	}

	entries, err := store.Leaderboard(ctx, "g1", 2)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].UserID != "a" || entries[1].UserID != "b" {
		t.Fatalf("ties should break on user id: %+v", entries)
	}
}

func TestLeaderboardEmptyGuild(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.Leaderboard(context.Background(), "empty", 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}
