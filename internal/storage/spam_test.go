package storage

import (
	"context"
	"testing"
	"time"
)

func TestSpamWarningsIncrementAndReset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Unix(1700000000, 0)

	count, err := store.AddSpamWarning(ctx, "u1", "g1", now)
	if err != nil {
		t.Fatalf("add spam warning: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1, got %d", count)
	}

	count, err = store.AddSpamWarning(ctx, "u1", "g1", now.Add(time.Minute))
	if err != nil {
		t.Fatalf("add spam warning: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2, got %d", count)
	}

	if err := store.ResetSpamWarnings(ctx, "u1", "g1"); err != nil {
		t.Fatalf("reset spam warnings: %v", err)
	}
	count, err = store.GetSpamWarnings(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("get spam warnings: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 after reset, got %d", count)
	}
}

func TestAutoCleanRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cfg := AutoCleanConfig{
		GuildID:         "g1",
		ChannelID:       "c1",
		IntervalMinutes: 30,
		MessageCount:    50,
		Enabled:         true,
	}
	if err := store.UpsertAutoClean(ctx, cfg); err != nil {
		t.Fatalf("upsert auto clean: %v", err)
	}

	got, found, err := store.GetAutoClean(ctx, "g1", "c1")
	if err != nil {
		t.Fatalf("get auto clean: %v", err)
	}
	if !found || got != cfg {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if _, found, _ := store.GetAutoClean(ctx, "g1", "other"); found {
		t.Fatalf("expected missing row")
	}

	if err := store.DeleteAutoClean(ctx, "g1", "c1"); err != nil {
		t.Fatalf("delete auto clean: %v", err)
	}
	configs, err := store.ListAutoClean(ctx, "g1")
	if err != nil {
		t.Fatalf("list auto clean: %v", err)
	}
	if len(configs) != 0 {
		t.Fatalf("expected empty list, got %+v", configs)
	}
}
