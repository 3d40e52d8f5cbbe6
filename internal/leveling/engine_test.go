package leveling

import (
	"context"
	"testing"

	"yuno/internal/storage"
)

type fixedRand struct{ value int }

func (f fixedRand) Intn(n int) int { return f.value }

func newTestEngine(t *testing.T, r Rand) (*Engine, *storage.Store) {
	t.Helper()
	store, err := storage.New(":memory:")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(store.Close)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	engine := NewEngine(store)
	engine.WithRand(r)
	return engine, store
}

func TestLevelFormula(t *testing.T) {
	cases := []struct {
		xp   int64
		want int
	}{
		{0, 0},
		{99, 0},
		{100, 1},
		{399, 1},
		{400, 2},
		{10000, 10},
	}
	for _, tc := range cases {
		if got := Level(tc.xp); got != tc.want {
			t.Fatalf("Level(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestAwardAccumulates(t *testing.T) {
	// Intn always 0, so every gain is exactly 15.
	engine, store := newTestEngine(t, fixedRand{value: 0})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := engine.Award(ctx, "u1", "g1"); err != nil {
			t.Fatalf("award: %v", err)
		}
	}

	got, err := store.GetUserXP(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("get user xp: %v", err)
	}
	if got.XP != 45 {
		t.Fatalf("expected 45 xp, got %d", got.XP)
	}
	if got.Level != 0 {
		t.Fatalf("expected level 0, got %d", got.Level)
	}
}

func TestAwardEmitsLevelUp(t *testing.T) {
	engine, store := newTestEngine(t, fixedRand{value: 10})
	ctx := context.Background()

	// 90 stored + 25 pushes past the 100 xp boundary.
	if err := store.AddXP(ctx, "u1", "g1", 90); err != nil {
		t.Fatalf("seed xp: %v", err)
	}

	levelUp, err := engine.Award(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if levelUp == nil {
		t.Fatalf("expected level-up event")
	}
	if levelUp.Level != 1 || levelUp.GuildID != "g1" || levelUp.UserID != "u1" {
		t.Fatalf("unexpected event: %+v", levelUp)
	}

	got, _ := store.GetUserXP(ctx, "u1", "g1")
	if got.Level != 1 {
		t.Fatalf("level not persisted: %+v", got)
	}
}

func TestAwardNeverLowersLevel(t *testing.T) {
	engine, store := newTestEngine(t, fixedRand{value: 0})
	ctx := context.Background()

	// Stored level is far above what the xp justifies; the ratchet keeps it.
	if err := store.AddXP(ctx, "u1", "g1", 50); err != nil {
		t.Fatalf("seed xp: %v", err)
	}
	if err := store.SetLevel(ctx, "u1", "g1", 7); err != nil {
		t.Fatalf("seed level: %v", err)
	}

	levelUp, err := engine.Award(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if levelUp != nil {
		t.Fatalf("unexpected level-up: %+v", levelUp)
	}

	got, _ := store.GetUserXP(ctx, "u1", "g1")
	if got.Level != 7 {
		t.Fatalf("level lowered to %d", got.Level)
	}
}

func TestNextLevelXP(t *testing.T) {
	if got := NextLevelXP(0); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := NextLevelXP(2); got != 900 {
		t.Fatalf("expected 900, got %d", got)
	}
}
