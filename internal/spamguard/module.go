package spamguard

import (
	"context"
	"time"

	"yuno/internal/storage"
)

// Module is the warning-counter surface for a spam filter that is not wired
// to any command yet. It only counts; detection lives elsewhere, if ever.
type Module struct {
	store       *storage.Store
	maxWarnings int
}

func New(store *storage.Store, maxWarnings int) *Module {
	return &Module{store: store, maxWarnings: maxWarnings}
}

// Warn bumps the counter and reports whether the configured threshold has
// been reached.
func (m *Module) Warn(ctx context.Context, userID, guildID string, now time.Time) (int, bool, error) {
	count, err := m.store.AddSpamWarning(ctx, userID, guildID, now)
	if err != nil {
		return 0, false, err
	}
	return count, m.maxWarnings > 0 && count >= m.maxWarnings, nil
}

func (m *Module) Warnings(ctx context.Context, userID, guildID string) (int, error) {
	return m.store.GetSpamWarnings(ctx, userID, guildID)
}

func (m *Module) Forgive(ctx context.Context, userID, guildID string) error {
	return m.store.ResetSpamWarnings(ctx, userID, guildID)
}
