package modlog

import (
	"context"
	"time"

	"yuno/internal/storage"

	"go.uber.org/zap"
)

const (
	ActionBan     = "ban"
	ActionKick    = "kick"
	ActionUnban   = "unban"
	ActionTimeout = "timeout"
)

const defaultReason = "No reason provided"

// Recorder appends immutable moderation records and aggregates per-moderator
// counts. Callers pass one of the Action* kinds; the kind is trusted.
type Recorder struct {
	store  *storage.Store
	logger *zap.Logger
}

func NewRecorder(store *storage.Store, logger *zap.Logger) *Recorder {
	return &Recorder{store: store, logger: logger}
}

func (r *Recorder) Record(ctx context.Context, guildID, moderatorID, targetID, kind, reason string, at time.Time) error {
	if reason == "" {
		reason = defaultReason
	}
	action := storage.ModAction{
		GuildID:     guildID,
		ModeratorID: moderatorID,
		TargetID:    targetID,
		ActionType:  kind,
		Reason:      reason,
		CreatedAt:   at,
	}
	if err := r.store.AddModAction(ctx, action); err != nil {
		return err
	}
	r.logger.Info("mod action",
		zap.String("guild_id", guildID),
		zap.String("moderator_id", moderatorID),
		zap.String("target_id", targetID),
		zap.String("action", kind),
		zap.String("reason", reason))
	return nil
}

// StatsFor returns ban/kick/timeout counts for a moderator. Unban actions
// are in the ledger but stay out of the triple.
func (r *Recorder) StatsFor(ctx context.Context, guildID, moderatorID string) (storage.ModStats, error) {
	return r.store.GetModStats(ctx, guildID, moderatorID)
}

// Recent exposes the raw ledger, newest first.
func (r *Recorder) Recent(ctx context.Context, guildID string, limit int) ([]storage.ModAction, error) {
	return r.store.ListModActions(ctx, guildID, limit)
}
