package storage

import (
	"context"
	"time"
)

// ModAction is an append-only audit record. Rows are never updated or
// deleted once written.
type ModAction struct {
	ID          int64
	GuildID     string
	ModeratorID string
	TargetID    string
	ActionType  string
	Reason      string
	CreatedAt   time.Time
}

type ModStats struct {
	Bans     int
	Kicks    int
	Timeouts int
}

func (s *Store) AddModAction(ctx context.Context, action ModAction) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO mod_actions (guild_id, moderator_id, target_id, action_type, reason, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`, action.GuildID, action.ModeratorID, action.TargetID, action.ActionType, action.Reason, action.CreatedAt.Unix())
	return err
}

func (s *Store) ListModActions(ctx context.Context, guildID string, limit int) ([]ModAction, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, moderator_id, target_id, action_type, COALESCE(reason, ''), timestamp
		FROM mod_actions WHERE guild_id = ?
		ORDER BY timestamp DESC LIMIT ?
	`, guildID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []ModAction
	for rows.Next() {
		action := ModAction{GuildID: guildID}
		var ts int64
		if err := rows.Scan(&action.ID, &action.ModeratorID, &action.TargetID, &action.ActionType, &action.Reason, &ts); err != nil {
			return nil, err
		}
		action.CreatedAt = time.Unix(ts, 0)
		actions = append(actions, action)
	}
	return actions, rows.Err()
}

// GetModStats aggregates ban/kick/timeout counts for one moderator in one
// guild. Unban rows stay in the ledger but are not counted here.
func (s *Store) GetModStats(ctx context.Context, guildID, moderatorID string) (ModStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT action_type, COUNT(*) FROM mod_actions
		WHERE guild_id = ? AND moderator_id = ?
		GROUP BY action_type
	`, guildID, moderatorID)
	if err != nil {
		return ModStats{}, err
	}
	defer rows.Close()

	var stats ModStats
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return ModStats{}, err
		}
		switch kind {
		case "ban":
			stats.Bans = count
		case "kick":
			stats.Kicks = count
		case "timeout":
			stats.Timeouts = count
		}
	}
	return stats, rows.Err()
}
