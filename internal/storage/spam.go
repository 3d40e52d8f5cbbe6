package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type SpamWarning struct {
	UserID      string
	GuildID     string
	Warnings    int
	LastWarning time.Time
}

// AddSpamWarning increments the warning counter for (user, guild) and
// returns the new count.
func (s *Store) AddSpamWarning(ctx context.Context, userID, guildID string, now time.Time) (int, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO spam_warnings (user_id, guild_id, warnings, last_warning)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(user_id, guild_id) DO UPDATE SET
			warnings = warnings + 1,
			last_warning = excluded.last_warning
	`, userID, guildID, now.Unix())
	if err != nil {
		return 0, err
	}
	return s.GetSpamWarnings(ctx, userID, guildID)
}

func (s *Store) GetSpamWarnings(ctx context.Context, userID, guildID string) (int, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT warnings FROM spam_warnings WHERE user_id = ? AND guild_id = ?
	`, userID, guildID)

	var warnings int
	if err := row.Scan(&warnings); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return warnings, nil
}

func (s *Store) ResetSpamWarnings(ctx context.Context, userID, guildID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM spam_warnings WHERE user_id = ? AND guild_id = ?
	`, userID, guildID)
	return err
}
