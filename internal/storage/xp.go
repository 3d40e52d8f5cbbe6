package storage

import (
	"context"
	"database/sql"
	"errors"
)

type UserXP struct {
	UserID  string
	GuildID string
	XP      int64
	Level   int
}

func (s *Store) GetUserXP(ctx context.Context, userID, guildID string) (UserXP, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT xp, level FROM user_xp WHERE user_id = ? AND guild_id = ?
	`, userID, guildID)

	result := UserXP{UserID: userID, GuildID: guildID}
	err := row.Scan(&result.XP, &result.Level)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result, nil
		}
		return UserXP{}, err
	}
	return result, nil
}

// AddXP increments the stored experience, creating the row at level 0 on
// first gain.
func (s *Store) AddXP(ctx context.Context, userID, guildID string, amount int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_xp (user_id, guild_id, xp, level)
		VALUES (?, ?, ?, 0)
		ON CONFLICT(user_id, guild_id) DO UPDATE SET xp = xp + excluded.xp
	`, userID, guildID, amount)
	return err
}

func (s *Store) SetLevel(ctx context.Context, userID, guildID string, level int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE user_xp SET level = ? WHERE user_id = ? AND guild_id = ?
	`, level, userID, guildID)
	return err
}

// Leaderboard returns the top users of a guild by experience. Ties break on
// ascending user id so the ordering is deterministic.
func (s *Store) Leaderboard(ctx context.Context, guildID string, limit int) ([]UserXP, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, xp, level FROM user_xp
		WHERE guild_id = ?
		ORDER BY xp DESC, user_id ASC
		LIMIT ?
	`, guildID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []UserXP
	for rows.Next() {
		entry := UserXP{GuildID: guildID}
		if err := rows.Scan(&entry.UserID, &entry.XP, &entry.Level); err != nil {
			return nil, err
		}
		results = append(results, entry)
	}
	return results, rows.Err()
}
