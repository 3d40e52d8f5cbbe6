package storage

import (
	"context"
	"database/sql"
	"errors"
)

// AutoCleanConfig is a placeholder surface for scheduled channel cleaning.
// The schema is kept for persistence-format compatibility; no job reads it.
type AutoCleanConfig struct {
	GuildID         string
	ChannelID       string
	IntervalMinutes int
	MessageCount    int
	Enabled         bool
}

func (s *Store) UpsertAutoClean(ctx context.Context, cfg AutoCleanConfig) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO auto_clean_config (guild_id, channel_id, interval_minutes, message_count, enabled)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(guild_id, channel_id) DO UPDATE SET
			interval_minutes = excluded.interval_minutes,
			message_count = excluded.message_count,
			enabled = excluded.enabled
	`, cfg.GuildID, cfg.ChannelID, cfg.IntervalMinutes, cfg.MessageCount, boolToInt(cfg.Enabled))
	return err
}

func (s *Store) GetAutoClean(ctx context.Context, guildID, channelID string) (AutoCleanConfig, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT interval_minutes, message_count, enabled
		FROM auto_clean_config WHERE guild_id = ? AND channel_id = ?
	`, guildID, channelID)

	cfg := AutoCleanConfig{GuildID: guildID, ChannelID: channelID}
	var enabled int
	if err := row.Scan(&cfg.IntervalMinutes, &cfg.MessageCount, &enabled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutoCleanConfig{}, false, nil
		}
		return AutoCleanConfig{}, false, err
	}
	cfg.Enabled = enabled == 1
	return cfg, true, nil
}

func (s *Store) ListAutoClean(ctx context.Context, guildID string) ([]AutoCleanConfig, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT channel_id, interval_minutes, message_count, enabled
		FROM auto_clean_config WHERE guild_id = ? ORDER BY channel_id
	`, guildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []AutoCleanConfig
	for rows.Next() {
		cfg := AutoCleanConfig{GuildID: guildID}
		var enabled int
		if err := rows.Scan(&cfg.ChannelID, &cfg.IntervalMinutes, &cfg.MessageCount, &enabled); err != nil {
			return nil, err
		}
		cfg.Enabled = enabled == 1
		configs = append(configs, cfg)
	}
	return configs, rows.Err()
}

func (s *Store) DeleteAutoClean(ctx context.Context, guildID, channelID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM auto_clean_config WHERE guild_id = ? AND channel_id = ?
	`, guildID, channelID)
	return err
}
