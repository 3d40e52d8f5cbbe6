package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Store struct {
	db *sql.DB
}

// GuildSettings is one row per guild, created lazily on first write.
// Identifiers are decimal strings end to end so 64-bit snowflakes survive
// the storage layer intact.
type GuildSettings struct {
	GuildID           string
	Prefix            string
	SpamFilterEnabled bool
	LevelingEnabled   bool
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

func (s *Store) Migrate() error {
	entries, err := migrations.ReadDir("migrations")
	if err != nil {
		return err
	}

	var files []string
	for _, entry := range entries {
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := migrations.ReadFile(path.Join("migrations", file))
		if err != nil {
			return err
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			if isIgnorableMigrationError(err) {
				continue
			}
			return fmt.Errorf("migration %s failed: %w", file, err)
		}
	}
	return nil
}

// GetGuildSettings returns the stored settings for guildID, or the defaults
// (given prefix, leveling on, spam filter off) when no row exists yet.
func (s *Store) GetGuildSettings(ctx context.Context, guildID, defaultPrefix string) (GuildSettings, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT prefix, spam_filter_enabled, leveling_enabled
		FROM guild_settings WHERE guild_id = ?`, guildID)

	result := GuildSettings{
		GuildID:         guildID,
		Prefix:          defaultPrefix,
		LevelingEnabled: true,
	}

	var spamFilter, leveling int
	err := row.Scan(&result.Prefix, &spamFilter, &leveling)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return result, nil
		}
		return GuildSettings{}, err
	}
	result.SpamFilterEnabled = spamFilter == 1
	result.LevelingEnabled = leveling == 1
	if result.Prefix == "" {
		result.Prefix = defaultPrefix
	}
	return result, nil
}

func (s *Store) UpsertGuildSettings(ctx context.Context, settings GuildSettings) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO guild_settings (guild_id, prefix, spam_filter_enabled, leveling_enabled)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET
			prefix = excluded.prefix,
			spam_filter_enabled = excluded.spam_filter_enabled,
			leveling_enabled = excluded.leveling_enabled
	`,
		settings.GuildID,
		settings.Prefix,
		boolToInt(settings.SpamFilterEnabled),
		boolToInt(settings.LevelingEnabled),
	)
	return err
}

func (s *Store) GetPrefix(ctx context.Context, guildID, defaultPrefix string) (string, error) {
	settings, err := s.GetGuildSettings(ctx, guildID, defaultPrefix)
	if err != nil {
		return "", err
	}
	return settings.Prefix, nil
}

// SetPrefix updates the prefix, creating the settings row with defaults when
// the guild has none yet.
func (s *Store) SetPrefix(ctx context.Context, guildID, prefix string) error {
	settings, err := s.GetGuildSettings(ctx, guildID, prefix)
	if err != nil {
		return err
	}
	settings.Prefix = prefix
	return s.UpsertGuildSettings(ctx, settings)
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func isIgnorableMigrationError(err error) bool {
	if err == nil {
		return false
	}
	message := err.Error()
	return strings.Contains(message, "duplicate column name") || strings.Contains(message, "already exists")
}
