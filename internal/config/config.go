package config

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DiscordToken         string   `json:"discord_token" yaml:"discord_token"`
	DefaultPrefix        string   `json:"default_prefix" yaml:"default_prefix"`
	DatabasePath         string   `json:"database_path" yaml:"database_path"`
	MasterUsers          []string `json:"master_users" yaml:"master_users"`
	SpamMaxWarnings      int      `json:"spam_max_warnings" yaml:"spam_max_warnings"`
	DMMessage            string   `json:"dm_message" yaml:"dm_message"`
	InsufficientPermsMsg string   `json:"insufficient_permissions_message" yaml:"insufficient_permissions_message"`
	LogLevel             string   `json:"log_level" yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		DefaultPrefix:        ".",
		DatabasePath:         "yuno.db",
		SpamMaxWarnings:      3,
		DMMessage:            "I'm just a bot :'(. I can't answer to you.",
		InsufficientPermsMsg: "${author} You don't have permission to do that~",
		LogLevel:             "info",
	}
}

// ResolvePath picks the config file path: first positional argument, then the
// CONFIG_PATH environment variable, then config.json.
func ResolvePath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.json"
}

// Load reads the config file at path and applies environment overrides.
// A missing file is not an error: the environment alone can carry a full
// configuration. YAML files are recognized by extension, everything else
// parses as JSON.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err == nil {
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, err
			}
		} else {
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Config{}, err
			}
		}
	}

	applyEnv(&cfg)
	if cfg.DiscordToken == "" {
		return Config{}, errors.New("DISCORD_TOKEN is required")
	}
	if cfg.DefaultPrefix == "" {
		cfg.DefaultPrefix = "."
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.DiscordToken = envString("DISCORD_TOKEN", cfg.DiscordToken)
	cfg.DefaultPrefix = envString("DEFAULT_PREFIX", cfg.DefaultPrefix)
	cfg.DatabasePath = envString("DATABASE_PATH", cfg.DatabasePath)
	cfg.DMMessage = envString("DM_MESSAGE", cfg.DMMessage)
	cfg.SpamMaxWarnings = envInt("SPAM_MAX_WARNINGS", cfg.SpamMaxWarnings)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	if master := os.Getenv("MASTER_USER"); master != "" {
		cfg.MasterUsers = append(cfg.MasterUsers, master)
	}
}

func (c Config) IsMasterUser(userID string) bool {
	for _, id := range c.MasterUsers {
		if id == userID {
			return true
		}
	}
	return false
}

func BuildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl := strings.ToLower(level)
	switch lvl {
	case "debug", "info", "warn", "error":
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(lvl))
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	return cfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
