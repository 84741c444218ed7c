package bot

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
	"github.com/sglre6355/dispatchbot/internal/framework"
)

// Config holds the bot configuration loaded from environment variables.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,notEmpty"`

	Prefix         string   `env:"BOT_PREFIX"          envDefault:"~"`
	OnMention      bool     `env:"BOT_ON_MENTION"      envDefault:"true"`
	WithWhitespace bool     `env:"BOT_WITH_WHITESPACE" envDefault:"true"`
	Delimiters     []string `env:"BOT_DELIMITERS"      envSeparator:"|"`

	Owners         []uint64 `env:"BOT_OWNERS"          envSeparator:","`
	OwnerPrivilege bool     `env:"BOT_OWNER_PRIVILEGE" envDefault:"true"`
	IgnoreBots     bool     `env:"BOT_IGNORE_BOTS"     envDefault:"true"`
	BlockedUsers   []uint64 `env:"BOT_BLOCKED_USERS"   envSeparator:","`

	// Outbound messages per second and burst size.
	SendRate  float64 `env:"SEND_RATE"  envDefault:"5"`
	SendBurst int     `env:"SEND_BURST" envDefault:"5"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// LoadConfig loads configuration from a .env file, if present, and then from
// environment variables. Variables already set take precedence over .env.
// Returns an error if required fields are missing.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.SendRate <= 0 || cfg.SendBurst < 1 {
		return nil, fmt.Errorf("invalid send rate %v with burst %d", cfg.SendRate, cfg.SendBurst)
	}

	return cfg, nil
}

// Framework returns the dispatch configuration described by c.
func (c *Config) Framework() framework.Configuration {
	cfg := framework.DefaultConfiguration()
	cfg.Prefix = c.Prefix
	cfg.OnMention = c.OnMention
	cfg.WithWhitespace = c.WithWhitespace
	if len(c.Delimiters) > 0 {
		cfg.Delimiters = c.Delimiters
	}
	cfg.Owners = toSnowflakes(c.Owners)
	cfg.OwnerPrivilege = c.OwnerPrivilege
	cfg.IgnoreBots = c.IgnoreBots
	cfg.BlockedUsers = toSnowflakes(c.BlockedUsers)
	return cfg
}

func toSnowflakes(ids []uint64) []snowflake.ID {
	result := make([]snowflake.ID, len(ids))
	for i, id := range ids {
		result[i] = snowflake.ID(id)
	}
	return result
}
