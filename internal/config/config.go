package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Discord   DiscordConfig
	Redis     RedisConfig
	PokeAPI   PokeAPIConfig
	Log       LogConfig
	Metrics   MetricsConfig
	RateLimit RateLimitConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN,required,notEmpty"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds the profile store connection
type RedisConfig struct {
	URL string `env:"REDIS_URL,required,notEmpty"` // e.g. redis://localhost:6379/0
}

// PokeAPIConfig holds move provider configuration
type PokeAPIConfig struct {
	BaseURL string        `env:"POKEAPI_URL" envDefault:"https://pokeapi.co/api/v2"`
	Timeout time.Duration `env:"POKEAPI_TIMEOUT" envDefault:"10s"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"` // console or json
}

// MetricsConfig controls the metrics and health listener. Empty Addr disables it.
type MetricsConfig struct {
	Addr string `env:"METRICS_ADDR"`
}

// RateLimitConfig bounds interactions per user
type RateLimitConfig struct {
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom loads configuration from the given variables instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, pkerr.WrapWithCode(err, pkerr.CodeInvalidArgument, "invalid configuration")
	}

	if cfg.RateLimit.PerMinute < 1 {
		return nil, pkerr.InvalidArgumentf("RATE_LIMIT_PER_MINUTE must be positive, got %d", cfg.RateLimit.PerMinute)
	}
	if cfg.PokeAPI.Timeout <= 0 {
		return nil, pkerr.InvalidArgumentf("POKEAPI_TIMEOUT must be positive, got %s", cfg.PokeAPI.Timeout)
	}

	return cfg, nil
}
