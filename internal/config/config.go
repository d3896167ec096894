// Package config loads server configuration from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Config is the server configuration. Every field maps to an
// RPG_PROGRESSION_ prefixed environment variable.
type Config struct {
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`

	RedisAddr         string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize     int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	RedisUseTLS       bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	// TxAttempts bounds optimistic retries of a unit of work
	TxAttempts int `env:"TX_ATTEMPTS" envDefault:"3"`

	// OpenAIAPIKey enables transition suggestions when set
	OpenAIAPIKey      string        `env:"OPENAI_API_KEY"`
	OpenAIModel       string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL     string        `env:"OPENAI_BASE_URL"`
	SuggestionTimeout time.Duration `env:"SUGGESTION_TIMEOUT" envDefault:"5s"`

	// DnD5eAPIURL enables equipment weights for carrying capacity when set
	DnD5eAPIURL      string        `env:"DND5E_API_URL"`
	DnD5eAPICacheTTL time.Duration `env:"DND5E_API_CACHE_TTL" envDefault:"24h"`

	// OTelEndpoint enables tracing when set
	OTelEndpoint string `env:"OTEL_ENDPOINT"`

	ThemeCatalogPath string `env:"THEME_CATALOG" envDefault:"data/themes.yaml"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "RPG_PROGRESSION_"})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and required values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	errors.ValidatePositive("REDIS_POOL_SIZE", int64(c.RedisPoolSize), vb)
	errors.ValidatePositive("TX_ATTEMPTS", int64(c.TxAttempts), vb)
	errors.ValidatePositive("SUGGESTION_TIMEOUT", int64(c.SuggestionTimeout), vb)
	errors.ValidateRequired("THEME_CATALOG", c.ThemeCatalogPath, vb)
	errors.ValidateEnum("LOG_LEVEL", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	return vb.Build()
}

// SuggestionsEnabled reports whether an LLM is configured
func (c *Config) SuggestionsEnabled() bool {
	return c.OpenAIAPIKey != ""
}
