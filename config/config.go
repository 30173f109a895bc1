// File: config/config.go

package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/teilomillet/msgkit/utils"
)

// Config holds the library-wide defaults: logging verbosity, the
// separator used when plain-text runs are joined, and the history
// store's token accounting.
type Config struct {
	LogLevel         utils.LogLevel `env:"MSGKIT_LOG_LEVEL" envDefault:"WARN"`
	Separator        string         `env:"MSGKIT_SEPARATOR"`
	HistoryMaxTokens int            `env:"MSGKIT_HISTORY_MAX_TOKENS" validate:"min=0"`
	TokenizerModel   string         `env:"MSGKIT_TOKENIZER_MODEL" validate:"required"`
}

// NewConfig returns a Config with code defaults: warn-level logging,
// newline separator, no history token budget, gpt-4o tokenizer.
func NewConfig() *Config {
	return &Config{
		LogLevel:         utils.LogLevelWarn,
		Separator:        "\n",
		HistoryMaxTokens: 0,
		TokenizerModel:   "gpt-4o",
	}
}

// LoadConfig builds a Config from code defaults overridden by MSGKIT_*
// environment variables, then validates it.
func LoadConfig() (*Config, error) {
	cfg := NewConfig()
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

type ConfigOption func(*Config)

func SetLogLevel(level utils.LogLevel) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

func SetSeparator(sep string) ConfigOption {
	return func(c *Config) {
		c.Separator = sep
	}
}

func SetHistoryMaxTokens(maxTokens int) ConfigOption {
	return func(c *Config) {
		c.HistoryMaxTokens = maxTokens
	}
}

func SetTokenizerModel(model string) ConfigOption {
	return func(c *Config) {
		c.TokenizerModel = model
	}
}

// ApplyOptions applies the given options to the Config.
func ApplyOptions(c *Config, opts ...ConfigOption) *Config {
	for _, opt := range opts {
		opt(c)
	}
	return c
}
