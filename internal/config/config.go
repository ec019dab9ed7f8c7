package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"cnv/internal/cache"
	"cnv/internal/fetcher"
)

// ErrMissingAPIKey is returned when an upstream pull is requested without a key.
var ErrMissingAPIKey = errors.New("missing required configuration: CURRENCY_API_KEY")

// Config holds all configuration for cnv.
type Config struct {
	// Published daily rates document
	RatesURL string `mapstructure:"rates_url"`

	// Directory holding exchange_rates.json
	CacheDir string `mapstructure:"cache_dir"`

	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	LogLevel    string        `mapstructure:"log_level"`

	// Upstream source used by `rates pull`
	CurrencyAPIKey     string `mapstructure:"currency_api_key"`
	CurrencyAPIBaseURL string `mapstructure:"currency_api_base_url"`
	PullOutput         string `mapstructure:"pull_output"`
}

// Load reads configuration from a .env file, environment variables and an
// optional config file. Environment variables take precedence over config
// file values. Nothing is required here; commands validate what they use.
//
// Recognised environment variables:
//   - CNV_RATES_URL (optional, defaults to the published document)
//   - CNV_CACHE_DIR (optional, defaults to the user cache directory)
//   - CNV_HTTP_TIMEOUT (optional, e.g. "5s")
//   - CNV_LOG_LEVEL (debug, info, warn, error)
//   - CURRENCY_API_KEY (required by `rates pull`)
//   - CURRENCY_API_BASE_URL (optional, defaults to production)
//   - CNV_PULL_OUTPUT (optional, defaults to $HOME/currency_rates.json)
func Load() (*Config, error) {
	// A missing .env is the common case
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Debug("ignoring unreadable .env file", "error", err)
	}

	v := viper.New()

	v.SetDefault("rates_url", fetcher.DefaultRatesURL)
	v.SetDefault("http_timeout", fetcher.DefaultTimeout)
	v.SetDefault("log_level", "warn")
	v.SetDefault("currency_api_base_url", fetcher.DefaultCurrencyAPIBaseURL)

	if dir, err := cache.DefaultDir(); err == nil {
		v.SetDefault("cache_dir", dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.SetDefault("pull_output", filepath.Join(home, "currency_rates.json"))
	}

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.cnv")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindings := map[string]string{
		"rates_url":             "CNV_RATES_URL",
		"cache_dir":             "CNV_CACHE_DIR",
		"http_timeout":          "CNV_HTTP_TIMEOUT",
		"log_level":             "CNV_LOG_LEVEL",
		"currency_api_key":      "CURRENCY_API_KEY",
		"currency_api_base_url": "CURRENCY_API_BASE_URL",
		"pull_output":           "CNV_PULL_OUTPUT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.CacheDir == "" {
		return nil, fmt.Errorf("missing required configuration: CNV_CACHE_DIR (no user cache directory available)")
	}
	if config.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("invalid CNV_HTTP_TIMEOUT %s: must be positive", config.HTTPTimeout)
	}
	if _, err := ParseLevel(config.LogLevel); err != nil {
		return nil, err
	}

	return config, nil
}

// RequireCurrencyAPIKey reports ErrMissingAPIKey when no upstream key is set.
func (c *Config) RequireCurrencyAPIKey() error {
	if c.CurrencyAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// ParseLevel maps a log level name onto slog.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
