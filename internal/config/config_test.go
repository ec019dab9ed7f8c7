package config

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

var allVars = []string{
	"CNV_RATES_URL",
	"CNV_CACHE_DIR",
	"CNV_HTTP_TIMEOUT",
	"CNV_LOG_LEVEL",
	"CURRENCY_API_KEY",
	"CURRENCY_API_BASE_URL",
	"CNV_PULL_OUTPUT",
}

// clearEnv blanks every recognised variable for the duration of the test.
// Viper treats empty variables as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allVars {
		t.Setenv(key, "")
	}
	chdir(t, t.TempDir())
}

func TestLoad_Success(t *testing.T) {
	clearEnv(t)

	envVars := map[string]string{
		"CNV_RATES_URL":         "https://test.example.com/rates.json",
		"CNV_CACHE_DIR":         "/tmp/cnv-test",
		"CNV_HTTP_TIMEOUT":      "3s",
		"CNV_LOG_LEVEL":         "debug",
		"CURRENCY_API_KEY":      "test_currency_key",
		"CURRENCY_API_BASE_URL": "https://test.currencyapi.com/v3",
		"CNV_PULL_OUTPUT":       "/tmp/out.json",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"RatesURL", cfg.RatesURL, "https://test.example.com/rates.json"},
		{"CacheDir", cfg.CacheDir, "/tmp/cnv-test"},
		{"LogLevel", cfg.LogLevel, "debug"},
		{"CurrencyAPIKey", cfg.CurrencyAPIKey, "test_currency_key"},
		{"CurrencyAPIBaseURL", cfg.CurrencyAPIBaseURL, "https://test.currencyapi.com/v3"},
		{"PullOutput", cfg.PullOutput, "/tmp/out.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}

	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("HTTPTimeout = %v, want 3s", cfg.HTTPTimeout)
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.RatesURL != "https://api.neerrrajj.me/currency_rates.json" {
		t.Errorf("RatesURL = %q", cfg.RatesURL)
	}
	if cfg.CurrencyAPIBaseURL != "https://api.currencyapi.com/v3" {
		t.Errorf("CurrencyAPIBaseURL = %q", cfg.CurrencyAPIBaseURL)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("HTTPTimeout = %v, want 10s", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if !strings.HasSuffix(cfg.CacheDir, "cnv") {
		t.Errorf("CacheDir = %q, want a cnv directory", cfg.CacheDir)
	}
	if !strings.HasSuffix(cfg.PullOutput, "currency_rates.json") {
		t.Errorf("PullOutput = %q", cfg.PullOutput)
	}
	if err := cfg.RequireCurrencyAPIKey(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("RequireCurrencyAPIKey() = %v, want ErrMissingAPIKey", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		key, value  string
		wantErrText string
	}{
		{"bad timeout", "CNV_HTTP_TIMEOUT", "-1s", "CNV_HTTP_TIMEOUT"},
		{"bad log level", "CNV_LOG_LEVEL", "loud", "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErrText) {
				t.Errorf("Load() error = %q, want error containing %q", err.Error(), tt.wantErrText)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
