package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cnv/internal/cache"
	"cnv/internal/config"
	"cnv/internal/currency"
	"cnv/internal/fetcher"
	"cnv/internal/testutil"
	"cnv/internal/units"
)

const ratesBody = `{"meta":{"last_updated_at":"2024-05-14T09:30:00Z"},"data":{"USD":{"code":"USD","value":1},"EUR":{"code":"EUR","value":0.9}}}`

var today = time.Date(2024, 5, 14, 18, 0, 0, 0, time.UTC)

type harness struct {
	app      *App
	out, err *bytes.Buffer
	cacheDir string
}

func newHarness(t *testing.T, ratesURL string) *harness {
	t.Helper()
	color.NoColor = true

	h := &harness{
		out:      &bytes.Buffer{},
		err:      &bytes.Buffer{},
		cacheDir: filepath.Join(t.TempDir(), "cnv"),
	}
	h.app = &App{
		Config: &config.Config{
			RatesURL:    ratesURL,
			CacheDir:    h.cacheDir,
			HTTPTimeout: 5 * time.Second,
			PullOutput:  filepath.Join(t.TempDir(), "currency_rates.json"),
		},
		Out:          h.out,
		Err:          h.err,
		Clock:        testutil.NewClock(today),
		FetchOptions: []fetcher.Option{fetcher.WithRetries(0, time.Millisecond, time.Millisecond)},
	}
	return h
}

func (h *harness) run(args ...string) int {
	h.out.Reset()
	h.err.Reset()
	return Execute(context.Background(), h.app, args)
}

func frame(line string) string {
	dashes := ""
	for i := 0; i <= len(line); i++ {
		dashes += "-"
	}
	return dashes + "\n" + line + "\n" + dashes + "\n"
}

func TestUnitConversions(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"dist", "1", "km", "m"}, "1 km = 1000 m"},
		{[]string{"distance", "1", "mi", "km"}, "1 mi = 1.6093 km"},
		{[]string{"temp", "0", "c", "f"}, "0 c = 32 f"},
		{[]string{"temp", "--", "-40", "c", "f"}, "-40 c = -40 f"},
		{[]string{"weight", "1", "kg", "g"}, "1 kg = 1000 g"},
		{[]string{"storage", "1", "KB", "b"}, "1 KB = 8000 b"},
		{[]string{"transfer", "100", "Mbps", "MB/s"}, "100 Mbps = 12.5 MB/s"},
		{[]string{"time", "1.5", "h", "min"}, "1.5 h = 90 min"},
		{[]string{"area", "1", "ha", "m2"}, "1 ha = 10000 m2"},
		{[]string{"speed", "36", "km/h", "m/s"}, "36 km/h = 10 m/s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			h := newHarness(t, "")
			require.Equal(t, ExitOK, h.run(tt.args...), h.err.String())
			assert.Equal(t, frame(tt.want), h.out.String())
		})
	}
}

func TestUnitList(t *testing.T) {
	h := newHarness(t, "")

	for _, flag := range []string{"--list", "-L"} {
		require.Equal(t, ExitOK, h.run("dist", flag))
		assert.Contains(t, h.out.String(), "List of supported units")
		assert.Contains(t, h.out.String(), "* Kilometer : km, kms")
	}

	conv, ok := units.For(units.Temperature)
	require.True(t, ok)
	require.Equal(t, ExitOK, h.run("temp", "--list"))
	assert.Equal(t, conv.Help(), h.out.String())
}

func TestUsageAndInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		code    int
		wantErr string
	}{
		{"unknown unit", []string{"dist", "1", "xyz", "m"}, ExitInvalid, `invalid distance unit "xyz"`},
		{"too few args", []string{"dist", "1", "km"}, ExitUsage, "expects <value> <from> <to>"},
		{"too many args", []string{"dist", "1", "km", "m", "cm"}, ExitUsage, "got 4 argument(s)"},
		{"not a number", []string{"dist", "abc", "km", "m"}, ExitUsage, `invalid value "abc"`},
		{"nan", []string{"dist", "NaN", "km", "m"}, ExitUsage, "finite"},
		{"unknown flag", []string{"dist", "--bogus", "1", "km", "m"}, ExitUsage, "bogus"},
		{"negative without separator", []string{"temp", "-40", "c", "f"}, ExitUsage, "shorthand"},
		{"unknown command", []string{"bogus"}, ExitUsage, "unknown command"},
		{"unknown rates command", []string{"rates", "bogus"}, ExitUsage, "unknown command"},
		{"result overflows", []string{"storage", "1e300", "YB", "b"}, ExitFailure, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "")
			assert.Equal(t, tt.code, h.run(tt.args...))
			assert.Contains(t, h.err.String(), tt.wantErr)
			assert.Empty(t, h.out.String())
		})
	}
}

func TestCommandGroupsShowHelp(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "Available Commands"},
		{[]string{"rates"}, "refresh"},
	}

	for _, tt := range tests {
		h := newHarness(t, "")
		require.Equal(t, ExitOK, h.run(tt.args...), h.err.String())
		assert.Contains(t, h.out.String(), tt.want)
		assert.Empty(t, h.err.String())
	}
}

func TestCurrency_ConvertsAndCaches(t *testing.T) {
	server := testutil.NewRatesServer(t, http.StatusOK, ratesBody)
	h := newHarness(t, server.URL)

	require.Equal(t, ExitOK, h.run("currency", "10", "usd", "eur"), h.err.String())
	assert.Equal(t, frame("10 usd = 9 eur")+"as of: 14 May 09:30 UTC\n", h.out.String())

	require.Equal(t, ExitOK, h.run("cur", "9", "EUR", "USD"), h.err.String())
	assert.Contains(t, h.out.String(), "9 EUR = 10 USD")

	assert.Equal(t, 1, server.Hits(), "second conversion should be served from the cache file")
	assert.FileExists(t, filepath.Join(h.cacheDir, cache.FileName))
}

func TestCurrency_RefetchesNextDay(t *testing.T) {
	server := testutil.NewRatesServer(t, http.StatusOK, ratesBody)
	h := newHarness(t, server.URL)
	clock := testutil.NewClock(today)
	h.app.Clock = clock

	require.Equal(t, ExitOK, h.run("currency", "1", "usd", "eur"))
	clock.Set(today.Add(24 * time.Hour))
	require.Equal(t, ExitOK, h.run("currency", "1", "usd", "eur"))

	assert.Equal(t, 2, server.Hits())
}

func TestCurrency_List(t *testing.T) {
	server := testutil.NewRatesServer(t, http.StatusOK, ratesBody)
	h := newHarness(t, server.URL)

	require.Equal(t, ExitOK, h.run("currency", "--list"), h.err.String())
	assert.Equal(t, "Supported currencies (Code - Country):\n- EUR\n- USD\n", h.out.String())
}

func TestCurrency_Errors(t *testing.T) {
	t.Run("invalid code", func(t *testing.T) {
		server := testutil.NewRatesServer(t, http.StatusOK, ratesBody)
		h := newHarness(t, server.URL)

		assert.Equal(t, ExitInvalid, h.run("currency", "1", "usd", "xyz"))
		assert.Contains(t, h.err.String(), `invalid currency code "XYZ"`)
	})

	t.Run("server down", func(t *testing.T) {
		server := testutil.NewRatesServer(t, http.StatusServiceUnavailable, "")
		h := newHarness(t, server.URL)

		assert.Equal(t, ExitFailure, h.run("currency", "1", "usd", "eur"))
		assert.Contains(t, h.err.String(), "failed to fetch exchange rates")
	})

	t.Run("malformed document", func(t *testing.T) {
		server := testutil.NewRatesServer(t, http.StatusOK, "<html></html>")
		h := newHarness(t, server.URL)

		assert.Equal(t, ExitFailure, h.run("currency", "1", "usd", "eur"))
		assert.Contains(t, h.err.String(), "malformed")
	})
}

func TestCurrency_NoCache(t *testing.T) {
	server := testutil.NewRatesServer(t, http.StatusOK, ratesBody)
	h := newHarness(t, server.URL)

	require.Equal(t, ExitOK, h.run("currency", "--no-cache", "10", "usd", "eur"), h.err.String())
	assert.Contains(t, h.out.String(), "10 usd = 9 eur")
	assert.NoFileExists(t, filepath.Join(h.cacheDir, cache.FileName))
}

func TestRatesStatusAndRefresh(t *testing.T) {
	server := testutil.NewRatesServer(t, http.StatusOK, ratesBody)
	h := newHarness(t, server.URL)

	require.Equal(t, ExitOK, h.run("rates", "status"))
	assert.Contains(t, h.out.String(), "state: stale or missing")
	assert.Contains(t, h.out.String(), "no cached rates")

	require.Equal(t, ExitOK, h.run("rates", "refresh"), h.err.String())
	assert.Contains(t, h.out.String(), "Currency rates updated!")
	assert.Contains(t, h.out.String(), "currencies: 2")

	require.Equal(t, ExitOK, h.run("rates", "status"))
	assert.Contains(t, h.out.String(), "state: fresh")
	assert.Contains(t, h.out.String(), "last updated: 14 May 09:30 UTC")
	assert.Equal(t, 1, server.Hits())
}

func TestRatesStatus_CorruptCache(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, os.MkdirAll(h.cacheDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(h.cacheDir, cache.FileName), []byte("nope"), 0o644))

	require.Equal(t, ExitOK, h.run("rates", "status"))
	assert.Contains(t, h.out.String(), "unreadable cache (cache_format)")
}

func TestRatesPull(t *testing.T) {
	upstream := testutil.NewRatesServer(t, http.StatusOK, ratesBody)
	h := newHarness(t, "")
	h.app.Config.CurrencyAPIKey = "test_key"
	h.app.Config.CurrencyAPIBaseURL = upstream.URL

	out := filepath.Join(t.TempDir(), "published", "currency_rates.json")
	require.Equal(t, ExitOK, h.run("rates", "pull", "--out", out), h.err.String())
	assert.Equal(t, "Currency rates updated!\n", h.out.String())

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"last_updated_at":"2024-05-14T09:30:00Z"`)

	require.Equal(t, ExitOK, h.run("rates", "pull"), h.err.String())
	assert.FileExists(t, h.app.Config.PullOutput)
}

func TestRatesPull_MissingKey(t *testing.T) {
	h := newHarness(t, "")

	assert.Equal(t, ExitFailure, h.run("rates", "pull"))
	assert.Contains(t, h.err.String(), "CURRENCY_API_KEY")
}

func TestRatesSources(t *testing.T) {
	published := testutil.NewRatesServer(t, http.StatusOK, ratesBody)
	upstream := testutil.NewRatesServer(t, http.StatusUnauthorized, `{"message":"Invalid authentication credentials"}`)

	h := newHarness(t, published.URL)
	h.app.Config.CurrencyAPIKey = "bad_key"
	h.app.Config.CurrencyAPIBaseURL = upstream.URL

	assert.Equal(t, ExitFailure, h.run("rates", "sources"))
	assert.Contains(t, h.out.String(), "fetcher:rates: 2 currencies as of 14 May 09:30 UTC")
	assert.Contains(t, h.out.String(), "fetcher:currencyapi: ERROR - ")
	assert.Contains(t, h.err.String(), "1 of 2 sources failed")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"usage", usageErrorf("bad"), ExitUsage},
		{"invalid unit", &units.UnitError{Category: units.Distance, Input: "x"}, ExitInvalid},
		{"wrapped invalid unit", fmt.Errorf("ctx: %w", units.ErrInvalidUnit), ExitInvalid},
		{"invalid currency", &currency.Error{Kind: currency.KindInvalidCurrency, Message: "x"}, ExitInvalid},
		{"network", &currency.Error{Kind: currency.KindNetwork, Message: "x"}, ExitFailure},
		{"out of range", fmt.Errorf("ctx: %w", units.ErrOutOfRange), ExitFailure},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
