package cli

import (
	"io"
	"log/slog"
	"os"

	"cnv/internal/cache"
	"cnv/internal/config"
	"cnv/internal/currency"
	"cnv/internal/fetcher"
)

// App carries the dependencies shared by all commands.
type App struct {
	Config *config.Config
	Out    io.Writer
	Err    io.Writer
	Clock  cache.Clock
	Logger *slog.Logger
	// Level is raised to debug by --verbose when set.
	Level *slog.LevelVar

	// FetchOptions are appended to the HTTP client options of every fetcher.
	FetchOptions []fetcher.Option

	// NewStore overrides the cache store; nil means a FileStore in Config.CacheDir.
	NewStore func() cache.Store
}

// NewApp returns an App writing to the process streams.
func NewApp(cfg *config.Config, logger *slog.Logger, level *slog.LevelVar) *App {
	return &App{
		Config: cfg,
		Out:    os.Stdout,
		Err:    os.Stderr,
		Clock:  cache.SystemClock,
		Logger: logger,
		Level:  level,
	}
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

func (a *App) store() cache.Store {
	if a.NewStore != nil {
		return a.NewStore()
	}
	return cache.NewFileStore(a.Config.CacheDir)
}

func (a *App) clientOptions() []fetcher.Option {
	return append([]fetcher.Option{fetcher.WithTimeout(a.Config.HTTPTimeout)}, a.FetchOptions...)
}

func (a *App) ratesFetcher() *fetcher.SnapshotFetcher {
	return fetcher.NewSnapshotFetcher(a.Config.RatesURL, a.clientOptions()...)
}

func (a *App) upstreamFetcher() *fetcher.CurrencyAPIFetcher {
	return fetcher.NewCurrencyAPIFetcher(a.Config.CurrencyAPIKey, a.Config.CurrencyAPIBaseURL, a.clientOptions()...)
}

func (a *App) provider(store cache.Store) *currency.Provider {
	return currency.NewProvider(store, a.ratesFetcher(), a.Clock, a.logger())
}
