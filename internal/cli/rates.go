package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cnv/internal/cache"
	"cnv/internal/coordinator"
	"cnv/internal/currency"
	"cnv/internal/fetcher"
	"cnv/internal/rates"
)

func newRatesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Inspect and maintain the exchange-rate cache",
		Args:  subcommandArgs,
		RunE:  showHelp,
	}

	cmd.AddCommand(
		newRatesStatusCommand(app),
		newRatesRefreshCommand(app),
		newRatesPullCommand(app),
		newRatesSourcesCommand(app),
	)
	return cmd
}

func newRatesStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether cached rates are current",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := app.store()
			st := app.provider(store).Status(cmd.Context())

			if fs, ok := store.(*cache.FileStore); ok {
				fmt.Fprintf(app.Out, "cache: %s\n", fs.Path())
			}

			stateColor := color.New(color.FgYellow)
			if st.State == currency.Fresh {
				stateColor = color.New(color.FgGreen)
			}
			fmt.Fprint(app.Out, "state: ")
			stateColor.Fprintln(app.Out, st.State)

			switch {
			case st.Snapshot != nil:
				writeSnapshotSummary(app, st.Snapshot)
			case errors.Is(st.LoadErr, cache.ErrNotFound):
				fmt.Fprintln(app.Out, "no cached rates")
			case st.LoadErr != nil:
				fmt.Fprintf(app.Out, "unreadable cache (%s): %v\n", currency.LoadErrKind(st.LoadErr), st.LoadErr)
			}
			return nil
		},
	}
}

func newRatesRefreshCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch today's rates into the cache even if it is current",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.provider(app.store()).Refresh(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Currency rates updated!")
			writeSnapshotSummary(app, snap)
			return nil
		},
	}
}

func newRatesPullCommand(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Download the latest rates from currencyapi.com into a file",
		Long: "Download the latest rates from currencyapi.com using CURRENCY_API_KEY and write\n" +
			"them as a rates document that can be published for the currency command.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.RequireCurrencyAPIKey(); err != nil {
				return err
			}
			if out == "" {
				out = app.Config.PullOutput
			}

			snap, err := app.upstreamFetcher().Fetch(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to pull rates: %w", err)
			}

			if err := writeSnapshotFile(out, snap); err != nil {
				return err
			}

			app.logger().Debug("wrote rates document", "path", out, "currencies", len(snap.Data))
			fmt.Fprintln(app.Out, "Currency rates updated!")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default $HOME/currency_rates.json)")

	return cmd
}

func newRatesSourcesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "Query every configured rate source and report what each returns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fetchers := []fetcher.Fetcher{app.ratesFetcher()}
			if app.Config.CurrencyAPIKey != "" {
				fetchers = append(fetchers, app.upstreamFetcher())
			}

			results, err := coordinator.New(fetchers).Run(cmd.Context())
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Error != nil {
					failed++
					fmt.Fprintf(app.Out, "%s: ", r.Key)
					color.New(color.FgRed).Fprintf(app.Out, "ERROR - %v\n", r.Error)
					continue
				}
				asOf, _ := r.Snapshot.AsOf()
				fmt.Fprintf(app.Out, "%s: %d currencies as of %s\n", r.Key, len(r.Snapshot.Data), asOf)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d sources failed", failed, len(results))
			}
			return nil
		},
	}
}

func writeSnapshotSummary(app *App, snap *rates.Snapshot) {
	if asOf, err := snap.AsOf(); err == nil {
		fmt.Fprintf(app.Out, "last updated: %s\n", asOf)
	}
	fmt.Fprintf(app.Out, "currencies: %d\n", len(snap.Data))
}

func writeSnapshotFile(path string, snap *rates.Snapshot) error {
	body, err := snap.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode rates: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
