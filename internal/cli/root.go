package cli

import (
	"context"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cnv/internal/units"
)

// NewRootCommand builds the cnv command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cnv",
		Short: "Convert between units of measurement and currencies",
		Long: "cnv converts a value between two units of the same category.\n\n" +
			"  cnv dist 1 km m\n" +
			"  cnv temp -- -40 c f\n" +
			"  cnv currency 10 usd eur\n\n" +
			"Run a category with --list to see its units and aliases.",
		Args:          subcommandArgs,
		RunE:          showHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log cache and network activity to stderr")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose && app.Level != nil {
			app.Level.Set(slog.LevelDebug)
		}
	}

	root.SetOut(app.Out)
	root.SetErr(app.Err)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	for _, c := range units.Categories() {
		if c == units.Currency {
			root.AddCommand(newCurrencyCommand(app))
			continue
		}
		if conv, ok := units.For(c); ok {
			root.AddCommand(newUnitCommand(app, conv))
		}
	}
	root.AddCommand(newRatesCommand(app))

	return root
}

// Execute runs cnv with args, prints any error and returns the exit code.
func Execute(ctx context.Context, app *App, args []string) int {
	root := NewRootCommand(app)
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		color.New(color.FgRed).Fprintf(app.Err, "error: %v\n", err)
	}
	return ExitCode(err)
}

// subcommandArgs rejects positional arguments on command groups; anything
// left over did not match a subcommand.
func subcommandArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

func showHelp(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}
