package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cnv/internal/cache"
	"cnv/internal/currency"
	"cnv/internal/units"
)

func conversionArgs(list *bool) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if *list {
			return nil
		}
		if len(args) != 3 {
			return usageErrorf("%s expects <value> <from> <to>, got %d argument(s)", cmd.Name(), len(args))
		}
		return nil
	}
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, usageErrorf("invalid value %q: must be a finite number", s)
	}
	return v, nil
}

func newUnitCommand(app *App, conv units.Converter) *cobra.Command {
	c := conv.Category()
	var list bool

	cmd := &cobra.Command{
		Use:     c.Command() + " <value> <from> <to>",
		Aliases: c.Aliases(),
		Short:   fmt.Sprintf("Convert %s units", strings.ToLower(c.String())),
		Example: fmt.Sprintf("  cnv %s --list", c.Command()),
		Args:    conversionArgs(&list),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				fmt.Fprint(app.Out, conv.Help())
				return nil
			}

			value, err := parseValue(args[0])
			if err != nil {
				return err
			}

			result, err := conv.Convert(value, args[1], args[2])
			if err != nil {
				return err
			}

			writeConversion(app.Out, value, args[1], result, args[2], "")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "L", false, "list supported units and their aliases")

	return cmd
}

func newCurrencyCommand(app *App) *cobra.Command {
	var (
		list    bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:     units.Currency.Command() + " <value> <from> <to>",
		Aliases: units.Currency.Aliases(),
		Short:   "Convert between currencies using today's exchange rates",
		Example: "  cnv currency 10 usd eur\n  cnv currency --list",
		Args:    conversionArgs(&list),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := app.store()
			if noCache {
				store = cache.NewMemoryStore()
			}
			conv := currency.NewConverter(app.provider(store))
			ctx := cmd.Context()

			if list {
				help, err := conv.Help(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(app.Out, help)
				return nil
			}

			value, err := parseValue(args[0])
			if err != nil {
				return err
			}

			res, err := conv.Convert(ctx, value, args[1], args[2])
			if err != nil {
				return err
			}

			writeConversion(app.Out, value, args[1], res.Value, args[2], res.AsOf)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "L", false, "list supported currency codes")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "fetch rates without reading or writing the cache file")

	return cmd
}
