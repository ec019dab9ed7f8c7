package currency

import (
	"context"
	"strings"

	"cnv/internal/units"
)

// Result is a converted amount with the timestamp of the rates used.
type Result struct {
	Value float64
	AsOf  string
}

// Converter converts between currency codes using a Provider's snapshot.
type Converter struct {
	provider *Provider
}

// NewConverter returns a converter backed by p.
func NewConverter(p *Provider) *Converter {
	return &Converter{provider: p}
}

// Convert computes value * rate(to) / rate(from), rounded to four places.
// Codes are matched case-insensitively.
func (c *Converter) Convert(ctx context.Context, value float64, from, to string) (Result, error) {
	snap, err := c.provider.Snapshot(ctx)
	if err != nil {
		return Result{}, err
	}

	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	fromRate, ok := snap.Rate(from)
	if !ok {
		return Result{}, invalidCurrency(from)
	}
	toRate, ok := snap.Rate(to)
	if !ok {
		return Result{}, invalidCurrency(to)
	}

	asOf, err := snap.AsOf()
	if err != nil {
		return Result{}, &Error{Kind: KindRemoteFormat, Message: "exchange rates timestamp is malformed", Cause: err}
	}

	return Result{
		Value: units.Round(value*toRate/fromRate, units.DefaultPlaces),
		AsOf:  asOf,
	}, nil
}

// Help lists the supported currency codes.
func (c *Converter) Help(ctx context.Context) (string, error) {
	snap, err := c.provider.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Supported currencies (Code - Country):\n")
	for _, code := range snap.Codes() {
		b.WriteString("- ")
		b.WriteString(code)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
