package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeConversion prints the framed result line and, for currency, the
// timestamp of the rates used.
func writeConversion(w io.Writer, value float64, from string, result float64, to string, asOf string) {
	line := fmt.Sprintf("%s %s = %s %s", formatNumber(value), from, formatNumber(result), to)
	dashes := strings.Repeat("-", len(line)+1)

	fmt.Fprintf(w, "%s\n%s\n%s\n", dashes, line, dashes)
	if asOf != "" {
		fmt.Fprintf(w, "as of: %s\n", asOf)
	}
}
