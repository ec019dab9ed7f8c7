package cli

import (
	"errors"
	"fmt"

	"cnv/internal/currency"
	"cnv/internal/units"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitInvalid = 3
)

// UsageError reports malformed command-line input.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	var ue *UsageError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &ue):
		return ExitUsage
	case errors.Is(err, units.ErrInvalidUnit),
		currency.KindOf(err) == currency.KindInvalidCurrency:
		return ExitInvalid
	default:
		return ExitFailure
	}
}
