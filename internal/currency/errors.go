package currency

import (
	"errors"
	"fmt"
)

// Kind classifies currency failures.
type Kind string

const (
	KindInvalidCurrency Kind = "invalid_currency"
	KindNetwork         Kind = "network"
	KindCacheRead       Kind = "cache_read"
	KindCacheWrite      Kind = "cache_write"
	KindRemoteFormat    Kind = "remote_format"
	KindCacheFormat     Kind = "cache_format"
)

// Error is returned by every currency operation.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

func invalidCurrency(code string) *Error {
	return &Error{
		Kind:    KindInvalidCurrency,
		Message: fmt.Sprintf("invalid currency code %q. Use --list to see available options.", code),
	}
}
