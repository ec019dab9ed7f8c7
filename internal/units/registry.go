package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUnit is matched by every alias resolution failure.
var ErrInvalidUnit = errors.New("invalid unit")

// UnitError reports an input that matches no alias in a category.
type UnitError struct {
	Category Category
	Input    string
}

// Error implements the error interface
func (e *UnitError) Error() string {
	return fmt.Sprintf("invalid %s unit %q. Use --list to see available options.", e.Category, e.Input)
}

// Is makes errors.Is(err, ErrInvalidUnit) report true.
func (e *UnitError) Is(target error) bool {
	return target == ErrInvalidUnit
}

// Unit is one entry of a category table. Scale carries whatever the
// category's conversion strategy needs: a Factor for linear categories,
// an Affine pair for temperature.
type Unit[T any] struct {
	Name    string
	Aliases []string
	Scale   T
}

// Registry is the ordered alias table of one category.
type Registry[T any] struct {
	category Category
	units    []Unit[T]
}

// NewRegistry builds a registry over units in the given order.
func NewRegistry[T any](category Category, units ...Unit[T]) *Registry[T] {
	return &Registry[T]{
		category: category,
		units:    units,
	}
}

// Category returns the category the registry belongs to.
func (r *Registry[T]) Category() Category {
	return r.category
}

// Units returns the table in declaration order.
func (r *Registry[T]) Units() []Unit[T] {
	return r.units
}

// Resolve finds the unit matching input. An exact alias match wins over a
// case-insensitive one, so symbols that differ only by case (KB and Kb,
// Mm and mm) stay distinct while "KM" still finds kilometers. Within each
// pass the first unit in table order wins.
func (r *Registry[T]) Resolve(input string) (Unit[T], error) {
	search := strings.TrimSpace(input)
	if search != "" {
		for _, u := range r.units {
			for _, a := range u.Aliases {
				if a == search {
					return u, nil
				}
			}
		}
		for _, u := range r.units {
			for _, a := range u.Aliases {
				if strings.EqualFold(a, search) {
					return u, nil
				}
			}
		}
	}

	var zero Unit[T]
	return zero, &UnitError{Category: r.category, Input: input}
}

// Help renders the full alias listing.
func (r *Registry[T]) Help() string {
	var b strings.Builder
	b.WriteString(helpHeader)
	for _, u := range r.units {
		fmt.Fprintf(&b, "* %s : %s\n", u.Name, strings.Join(u.Aliases, ", "))
	}
	return b.String()
}

const helpHeader = "------------------------------\n" +
	"List of supported units\n" +
	"------------------------------\n"
