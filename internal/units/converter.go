package units

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a conversion result does not fit in a float64.
var ErrOutOfRange = errors.New("conversion result out of range")

const (
	// DefaultPlaces is the rounding precision of most categories.
	DefaultPlaces = 4
	// AreaPlaces keeps enough digits for barns and circular mils.
	AreaPlaces = 9
)

// Converter converts values between the units of a single category.
type Converter interface {
	Category() Category
	Convert(value float64, from, to string) (float64, error)
	Help() string
}

// Factor is the size of a unit expressed in the category's base unit.
type Factor float64

// Linear converts by the ratio of two factors.
type Linear struct {
	registry *Registry[Factor]
	places   int
}

// NewLinear returns a linear converter rounding to places decimals.
func NewLinear(registry *Registry[Factor], places int) *Linear {
	return &Linear{registry: registry, places: places}
}

// Category implements Converter
func (l *Linear) Category() Category {
	return l.registry.Category()
}

// Convert computes value * factor(from) / factor(to).
func (l *Linear) Convert(value float64, from, to string) (float64, error) {
	f, err := l.registry.Resolve(from)
	if err != nil {
		return 0, err
	}
	t, err := l.registry.Resolve(to)
	if err != nil {
		return 0, err
	}

	result := value * (float64(f.Scale) / float64(t.Scale))
	if err := checkFinite(result, value, f.Name, t.Name); err != nil {
		return 0, err
	}
	return Round(result, l.places), nil
}

// Help implements Converter
func (l *Linear) Help() string {
	return l.registry.Help()
}

// Registry exposes the underlying table.
func (l *Linear) Registry() *Registry[Factor] {
	return l.registry
}

// Affine maps a unit to and from the common reference scale.
type Affine struct {
	ToReference   func(float64) float64
	FromReference func(float64) float64
}

// AffineConverter converts through a shared reference unit. Temperature
// uses Celsius as the reference.
type AffineConverter struct {
	registry *Registry[Affine]
	places   int
}

// NewAffine returns an affine converter rounding to places decimals.
func NewAffine(registry *Registry[Affine], places int) *AffineConverter {
	return &AffineConverter{registry: registry, places: places}
}

// Category implements Converter
func (a *AffineConverter) Category() Category {
	return a.registry.Category()
}

// Convert implements Converter
func (a *AffineConverter) Convert(value float64, from, to string) (float64, error) {
	f, err := a.registry.Resolve(from)
	if err != nil {
		return 0, err
	}
	t, err := a.registry.Resolve(to)
	if err != nil {
		return 0, err
	}

	result := t.Scale.FromReference(f.Scale.ToReference(value))
	if err := checkFinite(result, value, f.Name, t.Name); err != nil {
		return 0, err
	}
	return Round(result, a.places), nil
}

// Help implements Converter
func (a *AffineConverter) Help() string {
	return a.registry.Help()
}

// Registry exposes the underlying table.
func (a *AffineConverter) Registry() *Registry[Affine] {
	return a.registry
}

func checkFinite(result, value float64, from, to string) error {
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return fmt.Errorf("%w: %v %s in %s", ErrOutOfRange, value, from, to)
	}
	return nil
}

// maxExact is 2^53; beyond it a float64 has no fractional part.
const maxExact = 1 << 53

// Round rounds half away from zero at the given number of decimals. Values
// too large to carry digits at that precision are returned unchanged.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	if math.Abs(v) >= maxExact/p {
		return v
	}
	return math.Round(v*p) / p
}

var converters = map[Category]Converter{
	Distance:     NewLinear(distanceUnits, DefaultPlaces),
	Weight:       NewLinear(weightUnits, DefaultPlaces),
	Temperature:  NewAffine(temperatureUnits, DefaultPlaces),
	DataStorage:  NewLinear(dataStorageUnits, DefaultPlaces),
	DataTransfer: NewLinear(dataTransferUnits, DefaultPlaces),
	Time:         NewLinear(timeUnits, DefaultPlaces),
	Volume:       NewLinear(volumeUnits, DefaultPlaces),
	Area:         NewLinear(areaUnits, AreaPlaces),
	Frequency:    NewLinear(frequencyUnits, DefaultPlaces),
	Force:        NewLinear(forceUnits, DefaultPlaces),
	Energy:       NewLinear(energyUnits, DefaultPlaces),
	Power:        NewLinear(powerUnits, DefaultPlaces),
	Speed:        NewLinear(speedUnits, DefaultPlaces),
}

// For returns the converter of a unit category. Currency has no static
// table and is served by the currency package.
func For(c Category) (Converter, bool) {
	conv, ok := converters[c]
	return conv, ok
}

// Convert is a shortcut for For(c).Convert.
func Convert(c Category, value float64, from, to string) (float64, error) {
	conv, ok := For(c)
	if !ok {
		return 0, fmt.Errorf("no static converter for %s", c)
	}
	return conv.Convert(value, from, to)
}
