package units

// Reference unit: Celsius.
var temperatureUnits = NewRegistry(Temperature,
	Unit[Affine]{"Celsius", []string{"c", "°c", "celsius", "centigrade"}, Affine{
		ToReference:   func(v float64) float64 { return v },
		FromReference: func(c float64) float64 { return c },
	}},
	Unit[Affine]{"Fahrenheit", []string{"f", "°f", "fahrenheit"}, Affine{
		ToReference:   func(v float64) float64 { return (v - 32.0) * 5.0 / 9.0 },
		FromReference: func(c float64) float64 { return c*9.0/5.0 + 32.0 },
	}},
	Unit[Affine]{"Kelvin", []string{"k", "kelvin"}, Affine{
		ToReference:   func(v float64) float64 { return v - 273.15 },
		FromReference: func(c float64) float64 { return c + 273.15 },
	}},
	Unit[Affine]{"Rankine", []string{"r", "°r", "rankine"}, Affine{
		ToReference:   func(v float64) float64 { return (v - 491.67) * 5.0 / 9.0 },
		FromReference: func(c float64) float64 { return (c + 273.15) * 9.0 / 5.0 },
	}},
	Unit[Affine]{"Delisle", []string{"d", "de", "delisle"}, Affine{
		ToReference:   func(v float64) float64 { return 100.0 - v*2.0/3.0 },
		FromReference: func(c float64) float64 { return (100.0 - c) * 3.0 / 2.0 },
	}},
	Unit[Affine]{"Newton", []string{"n", "newton"}, Affine{
		ToReference:   func(v float64) float64 { return v * 100.0 / 33.0 },
		FromReference: func(c float64) float64 { return c * 33.0 / 100.0 },
	}},
	Unit[Affine]{"Réaumur", []string{"re", "réaumur", "reaumur"}, Affine{
		ToReference:   func(v float64) float64 { return v * 5.0 / 4.0 },
		FromReference: func(c float64) float64 { return c * 4.0 / 5.0 },
	}},
	Unit[Affine]{"Rømer", []string{"ro", "rømer", "romer"}, Affine{
		ToReference:   func(v float64) float64 { return (v - 7.5) * 40.0 / 21.0 },
		FromReference: func(c float64) float64 { return c*21.0/40.0 + 7.5 },
	}},
)
