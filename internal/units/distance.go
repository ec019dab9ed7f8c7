package units

// Base unit: meter.
var distanceUnits = NewRegistry(Distance,
	Unit[Factor]{"Nanometer", []string{"nm", "nanometer", "nanometers", "nanometre", "nanometres"}, 1e-9},
	Unit[Factor]{"Micrometer", []string{"um", "µm", "micrometer", "micrometers", "micrometre", "micrometres"}, 1e-6},
	Unit[Factor]{"Millimeter", []string{"mm", "millimeter", "millimeters", "millimetre", "millimetres"}, 1e-3},
	Unit[Factor]{"Centimeter", []string{"cm", "centimeter", "centimeters", "centimetre", "centimetres"}, 1e-2},
	Unit[Factor]{"Decimeter", []string{"dm", "decimeter", "decimeters", "decimetre", "decimetres"}, 1e-1},
	Unit[Factor]{"Meter", []string{"m", "meter", "meters", "metre", "metres"}, 1.0},
	Unit[Factor]{"Dekameter", []string{"dam", "dekameter", "dekameters", "decameter", "decameters"}, 1e1},
	Unit[Factor]{"Hectometer", []string{"hm", "hectometer", "hectometers", "hectometre", "hectometres"}, 1e2},
	Unit[Factor]{"Kilometer", []string{"km", "kms", "kilometer", "kilometers", "kilometre", "kilometres"}, 1e3},
	Unit[Factor]{"Megameter", []string{"Mm", "megameter", "megameters", "megametre", "megametres"}, 1e6},
	Unit[Factor]{"Gigameter", []string{"Gm", "gigameter", "gigameters", "gigametre", "gigametres"}, 1e9},
	Unit[Factor]{"Terameter", []string{"Tm", "terameter", "terameters", "terametre", "terametres"}, 1e12},
	Unit[Factor]{"Thou", []string{"thou", "mil", "mils"}, 0.0000254},
	Unit[Factor]{"Inch", []string{"in", "inch", "inches"}, 0.0254},
	Unit[Factor]{"Foot", []string{"ft", "foot", "feet"}, 0.3048},
	Unit[Factor]{"Yard", []string{"yd", "yard", "yards"}, 0.9144},
	Unit[Factor]{"Mile", []string{"mi", "mile", "miles"}, 1609.344},
	Unit[Factor]{"Nautical Mile", []string{"nmi", "nautical mile", "nautical miles"}, 1852.0},
	Unit[Factor]{"Fathom", []string{"fathom", "fathoms"}, 1.8288},
	Unit[Factor]{"Rod", []string{"rod", "rods"}, 5.0292},
	Unit[Factor]{"Chain", []string{"chain", "chains"}, 20.1168},
	Unit[Factor]{"Furlong", []string{"furlong", "furlongs"}, 201.168},
	Unit[Factor]{"Astronomical Unit", []string{"au", "astronomical unit", "astronomical units"}, 1.495978707e11},
	Unit[Factor]{"Light Year", []string{"ly", "light year", "light years"}, 9.4607e15},
	Unit[Factor]{"Parsec", []string{"pc", "parsec", "parsecs"}, 3.0857e16},
	Unit[Factor]{"Link", []string{"link", "links"}, 0.201168},
	Unit[Factor]{"Cubit", []string{"cubit", "cubits"}, 0.4572},
	Unit[Factor]{"Hand", []string{"hand", "hands"}, 0.1016},
	Unit[Factor]{"Ell", []string{"ell", "ells"}, 1.143},
	Unit[Factor]{"Fermi", []string{"fm", "fermi"}, 1e-15},
	Unit[Factor]{"Angstrom", []string{"A", "Å", "angstrom", "angstroms"}, 1e-10},
)
