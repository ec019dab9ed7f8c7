package units

// Base unit: meter per second.
var speedUnits = NewRegistry(Speed,
	Unit[Factor]{"Millimeter per Second", []string{"mm/s", "millimeters per second", "millimetres per second"}, 1e-3},
	Unit[Factor]{"Centimeter per Second", []string{"cm/s", "centimeters per second", "centimetres per second"}, 1e-2},
	Unit[Factor]{"Meter per Second", []string{"m/s", "mps", "meter per second", "meters per second", "metre per second", "metres per second"}, 1.0},
	Unit[Factor]{"Meter per Minute", []string{"m/min", "meters per minute", "metres per minute"}, 1.0 / 60.0},
	Unit[Factor]{"Kilometer per Hour", []string{"km/h", "kmh", "kph", "kmph", "kilometers per hour", "kilometres per hour"}, 1.0 / 3.6},
	Unit[Factor]{"Kilometer per Second", []string{"km/s", "kilometers per second", "kilometres per second"}, 1e3},
	Unit[Factor]{"Inch per Second", []string{"in/s", "ips", "inches per second"}, 0.0254},
	Unit[Factor]{"Foot per Second", []string{"ft/s", "fps", "feet per second", "foot per second"}, 0.3048},
	Unit[Factor]{"Foot per Minute", []string{"ft/min", "fpm", "feet per minute"}, 0.3048 / 60.0},
	Unit[Factor]{"Mile per Hour", []string{"mph", "mi/h", "miles per hour", "mile per hour"}, 0.44704},
	Unit[Factor]{"Mile per Second", []string{"mi/s", "miles per second"}, 1609.344},
	Unit[Factor]{"Knot", []string{"kn", "kt", "kts", "knot", "knots"}, 1852.0 / 3600.0},
	Unit[Factor]{"Mach", []string{"mach", "ma"}, 340.3},
	Unit[Factor]{"Speed of Light", []string{"c", "speed of light", "lightspeed"}, 299792458.0},
)
