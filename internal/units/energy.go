package units

// Base unit: joule.
var energyUnits = NewRegistry(Energy,
	Unit[Factor]{"Joule", []string{"J", "joule", "joules"}, 1.0},
	Unit[Factor]{"Kilojoule", []string{"kJ", "kilojoule", "kilojoules"}, 1e3},
	Unit[Factor]{"Megajoule", []string{"MJ", "megajoule", "megajoules"}, 1e6},
	Unit[Factor]{"Gigajoule", []string{"GJ", "gigajoule", "gigajoules"}, 1e9},
	Unit[Factor]{"Terajoule", []string{"TJ", "terajoule", "terajoules"}, 1e12},
	Unit[Factor]{"Petajoule", []string{"PJ", "petajoule", "petajoules"}, 1e15},
	Unit[Factor]{"Exajoule", []string{"EJ", "exajoule", "exajoules"}, 1e18},
	Unit[Factor]{"Zettajoule", []string{"ZJ", "zettajoule", "zettajoules"}, 1e21},
	Unit[Factor]{"Yottajoule", []string{"YJ", "yottajoule", "yottajoules"}, 1e24},
	Unit[Factor]{"Electronvolt", []string{"eV", "electronvolt", "electronvolts"}, 1.60218e-19},
	Unit[Factor]{"Kiloelectronvolt", []string{"keV", "kiloelectronvolt", "kiloelectronvolts"}, 1.60218e-16},
	Unit[Factor]{"Megaelectronvolt", []string{"MeV", "megaelectronvolt", "megaelectronvolts"}, 1.60218e-13},
	Unit[Factor]{"Gigaelectronvolt", []string{"GeV", "gigaelectronvolt", "gigaelectronvolts"}, 1.60218e-10},
	Unit[Factor]{"Teraelectronvolt", []string{"TeV", "teraelectronvolt", "teraelectronvolts"}, 1.60218e-7},
	Unit[Factor]{"Calorie", []string{"cal", "calorie", "calories"}, 4.184},
	Unit[Factor]{"Kilocalorie", []string{"kcal", "kilocalorie", "kilocalories"}, 4184.0},
	Unit[Factor]{"Megacalorie", []string{"Mcal", "megacalorie", "megacalories"}, 4.184e6},
	Unit[Factor]{"Gigacalorie", []string{"Gcal", "gigacalorie", "gigacalories"}, 4.184e9},
	Unit[Factor]{"Watt-Hour", []string{"Wh", "watt hour", "watt-hour", "watt hours", "watt-hours"}, 3600.0},
	Unit[Factor]{"Kilowatt-Hour", []string{"kWh", "kilowatt hour", "kilowatt-hour", "kilowatt hours", "kilowatt-hours"}, 3.6e6},
	Unit[Factor]{"Megawatt-Hour", []string{"MWh", "megawatt hour", "megawatt-hour", "megawatt hours", "megawatt-hours"}, 3.6e9},
	Unit[Factor]{"Gigawatt-Hour", []string{"GWh", "gigawatt hour", "gigawatt-hour", "gigawatt hours", "gigawatt-hours"}, 3.6e12},
	Unit[Factor]{"Terawatt-Hour", []string{"TWh", "terawatt hour", "terawatt-hour", "terawatt hours", "terawatt-hours"}, 3.6e15},
	Unit[Factor]{"British Thermal Unit", []string{"BTU", "btu", "british thermal unit", "british thermal units"}, 1055.06},
	Unit[Factor]{"Therm", []string{"therm", "therms"}, 1.05506e8},
	Unit[Factor]{"Foot-Pound", []string{"ft-lb", "foot pound", "foot pounds", "foot-pound", "foot-pounds"}, 1.35582},
	Unit[Factor]{"Inch-Pound", []string{"in-lb", "inch pound", "inch pounds", "inch-pound", "inch-pounds"}, 0.112985},
	Unit[Factor]{"Erg", []string{"erg", "ergs"}, 1e-7},
	Unit[Factor]{"Newton Meter", []string{"Nm", "newton meter", "newton meters", "newton-meter", "newton-meters"}, 1.0},
	Unit[Factor]{"Watt Second", []string{"Ws", "watt second", "watt seconds", "watt-second", "watt-seconds"}, 1.0},
	Unit[Factor]{"Horsepower Hour", []string{"hp-h", "horsepower hour", "horsepower hours", "horsepower-hour", "horsepower-hours"}, 2.68452e6},
)
