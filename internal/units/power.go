package units

// Base unit: watt.
var powerUnits = NewRegistry(Power,
	Unit[Factor]{"Yoctowatt", []string{"yW", "yoctowatt", "yoctowatts"}, 1e-24},
	Unit[Factor]{"Zeptowatt", []string{"zW", "zeptowatt", "zeptowatts"}, 1e-21},
	Unit[Factor]{"Attowatt", []string{"aW", "attowatt", "attowatts"}, 1e-18},
	Unit[Factor]{"Femtowatt", []string{"fW", "femtowatt", "femtowatts"}, 1e-15},
	Unit[Factor]{"Picowatt", []string{"pW", "picowatt", "picowatts"}, 1e-12},
	Unit[Factor]{"Nanowatt", []string{"nW", "nanowatt", "nanowatts"}, 1e-9},
	Unit[Factor]{"Microwatt", []string{"µW", "uW", "microwatt", "microwatts"}, 1e-6},
	Unit[Factor]{"Milliwatt", []string{"mW", "milliwatt", "milliwatts"}, 1e-3},
	Unit[Factor]{"Centiwatt", []string{"cW", "centiwatt", "centiwatts"}, 1e-2},
	Unit[Factor]{"Deciwatt", []string{"dW", "deciwatt", "deciwatts"}, 1e-1},
	Unit[Factor]{"Watt", []string{"W", "watt", "watts"}, 1.0},
	Unit[Factor]{"Decawatt", []string{"daW", "decawatt", "decawatts"}, 1e1},
	Unit[Factor]{"Hectowatt", []string{"hW", "hectowatt", "hectowatts"}, 1e2},
	Unit[Factor]{"Kilowatt", []string{"kW", "kilowatt", "kilowatts"}, 1e3},
	Unit[Factor]{"Megawatt", []string{"MW", "megawatt", "megawatts"}, 1e6},
	Unit[Factor]{"Gigawatt", []string{"GW", "gigawatt", "gigawatts"}, 1e9},
	Unit[Factor]{"Terawatt", []string{"TW", "terawatt", "terawatts"}, 1e12},
	Unit[Factor]{"Petawatt", []string{"PW", "petawatt", "petawatts"}, 1e15},
	Unit[Factor]{"Exawatt", []string{"EW", "exawatt", "exawatts"}, 1e18},
	Unit[Factor]{"Zettawatt", []string{"ZW", "zettawatt", "zettawatts"}, 1e21},
	Unit[Factor]{"Yottawatt", []string{"YW", "yottawatt", "yottawatts"}, 1e24},
	Unit[Factor]{"Erg per Second", []string{"erg/s", "erg per second", "ergs per second"}, 1e-7},
	Unit[Factor]{"Poncelet", []string{"p", "poncelet", "poncelets"}, 980.665},
	Unit[Factor]{"Cheval Vapeur", []string{"CV", "ch", "cheval vapeur", "cheval-vapeur"}, 735.49875},
	Unit[Factor]{"Calorie per Hour", []string{"cal/h", "calorie per hour", "calories per hour"}, 1.1622222222222e-3},
	Unit[Factor]{"Horsepower", []string{"hp", "HP", "horsepower", "horsepowers", "mechanical horsepower"}, 745.69987158},
	Unit[Factor]{"Metric Horsepower", []string{"PS", "ps", "metric hp", "pferdestarke", "cv", "metric horsepower"}, 735.49875},
	Unit[Factor]{"Electric Horsepower", []string{"EHP", "electric hp", "electric horsepower"}, 746.0},
	Unit[Factor]{"Boiler Horsepower", []string{"BHP", "bhp", "boiler hp", "boiler horsepower"}, 9809.5},
	Unit[Factor]{"Foot-Pound-Force per Minute", []string{"ft·lbf/min", "ft-lbf/min", "foot-pound per minute", "foot-pounds per minute"}, 0.0225969658},
	Unit[Factor]{"BTU per Hour", []string{"BTU/h", "Btu/h", "btu per hour", "BTUH"}, 0.29307107017222},
	Unit[Factor]{"Thousand BTU per Hour", []string{"MBTU/h", "mbtu/h", "thousand btu per hour", "MBH"}, 293.07107017222},
	Unit[Factor]{"Ton of Refrigeration", []string{"TR", "ton of refrigeration", "tons of refrigeration", "refrigeration ton"}, 3516.85284},
	Unit[Factor]{"UK Ton of Refrigeration", []string{"UK TR", "imperial ton of refrigeration"}, 3934.880789024},
	Unit[Factor]{"Lusec", []string{"lusec", "lusecs", "L·µmHg/s"}, 0.00133322},
	Unit[Factor]{"Clusec", []string{"clusec", "clusecs", "centilusec"}, 0.0000133322},
	Unit[Factor]{"Donkeypower", []string{"donkeypower", "donkeypowers", "dp"}, 250.0},
)
