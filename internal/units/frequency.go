package units

// Base unit: hertz.
var frequencyUnits = NewRegistry(Frequency,
	Unit[Factor]{"Yoctohertz", []string{"yHz", "yoctohertz", "yoctoHz"}, 1e-24},
	Unit[Factor]{"Zeptohertz", []string{"zHz", "zeptohertz", "zeptoHz"}, 1e-21},
	Unit[Factor]{"Attohertz", []string{"aHz", "attohertz", "attoHz"}, 1e-18},
	Unit[Factor]{"Femtohertz", []string{"fHz", "femtohertz", "femtoHz"}, 1e-15},
	Unit[Factor]{"Picohertz", []string{"pHz", "picohertz", "picoHz"}, 1e-12},
	Unit[Factor]{"Nanohertz", []string{"nHz", "nanohertz", "nanoHz"}, 1e-9},
	Unit[Factor]{"Microhertz", []string{"µHz", "uHz", "microhertz", "microHz"}, 1e-6},
	Unit[Factor]{"Millihertz", []string{"mHz", "millihertz", "milliHz"}, 1e-3},
	Unit[Factor]{"Centihertz", []string{"cHz", "centihertz", "centiHz"}, 1e-2},
	Unit[Factor]{"Decihertz", []string{"dHz", "decihertz", "deciHz"}, 1e-1},
	Unit[Factor]{"Hertz", []string{
		"Hz", "hz", "hertz", "cycles per second", "cycles per sec", "c/s", "cps", "cycles/s",
		"rps", "RPS", "rev/s", "revs/s", "revs per sec", "revolutions/s", "revolutions per sec",
		"revolutions per second", "revs per second", "r/s",
	}, 1.0},
	Unit[Factor]{"Decahertz", []string{"daHz", "decahertz", "decaHz"}, 1e1},
	Unit[Factor]{"Hectohertz", []string{"hHz", "hectohertz", "hectoHz"}, 1e2},
	Unit[Factor]{"Kilohertz", []string{"kHz", "kilohertz", "kilocycle", "kc", "kc/s"}, 1e3},
	Unit[Factor]{"Megahertz", []string{"MHz", "megahertz", "megacycle", "Mc", "Mc/s"}, 1e6},
	Unit[Factor]{"Gigahertz", []string{"GHz", "gigahertz", "gigacycle", "Gc", "Gc/s"}, 1e9},
	Unit[Factor]{"Terahertz", []string{"THz", "terahertz", "teracycle", "Tc", "Tc/s", "fresnel", "Fresnel"}, 1e12},
	Unit[Factor]{"Petahertz", []string{"PHz", "petahz", "peta", "petahertz", "petahertzs"}, 1e15},
	Unit[Factor]{"Exahertz", []string{"EHz", "exa", "exahz", "exahertz", "exahertzs"}, 1e18},
	Unit[Factor]{"Zettahertz", []string{"ZHz", "zetahz", "zetta", "zettahertz", "zettahertzs"}, 1e21},
	Unit[Factor]{"Yottahertz", []string{"YHz", "yottahz", "yotta", "yottahertz", "yottahertzs"}, 1e24},
	Unit[Factor]{"Revolutions per Minute", []string{
		"rpm", "RPM", "rev/min", "revs/min", "revs per min", "revs per minute",
		"revolutions/min", "revolutions per min", "revolutions per minute",
	}, 1.0 / 60.0},
	Unit[Factor]{"Revolutions per Hour", []string{
		"rph", "RPH", "rev/h", "revs/h", "revs per hour", "revolutions/h",
		"revolutions per h", "revolutions per hour",
	}, 1.0 / 3600.0},
	Unit[Factor]{"Cycles per Minute", []string{"CPM", "cpm", "cycles per minute", "cycles per min", "cycles/min"}, 1.0 / 60.0},
	Unit[Factor]{"Cycles per Hour", []string{"CPH", "cph", "cycles per hour", "cycles/h"}, 1.0 / 3600.0},
	Unit[Factor]{"Cycles per Day", []string{"CPD", "cpd", "cycles per day", "cycles/day"}, 1.0 / 86400.0},
	Unit[Factor]{"Beats per Minute", []string{"BPM", "bpm", "beats per minute", "beats per min", "beats/min"}, 1.0 / 60.0},
	Unit[Factor]{"Savart", []string{"savart", "Savarts", "savarts"}, 1.0 / 300.0},
)
