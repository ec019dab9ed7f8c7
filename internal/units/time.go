package units

const (
	secondsPerDay  = 24.0 * 60.0 * 60.0
	secondsPerYear = 365.25 * secondsPerDay
)

// Base unit: second. Months and years are Julian averages.
var timeUnits = NewRegistry(Time,
	Unit[Factor]{"Yoctosecond", []string{"ys", "yocto", "yoctosec", "yoctosecond", "yoctoseconds"}, 1e-24},
	Unit[Factor]{"Zeptosecond", []string{"zs", "zepto", "zeptosec", "zeptosecond", "zeptoseconds"}, 1e-21},
	Unit[Factor]{"Attosecond", []string{"as", "atto", "attosec", "attosecond", "attoseconds"}, 1e-18},
	Unit[Factor]{"Femtosecond", []string{"fs", "femto", "femtosec", "femtosecond", "femtoseconds"}, 1e-15},
	Unit[Factor]{"Picosecond", []string{"ps", "pico", "picosec", "picosecond", "picoseconds"}, 1e-12},
	Unit[Factor]{"Nanosecond", []string{"ns", "nano", "nanosec", "nanosecond", "nanoseconds"}, 1e-9},
	Unit[Factor]{"Microsecond", []string{"µs", "us", "micro", "microsec", "usec", "microsecond", "microseconds"}, 1e-6},
	Unit[Factor]{"Millisecond", []string{"ms", "milli", "millisec", "millisecond", "milliseconds"}, 1e-3},
	Unit[Factor]{"Second", []string{"s", "sec", "secs", "second", "seconds"}, 1.0},
	Unit[Factor]{"Minute", []string{"min", "mins", "minute", "minutes"}, 60.0},
	Unit[Factor]{"Hour", []string{"h", "hr", "hrs", "hour", "hours"}, 60.0 * 60.0},
	Unit[Factor]{"Day", []string{"d", "dy", "day", "days"}, secondsPerDay},
	Unit[Factor]{"Week", []string{"w", "wk", "wks", "week", "weeks"}, 7.0 * secondsPerDay},
	Unit[Factor]{"Fortnight", []string{"fortnight", "fortnights", "two weeks"}, 14.0 * secondsPerDay},
	Unit[Factor]{"Month", []string{"mo", "mnth", "month", "months"}, 30.4375 * secondsPerDay},
	Unit[Factor]{"Year", []string{"y", "yr", "yrs", "year", "years"}, secondsPerYear},
	Unit[Factor]{"Decade", []string{"dec", "decade", "decades", "10 years"}, 10.0 * secondsPerYear},
	Unit[Factor]{"Century", []string{"cent", "century", "centuries", "100 years"}, 100.0 * secondsPerYear},
	Unit[Factor]{"Millennium", []string{"millennium", "millennia", "1000 years"}, 1000.0 * secondsPerYear},
	Unit[Factor]{"Megayear", []string{"Ma", "megayear", "megayears", "million years"}, 1e6 * secondsPerYear},
	Unit[Factor]{"Gigayear", []string{"Ga", "gigayear", "gigayears", "billion years"}, 1e9 * secondsPerYear},
	Unit[Factor]{"Terayear", []string{"Ta", "terayear", "terayears", "trillion years"}, 1e12 * secondsPerYear},
	Unit[Factor]{"Eon", []string{"eon", "eons", "aeon", "aeons"}, 500e6 * secondsPerYear},
)
