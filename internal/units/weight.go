package units

// Base unit: gram.
var weightUnits = NewRegistry(Weight,
	Unit[Factor]{"Microgram", []string{"mcg", "µg", "microgram", "micrograms"}, 1e-6},
	Unit[Factor]{"Milligram", []string{"mg", "milligram", "milligrams"}, 1e-3},
	Unit[Factor]{"Gram", []string{"g", "gram", "grams"}, 1.0},
	Unit[Factor]{"Kilogram", []string{"kg", "kgs", "kilogram", "kilograms"}, 1e3},
	Unit[Factor]{"Metric Ton", []string{"t", "tonne", "tonnes", "metricton", "metrictons"}, 1e6},
	Unit[Factor]{"Megagram", []string{"Mg", "megagram", "megagrams"}, 1e6},
	Unit[Factor]{"Gigagram", []string{"Gg", "gigagram", "gigagrams"}, 1e9},
	Unit[Factor]{"Teragram", []string{"Tg", "teragram", "teragrams"}, 1e12},
	Unit[Factor]{"Petagram", []string{"Pg", "petagram", "petagrams"}, 1e15},
	Unit[Factor]{"Exagram", []string{"Eg", "exagram", "exagrams"}, 1e18},
	Unit[Factor]{"Zettagram", []string{"Zg", "zettagram", "zettagrams"}, 1e21},
	Unit[Factor]{"Yottagram", []string{"Yg", "yottagram", "yottagrams"}, 1e24},
	Unit[Factor]{"Ounce", []string{"oz", "ounce", "ounces"}, 28.3495},
	Unit[Factor]{"Pound", []string{"lb", "lbs", "pound", "pounds"}, 453.592},
	Unit[Factor]{"Stone", []string{"st", "stone", "stones"}, 6350.29},
	Unit[Factor]{"US Short Ton", []string{"uston", "usshortton", "shortton"}, 907184.74},
	Unit[Factor]{"Imperial Ton", []string{"ukton", "imperialton", "longton"}, 1016046.91},
	Unit[Factor]{"Carat", []string{"ct", "carat", "carats"}, 0.2},
	Unit[Factor]{"Grain", []string{"gr", "grain", "grains"}, 0.0647989},
	Unit[Factor]{"Dram", []string{"dr", "dram", "drams"}, 1.77185},
	Unit[Factor]{"Hundredweight", []string{"cwt", "hundredweight"}, 50802.345},
	Unit[Factor]{"Pennyweight", []string{"dwt", "pennyweight", "pennyweights"}, 1.55517},
	Unit[Factor]{"Troy Ounce", []string{"ozt", "troyounce", "troyounces"}, 31.1035},
	Unit[Factor]{"Slug", []string{"slug", "slugs"}, 14593.9},
	Unit[Factor]{"Obol", []string{"obol", "obols"}, 0.72},
	Unit[Factor]{"Scruple", []string{"scruple", "scruples"}, 1.29598},
	Unit[Factor]{"Tola", []string{"tola", "tolas"}, 11.66},
	Unit[Factor]{"Baht", []string{"baht"}, 15.0},
	Unit[Factor]{"Momme", []string{"momme"}, 3.75},
)
