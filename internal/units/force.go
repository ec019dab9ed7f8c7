package units

// Base unit: newton.
var forceUnits = NewRegistry(Force,
	Unit[Factor]{"Yoctonewton", []string{"yN", "yoctonewton", "yoctonewtons"}, 1e-24},
	Unit[Factor]{"Zeptonewton", []string{"zN", "zeptonewton", "zeptonewtons"}, 1e-21},
	Unit[Factor]{"Attonewton", []string{"aN", "attonewton", "attonewtons"}, 1e-18},
	Unit[Factor]{"Femtonewton", []string{"fN", "femtonewton", "femtonewtons"}, 1e-15},
	Unit[Factor]{"Piconewton", []string{"pN", "piconewton", "piconewtons"}, 1e-12},
	Unit[Factor]{"Nanonewton", []string{"nN", "nanonewton", "nanonewtons"}, 1e-9},
	Unit[Factor]{"Micronewton", []string{"µN", "uN", "micronewton", "micronewtons"}, 1e-6},
	Unit[Factor]{"Millinewton", []string{"mN", "millinewton", "millinewtons"}, 1e-3},
	Unit[Factor]{"Centinewton", []string{"cN", "centinewton", "centinewtons"}, 1e-2},
	Unit[Factor]{"Decinewton", []string{"dN", "decinewton", "decinewtons"}, 1e-1},
	Unit[Factor]{"Newton", []string{"N", "newton", "newtons"}, 1.0},
	Unit[Factor]{"Decanewton", []string{"daN", "decanewton", "decanewtons"}, 1e1},
	Unit[Factor]{"Hectonewton", []string{"hN", "hectonewton", "hectonewtons"}, 1e2},
	Unit[Factor]{"Kilonewton", []string{"kN", "kilonewton", "kilonewtons"}, 1e3},
	Unit[Factor]{"Meganewton", []string{"MN", "meganewton", "meganewtons"}, 1e6},
	Unit[Factor]{"Giganewton", []string{"GN", "giganewton", "giganewtons"}, 1e9},
	Unit[Factor]{"Teranewton", []string{"TN", "teranewton", "teranewtons"}, 1e12},
	Unit[Factor]{"Dyne", []string{"dyn", "dyne", "dynes"}, 1e-5},
	Unit[Factor]{"Kilogram-force", []string{"kgf", "kilogram-force", "kilograms-force", "kilopond", "kp", "kg-f", "grave-force", "Gf"}, 9.80665},
	Unit[Factor]{"Gram-force", []string{"gf", "gram-force", "grams-force", "pond", "p", "milligrave-force", "mGf"}, 0.00980665},
	Unit[Factor]{"Tonne-force", []string{"tf", "tonne-force", "tonnes-force", "metric ton-force"}, 9806.65},
	Unit[Factor]{"Sthene", []string{"sn", "sthene", "sthenes"}, 1e3},
	Unit[Factor]{"Pound-force", []string{"lbf", "pound-force", "pounds-force", "lb-f", "poundforce"}, 4.4482216152605},
	Unit[Factor]{"Poundal", []string{"pdl", "poundal", "poundals"}, 0.138254954376},
	Unit[Factor]{"Ounce-force", []string{"ozf", "ounce-force", "ounces-force", "oz-f"}, 0.278013850953},
	Unit[Factor]{"Kip", []string{"kip", "kips", "kilopound-force"}, 4448.2216152605},
	Unit[Factor]{"Short Ton-force", []string{"short ton-force", "us ton-force", "short tons-force"}, 8896.443230521},
	Unit[Factor]{"Long Ton-force", []string{"long ton-force", "uk ton-force", "long tons-force"}, 9964.01641818352},
)
