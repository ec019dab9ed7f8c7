package units

const usGallon = 3.785411784

// Base unit: liter. US customary measures derive from the US gallon.
var volumeUnits = NewRegistry(Volume,
	Unit[Factor]{"Cubic Millimeter", []string{"mm3", "cubic millimeter", "cubic millimeters", "cubic millimetre", "cubic millimetres"}, 1e-6},
	Unit[Factor]{"Milliliter", []string{"ml", "mL", "milliliter", "milliliters", "millilitre", "millilitres"}, 1e-3},
	Unit[Factor]{"Cubic Centimeter", []string{"cm3", "cc", "cubic centimeter", "cubic centimeters", "cubic centimetre", "cubic centimetres"}, 1e-3},
	Unit[Factor]{"Centiliter", []string{"cl", "cL", "centiliter", "centiliters", "centilitre", "centilitres"}, 1e-2},
	Unit[Factor]{"Deciliter", []string{"dl", "dL", "deciliter", "deciliters", "decilitre", "decilitres"}, 1e-1},
	Unit[Factor]{"Liter", []string{"l", "L", "liter", "liters", "litre", "litres"}, 1.0},
	Unit[Factor]{"Hectoliter", []string{"hl", "hL", "hectoliter", "hectoliters", "hectolitre", "hectolitres"}, 1e2},
	Unit[Factor]{"Kiloliter", []string{"kl", "kL", "kiloliter", "kiloliters", "kilolitre", "kilolitres"}, 1e3},
	Unit[Factor]{"Cubic Meter", []string{"m3", "cubic meter", "cubic meters", "cubic metre", "cubic metres"}, 1e3},
	Unit[Factor]{"Cubic Kilometer", []string{"km3", "cubic kilometer", "cubic kilometers", "cubic kilometre", "cubic kilometres"}, 1e12},
	Unit[Factor]{"Cubic Inch", []string{"in3", "cu in", "cubic inch", "cubic inches"}, 0.016387064},
	Unit[Factor]{"Cubic Foot", []string{"ft3", "cu ft", "cubic foot", "cubic feet"}, 28.316846592},
	Unit[Factor]{"Cubic Yard", []string{"yd3", "cu yd", "cubic yard", "cubic yards"}, 764.554857984},
	Unit[Factor]{"US Teaspoon", []string{"tsp", "teaspoon", "teaspoons"}, usGallon / 768.0},
	Unit[Factor]{"US Tablespoon", []string{"tbsp", "tablespoon", "tablespoons"}, usGallon / 256.0},
	Unit[Factor]{"US Fluid Ounce", []string{"floz", "fl oz", "fluid ounce", "fluid ounces", "us fl oz"}, usGallon / 128.0},
	Unit[Factor]{"US Cup", []string{"cup", "cups", "us cup"}, usGallon / 16.0},
	Unit[Factor]{"US Pint", []string{"pt", "pint", "pints", "us pint"}, usGallon / 8.0},
	Unit[Factor]{"US Quart", []string{"qt", "quart", "quarts", "us quart"}, usGallon / 4.0},
	Unit[Factor]{"US Gallon", []string{"gal", "gallon", "gallons", "us gal", "us gallon"}, usGallon},
	Unit[Factor]{"Imperial Fluid Ounce", []string{"imp fl oz", "imperial fluid ounce", "imperial fluid ounces", "uk fl oz"}, 0.0284130625},
	Unit[Factor]{"Imperial Pint", []string{"imp pt", "imperial pint", "imperial pints", "uk pint"}, 0.56826125},
	Unit[Factor]{"Imperial Quart", []string{"imp qt", "imperial quart", "imperial quarts", "uk quart"}, 1.1365225},
	Unit[Factor]{"Imperial Gallon", []string{"imp gal", "imperial gallon", "imperial gallons", "uk gallon"}, 4.54609},
	Unit[Factor]{"Oil Barrel", []string{"bbl", "barrel", "barrels", "oil barrel"}, 42.0 * usGallon},
	Unit[Factor]{"US Bushel", []string{"bu", "bushel", "bushels"}, 35.23907016688},
)
