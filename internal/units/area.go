package units

import "math"

const acre = 4046.8564224

// Base unit: square meter.
var areaUnits = NewRegistry(Area,
	Unit[Factor]{"Square Kilometer", []string{
		"km2", "sqkm", "sq km", "square km",
		"square kilometer", "square kilometers", "square kilometre", "square kilometres",
		"sq kilometer", "sq kilometre", "sq kilometers", "sq kilometres",
		"kilometers squared", "kilometres squared",
	}, 1e6},
	Unit[Factor]{"Square Meter", []string{
		"m2", "sqm", "sq m", "square m",
		"square meter", "square meters", "square metre", "square metres",
		"sq meter", "sq metre", "sq meters", "sq metres",
		"meters squared", "metres squared",
	}, 1.0},
	Unit[Factor]{"Square Centimeter", []string{
		"cm2", "sqcm", "sq cm", "square cm",
		"square centimeter", "square centimeters", "square centimetre", "square centimetres",
		"sq centimeter", "sq centimetre", "sq centimeters", "sq centimetres",
		"centimeters squared", "centimetres squared",
	}, 1e-4},
	Unit[Factor]{"Square Millimeter", []string{
		"mm2", "sqmm", "sq mm", "square mm",
		"square millimeter", "square millimeters", "square millimetre", "square millimetres",
		"sq millimeter", "sq millimetre", "sq millimeters", "sq millimetres",
		"millimeters squared", "millimetres squared",
	}, 1e-6},
	Unit[Factor]{"Hectare", []string{"ha", "hectare", "hectares", "hectar"}, 1e4},
	Unit[Factor]{"Are", []string{
		"a", "are", "ares", "sq dam", "square decametre", "square decametres",
		"square decameter", "square decameters",
	}, 100.0},
	Unit[Factor]{"Decare", []string{
		"daa", "decare", "decares", "sq hm", "square hectometre", "square hectometres",
		"square hectometer", "square hectometers",
	}, 1e3},
	Unit[Factor]{"Square Mile", []string{"sqmi", "sq mi", "square mi", "square mile", "square miles", "miles squared"}, 2.589988110336e6},
	Unit[Factor]{"Acre (International)", []string{"ac", "acre", "acres", "international acre"}, acre},
	Unit[Factor]{"Acre (US Survey)", []string{"us ac", "survey acre", "us acre"}, 4046.8726098},
	Unit[Factor]{"Square Yard", []string{"yd2", "sqyd", "sq yd", "square yd", "square yard", "square yards", "yards squared"}, 0.83612736},
	Unit[Factor]{"Square Foot (International)", []string{
		"ft2", "sqft", "square ft", "square foot", "square feet",
		"sq ft", "feet squared", "foot squared",
	}, 0.09290304},
	Unit[Factor]{"Square Foot (US Survey)", []string{"us square foot", "survey square foot"}, 0.0929034116132},
	Unit[Factor]{"Square Inch", []string{"in2", "sqin", "sq in", "square in", "square inch", "square inches", "inches squared"}, 0.00064516},
	Unit[Factor]{"Rood", []string{"rood", "roods"}, 1011.7141056},
	Unit[Factor]{"Square Chain", []string{"sqch", "sq ch", "square chain", "square chains", "chains squared"}, 404.68564224},
	Unit[Factor]{"Square Furlong", []string{"square furlong", "square furlongs", "furlongs squared"}, 40468.564224},
	Unit[Factor]{"Square Perch", []string{
		"square perch", "square perches", "square rod", "square rods",
		"square pole", "square poles", "sq rod", "sq pole", "sq perch",
	}, 25.29285264},
	Unit[Factor]{"Township", []string{"township", "townships", "twp"}, 93.23957197215e6},
	Unit[Factor]{"Section", []string{"section", "sections"}, 2.589988110336e6},
	Unit[Factor]{"Homestead", []string{"homestead", "homesteads"}, acre * 160.0},
	Unit[Factor]{"Dunam", []string{"dunam", "dunams", "donum", "dunum"}, 1e3},
	Unit[Factor]{"Tsubo", []string{"tsubo", "tsubos"}, 3.305785},
	Unit[Factor]{"Ping", []string{"ping", "pings"}, 3.3058},
	Unit[Factor]{"Circular Inch", []string{"circular inch", "circular inches", "circ in", "cin"}, math.Pi * 0.0127 * 0.0127},
	Unit[Factor]{"Circular Mil", []string{"circular mil", "circular mils", "cmil"}, math.Pi * 0.0000127 * 0.0000127},
	Unit[Factor]{"Barn", []string{"barn", "barns", "b"}, 1e-28},
	Unit[Factor]{"Centiare", []string{"centiare", "centiares", "ca"}, 1.0},
	Unit[Factor]{"Deciare", []string{"deciare", "deciares", "da"}, 10.0},
	Unit[Factor]{"Killa", []string{"killa"}, 4046.86},
	Unit[Factor]{"Ground", []string{"ground"}, 222.967},
	Unit[Factor]{"Cent", []string{"cent"}, 40.4686},
)
