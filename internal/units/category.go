package units

// Category identifies a measurement domain.
type Category int

const (
	Distance Category = iota
	Weight
	Temperature
	DataStorage
	DataTransfer
	Time
	Volume
	Area
	Frequency
	Force
	Energy
	Power
	Speed
	Currency
)

type categoryInfo struct {
	name    string
	command string
	aliases []string
}

var categories = [...]categoryInfo{
	Distance:     {"distance", "dist", []string{"distance", "length"}},
	Weight:       {"weight", "weight", []string{"mass"}},
	Temperature:  {"temperature", "temp", []string{"temperature"}},
	DataStorage:  {"data storage", "storage", []string{"data", "datastorage"}},
	DataTransfer: {"data transfer", "transfer", []string{"datatransfer", "bandwidth"}},
	Time:         {"time", "time", []string{"duration"}},
	Volume:       {"volume", "volume", []string{"vol"}},
	Area:         {"area", "area", nil},
	Frequency:    {"frequency", "freq", []string{"frequency"}},
	Force:        {"force", "force", nil},
	Energy:       {"energy", "energy", nil},
	Power:        {"power", "power", nil},
	Speed:        {"speed", "speed", []string{"velocity"}},
	Currency:     {"currency", "currency", []string{"cur", "money"}},
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i := range categories {
		out[i] = Category(i)
	}
	return out
}

// String returns the human readable category name.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categories) {
		return "unknown"
	}
	return categories[c].name
}

// Command returns the CLI subcommand name for the category.
func (c Category) Command() string {
	if c < 0 || int(c) >= len(categories) {
		return ""
	}
	return categories[c].command
}

// Aliases returns alternative subcommand names.
func (c Category) Aliases() []string {
	if c < 0 || int(c) >= len(categories) {
		return nil
	}
	return append([]string(nil), categories[c].aliases...)
}
