package units

// Base unit: bit. Decimal prefixes are powers of 1000, binary prefixes
// powers of 1024; the byte is eight bits.
var dataStorageUnits = NewRegistry(DataStorage,
	Unit[Factor]{"Bit", []string{"b", "bit", "bits"}, 1.0},
	Unit[Factor]{"Byte", []string{"B", "byte", "bytes"}, 8.0},
	Unit[Factor]{"Kilobit", []string{"Kb", "kilobit", "kilobits"}, 1e3},
	Unit[Factor]{"Kilobyte", []string{"KB", "kB", "kilobyte", "kilobytes"}, 8e3},
	Unit[Factor]{"Megabit", []string{"Mb", "megabit", "megabits"}, 1e6},
	Unit[Factor]{"Megabyte", []string{"MB", "megabyte", "megabytes"}, 8e6},
	Unit[Factor]{"Gigabit", []string{"Gb", "gigabit", "gigabits"}, 1e9},
	Unit[Factor]{"Gigabyte", []string{"GB", "gigabyte", "gigabytes"}, 8e9},
	Unit[Factor]{"Terabit", []string{"Tb", "terabit", "terabits"}, 1e12},
	Unit[Factor]{"Terabyte", []string{"TB", "terabyte", "terabytes"}, 8e12},
	Unit[Factor]{"Petabit", []string{"Pb", "petabit", "petabits"}, 1e15},
	Unit[Factor]{"Petabyte", []string{"PB", "petabyte", "petabytes"}, 8e15},
	Unit[Factor]{"Exabit", []string{"Eb", "exabit", "exabits"}, 1e18},
	Unit[Factor]{"Exabyte", []string{"EB", "exabyte", "exabytes"}, 8e18},
	Unit[Factor]{"Zettabit", []string{"Zb", "zettabit", "zettabits"}, 1e21},
	Unit[Factor]{"Zettabyte", []string{"ZB", "zettabyte", "zettabytes"}, 8e21},
	Unit[Factor]{"Yottabit", []string{"Yb", "yottabit", "yottabits"}, 1e24},
	Unit[Factor]{"Yottabyte", []string{"YB", "yottabyte", "yottabytes"}, 8e24},
	Unit[Factor]{"Kibibit", []string{"Kib", "kibibit", "kibibits"}, 1024.0},
	Unit[Factor]{"Kibibyte", []string{"KiB", "kibibyte", "kibibytes"}, 8192.0},
	Unit[Factor]{"Mebibit", []string{"Mib", "mebibit", "mebibits"}, 1048576.0},
	Unit[Factor]{"Mebibyte", []string{"MiB", "mebibyte", "mebibytes"}, 8388608.0},
	Unit[Factor]{"Gibibit", []string{"Gib", "gibibit", "gibibits"}, 1073741824.0},
	Unit[Factor]{"Gibibyte", []string{"GiB", "gibibyte", "gibibytes"}, 8589934592.0},
	Unit[Factor]{"Tebibit", []string{"Tib", "tebibit", "tebibits"}, 1099511627776.0},
	Unit[Factor]{"Tebibyte", []string{"TiB", "tebibyte", "tebibytes"}, 8796093022208.0},
	Unit[Factor]{"Pebibit", []string{"Pib", "pebibit", "pebibits"}, 1125899906842624.0},
	Unit[Factor]{"Pebibyte", []string{"PiB", "pebibyte", "pebibytes"}, 9007199254740992.0},
	Unit[Factor]{"Exbibit", []string{"Eib", "exbibit", "exbibits"}, 1152921504606846976.0},
	Unit[Factor]{"Exbibyte", []string{"EiB", "exbibyte", "exbibytes"}, 9223372036854775808.0},
	Unit[Factor]{"Zebibit", []string{"Zib", "zebibit", "zebibits"}, 1180591620717411303424.0},
	Unit[Factor]{"Zebibyte", []string{"ZiB", "zebibyte", "zebibytes"}, 9444732965739290427392.0},
	Unit[Factor]{"Yobibit", []string{"Yib", "yobibit", "yobibits"}, 1208925819614629174706176.0},
	Unit[Factor]{"Yobibyte", []string{"YiB", "yobibyte", "yobibytes"}, 9671406556917033397649408.0},
)

// Base unit: bit per second.
var dataTransferUnits = NewRegistry(DataTransfer,
	Unit[Factor]{"Bit/s", []string{"bps", "bit/s", "b/s"}, 1.0},
	Unit[Factor]{"Byte/s", []string{"Bps", "byte/s", "B/s"}, 8.0},
	Unit[Factor]{"Kilobit/s", []string{"Kbps", "kbps", "kilobit/s", "Kb/s"}, 1e3},
	Unit[Factor]{"Kilobyte/s", []string{"KBps", "KB/s", "kilobyte/s"}, 8e3},
	Unit[Factor]{"Megabit/s", []string{"Mbps", "mbps", "megabit/s", "Mb/s"}, 1e6},
	Unit[Factor]{"Megabyte/s", []string{"MBps", "MB/s", "megabyte/s"}, 8e6},
	Unit[Factor]{"Gigabit/s", []string{"Gbps", "gbps", "gigabit/s", "Gb/s"}, 1e9},
	Unit[Factor]{"Gigabyte/s", []string{"GBps", "GB/s", "gigabyte/s"}, 8e9},
	Unit[Factor]{"Terabit/s", []string{"Tbps", "tbps", "terabit/s", "Tb/s"}, 1e12},
	Unit[Factor]{"Terabyte/s", []string{"TBps", "TB/s", "terabyte/s"}, 8e12},
	Unit[Factor]{"Petabit/s", []string{"Pbps", "pbps", "petabit/s", "Pb/s"}, 1e15},
	Unit[Factor]{"Petabyte/s", []string{"PBps", "PB/s", "petabyte/s"}, 8e15},
	Unit[Factor]{"Exabit/s", []string{"Ebps", "ebps", "exabit/s", "Eb/s"}, 1e18},
	Unit[Factor]{"Exabyte/s", []string{"EBps", "EB/s", "exabyte/s"}, 8e18},
	Unit[Factor]{"Zettabit/s", []string{"Zbps", "zbps", "zettabit/s", "Zb/s"}, 1e21},
	Unit[Factor]{"Zettabyte/s", []string{"ZBps", "ZB/s", "zettabyte/s"}, 8e21},
	Unit[Factor]{"Yottabit/s", []string{"Ybps", "ybps", "yottabit/s", "Yb/s"}, 1e24},
	Unit[Factor]{"Yottabyte/s", []string{"YBps", "YB/s", "yottabyte/s"}, 8e24},
	Unit[Factor]{"Kibibit/s", []string{"Kibps", "Kibit/s", "kibibit/s"}, 1024.0},
	Unit[Factor]{"Kibibyte/s", []string{"KiBps", "KiB/s", "kibibyte/s"}, 1024.0 * 8.0},
	Unit[Factor]{"Mebibit/s", []string{"Mibps", "Mibit/s", "mebibit/s"}, 1048576.0},
	Unit[Factor]{"Mebibyte/s", []string{"MiBps", "MiB/s", "mebibyte/s"}, 1048576.0 * 8.0},
	Unit[Factor]{"Gibibit/s", []string{"Gibps", "Gibit/s", "gibibit/s"}, 1073741824.0},
	Unit[Factor]{"Gibibyte/s", []string{"GiBps", "GiB/s", "gibibyte/s"}, 1073741824.0 * 8.0},
	Unit[Factor]{"Tebibit/s", []string{"Tibps", "Tibit/s", "tebibit/s"}, 1099511627776.0},
	Unit[Factor]{"Tebibyte/s", []string{"TiBps", "TiB/s", "tebibyte/s"}, 1099511627776.0 * 8.0},
	Unit[Factor]{"Pebibit/s", []string{"Pibps", "Pibit/s", "pebibit/s"}, 1125899906842624.0},
	Unit[Factor]{"Pebibyte/s", []string{"PiBps", "PiB/s", "pebibyte/s"}, 1125899906842624.0 * 8.0},
	Unit[Factor]{"Exbibit/s", []string{"Eibps", "Eibit/s", "exbibit/s"}, 1152921504606846976.0},
	Unit[Factor]{"Exbibyte/s", []string{"EiBps", "EiB/s", "exbibyte/s"}, 1152921504606846976.0 * 8.0},
	Unit[Factor]{"Zebibit/s", []string{"Zibps", "Zibit/s", "zebibit/s"}, 1180591620717411303424.0},
	Unit[Factor]{"Zebibyte/s", []string{"ZiBps", "ZiB/s", "zebibyte/s"}, 1180591620717411303424.0 * 8.0},
	Unit[Factor]{"Yobibit/s", []string{"Yibps", "Yibit/s", "yobibit/s"}, 1208925819614629174706176.0},
	Unit[Factor]{"Yobibyte/s", []string{"YiBps", "YiB/s", "yobibyte/s"}, 1208925819614629174706176.0 * 8.0},
)
