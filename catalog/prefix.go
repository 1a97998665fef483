package catalog

// siPrefix is one entry of the standard magnitude-prefix table. The symbol
// column is part of the fixed table but only long names take part in
// prefix expansion.
type siPrefix struct {
	Name   string
	Symbol string
	Factor float64
}

// siPrefixes is the fixed 24-entry SI prefix table, from 1e30 down to
// 1e-30. Casing follows the SI convention: prefixes above kilo are
// capitalized.
var siPrefixes = [24]siPrefix{
	{"Quetta", "Q", 1e30},
	{"Ronna", "R", 1e27},
	{"Yotta", "Y", 1e24},
	{"Zetta", "Z", 1e21},
	{"Exa", "E", 1e18},
	{"Peta", "P", 1e15},
	{"Tera", "T", 1e12},
	{"Giga", "G", 1e9},
	{"Mega", "M", 1e6},
	{"kilo", "k", 1e3},
	{"hecto", "h", 1e2},
	{"deca", "da", 1e1},
	{"deci", "d", 1e-1},
	{"centi", "c", 1e-2},
	{"milli", "m", 1e-3},
	{"micro", "µ", 1e-6},
	{"nano", "n", 1e-9},
	{"pico", "p", 1e-12},
	{"femto", "f", 1e-15},
	{"atto", "a", 1e-18},
	{"zepto", "z", 1e-21},
	{"yocto", "y", 1e-24},
	{"ronto", "r", 1e-27},
	{"quecto", "q", 1e-30},
}
