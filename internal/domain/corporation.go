package domain

// Corporation is one of the seven fixed hotel chains.
type Corporation string

const (
	NoCorporation Corporation = ""
	American      Corporation = "American"
	Continental   Corporation = "Continental"
	Festival      Corporation = "Festival"
	Imperial      Corporation = "Imperial"
	Luxor         Corporation = "Luxor"
	Tower         Corporation = "Tower"
	Worldwide     Corporation = "Worldwide"
)

// Corporations lists every corporation in alphabetical order.
var Corporations = []Corporation{American, Continental, Festival, Imperial, Luxor, Tower, Worldwide}

var tierBase = map[Corporation]int{
	Luxor:       200,
	Tower:       200,
	American:    300,
	Festival:    300,
	Worldwide:   300,
	Continental: 400,
	Imperial:    400,
}

// Valid reports whether c names one of the seven corporations.
func (c Corporation) Valid() bool {
	_, ok := tierBase[c]
	return ok
}

// TierBase returns the base share price of the corporation's price class.
func (c Corporation) TierBase() int {
	return tierBase[c]
}

// sizeBonus is flat within each band; sizes below 3 add nothing.
func sizeBonus(size int) int {
	switch {
	case size <= 2:
		return 0
	case size <= 5:
		return (size - 2) * 100
	case size <= 10:
		return 400
	case size <= 20:
		return 500
	case size <= 30:
		return 600
	case size <= 40:
		return 700
	default:
		return 800
	}
}

// Price returns the share price of a corporation for a chain of the given size.
// Sizes below 2 are priced as size 2.
func Price(c Corporation, size int) int {
	if size < 2 {
		size = 2
	}
	return c.TierBase() + sizeBonus(size)
}

// MajorityBonus is ten times the share price.
func MajorityBonus(c Corporation, size int) int {
	return Price(c, size) * 10
}

// MinorityBonus is five times the share price.
func MinorityBonus(c Corporation, size int) int {
	return Price(c, size) * 5
}

// RoundUpHundred rounds n up to the nearest multiple of 100.
func RoundUpHundred(n int) int {
	if n <= 0 {
		return 0
	}
	return ((n + 99) / 100) * 100
}

// SplitBonus divides amount among n holders, rounding each share up to the nearest 100.
func SplitBonus(amount, n int) int {
	if n <= 0 {
		return 0
	}
	return RoundUpHundred((amount + n - 1) / n)
}
