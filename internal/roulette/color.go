package roulette

type Color string

const (
	Green Color = "green"
	Red   Color = "red"
	Black Color = "black"
)

const (
	MinNumber = 0
	MaxNumber = 36
)

var redNumbers = map[int]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 9: {}, 12: {}, 14: {}, 16: {}, 18: {},
	19: {}, 21: {}, 23: {}, 25: {}, 27: {}, 30: {}, 32: {}, 34: {}, 36: {},
}

// ValidNumber reports whether n is a pocket of a single-zero wheel.
func ValidNumber(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// ColorOf derives the pocket color. Out-of-range numbers have no color.
func ColorOf(n int) Color {
	switch {
	case !ValidNumber(n):
		return ""
	case n == 0:
		return Green
	}
	if _, ok := redNumbers[n]; ok {
		return Red
	}
	return Black
}
