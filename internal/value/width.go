package value

import "golang.org/x/text/width"

// DisplayWidth reports the terminal column width of s, classifying each
// rune with golang.org/x/text/width: East Asian Wide and Fullwidth runes
// occupy two columns, everything else occupies one. String#size and
// internal/rtfmt's cursor math both measure strings this way rather than
// by rune count, since a language meant for interactive REPL use should
// report the width its own prompt will actually render.
func DisplayWidth(s string) int {
	total := 0
	for _, r := range s {
		total += runeWidth(r)
	}
	return total
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
