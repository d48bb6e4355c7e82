package service

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const alphabetSize = 26

// Caesar upper-cases text with full Unicode case mappings (ß becomes SS) and moves
// every letter A-Z by shift positions, wrapping around the alphabet. Other characters
// are kept as they are. A fractional shift lands on the floor of the wrapped position
// and a negative shift moves backwards.
func Caesar(text string, shift float64) string {
	var b strings.Builder
	b.Grow(len(text))

	// Casers keep state, so one is built per call.
	for _, r := range cases.Upper(language.Und).String(text) {
		if r < 'A' || r > 'Z' {
			b.WriteRune(r)
			continue
		}

		pos := math.Mod(float64(r-'A')+shift, alphabetSize)
		if pos < 0 {
			pos += alphabetSize
		}
		idx := int(math.Floor(pos)) % alphabetSize
		b.WriteRune('A' + rune(idx))
	}
	return b.String()
}
