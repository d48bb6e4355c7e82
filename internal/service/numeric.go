package service

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseFloatPrefix parses the longest leading decimal literal of s and ignores the rest,
// so "5abc" is 5 and ".5x" is 0.5. Leading whitespace is skipped and a signed "Infinity"
// is recognized. It returns NaN when no numeric prefix exists.
func ParseFloatPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, isSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			digits++
		}
		if digits > 0 {
			i = j
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	// An exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	// Out of range literals keep the ±Inf or 0 ParseFloat returns.
	return f
}

// ParseIntPrefix parses the leading integer of s. A "0x" prefix selects base 16,
// otherwise base 10; trailing garbage is ignored. ok is false when no digits were found.
// Values beyond the int32 range saturate, which is enough for range checks.
func ParseIntPrefix(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, isSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	const limit = math.MaxInt32
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d < 0 || d >= base {
			break
		}
		ok = true
		if n < limit {
			n = n*base + d
			if n > limit {
				n = limit
			}
		}
	}
	if neg {
		n = -n
	}
	return n, ok
}

// FormatNumber renders f the way a JavaScript Number converts to a string:
// shortest round-trip digits, "NaN", "Infinity", no negative zero and
// exponent notation outside [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}
