package numeric

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Prefix returns the length of the longest prefix of s that is a decimal
// floating-point literal: an optional sign, digits with an optional fraction
// (at least one digit overall) and an optional exponent. It returns 0 when s
// does not start with such a literal.
//
// Hex floats, "inf" and "nan" are not recognized.
func Prefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}

	if digits == 0 {
		return 0
	}

	// The exponent only counts when at least one exponent digit follows.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}

	return i
}

// ParseLenient parses the numeric prefix of s and ignores whatever follows.
// It fails only when s has no numeric prefix at all.
//
// Overflowing literals yield ±Inf (or 0 on underflow) and still succeed.
func ParseLenient(s string) (float64, bool) {
	n := Prefix(s)
	if n == 0 {
		return 0, false
	}
	return parse(s[:n])
}

// ParseStrict parses s as a single numeric literal. Only whitespace may follow
// the literal; any other trailing character makes the parse fail.
func ParseStrict(s string) (float64, bool) {
	n := Prefix(s)
	if n == 0 {
		return 0, false
	}
	if strings.TrimLeftFunc(s[n:], unicode.IsSpace) != "" {
		return 0, false
	}
	return parse(s[:n])
}

func parse(lit string) (float64, bool) {
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
