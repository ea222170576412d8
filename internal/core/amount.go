package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts raw amount text to a positive toman value. Input
// comes from a numeric keyboard that may emit Persian digits and whatever
// thousands separators the user typed; tomans carry no subunit.
//
// Persian digits are normalized first, then every non-digit rune (separators,
// currency marks, stray letters) is dropped and the remainder parsed as a
// decimal. Returns ErrInvalidAmount when nothing parseable remains or the
// value is not strictly positive.
//
// Examples:
//
//	ParseAmount("5000")      -> 5000
//	ParseAmount("۵۰۰۰")      -> 5000
//	ParseAmount("1,250,000") -> 1250000
//	ParseAmount("0")         -> error
func ParseAmount(s string) (float64, error) {
	clean := stripNonDigits(NormalizeDigits(s))
	if clean == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) && r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatAmount renders a toman value with thousands grouping for display,
// e.g. 1250000 -> "1,250,000". Fractional parts are kept as-is after the
// grouped integer part.
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
