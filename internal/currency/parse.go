package currency

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// spaceStripper removes regular, no-break and narrow no-break spaces,
	// all of which appear as group separators in storefront price text.
	spaceStripper = strings.NewReplacer(" ", "", "\t", "", "\u00a0", "", "\u202f", "")

	nonDigitDotRegex = regexp.MustCompile(`[^\d.]`)
	nonDigitRegex    = regexp.MustCompile(`\D`)
)

// ParseAmount converts locale-formatted price text into a float magnitude.
// It is a best-effort normalizer, not a validator: empty or unparseable input
// yields 0, never an error. A literal "US$" prefix marks the amount as
// dot-decimal dollar text regardless of which storefront it came from and
// overrides the supplied code entirely.
func ParseAmount(text string, code Code) float64 {
	if text == "" {
		return 0
	}
	if strings.HasPrefix(text, "US$") {
		return safeParseFloat(nonDigitDotRegex.ReplaceAllString(text, ""))
	}

	s := spaceStripper.Replace(text)
	switch code {
	case INR:
		// Lakh-grouped integers, no fractional part is representable.
		n, err := strconv.Atoi(nonDigitRegex.ReplaceAllString(s, ""))
		if err != nil {
			return 0
		}
		return float64(n)
	case USD, GBP:
		s = strings.ReplaceAll(s, ",", "")
		return safeParseFloat(nonDigitDotRegex.ReplaceAllString(s, ""))
	case EUR, MXN, TRY:
		// Dots group thousands; the last comma, if any, is the decimal point.
		if i := strings.LastIndex(s, ","); i >= 0 {
			intPart := nonDigitRegex.ReplaceAllString(s[:i], "")
			decPart := nonDigitRegex.ReplaceAllString(s[i+1:], "")
			return safeParseFloat(intPart + "." + decPart)
		}
		return safeParseFloat(nonDigitRegex.ReplaceAllString(s, ""))
	default:
		return safeParseFloat(nonDigitDotRegex.ReplaceAllString(s, ""))
	}
}

func safeParseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
