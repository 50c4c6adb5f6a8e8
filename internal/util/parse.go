package util

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// SafeAtoi parses s as an integer, returning 0 when it isn't one.
func SafeAtoi(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}

var nonNumericRegex = regexp.MustCompile(`[^\d]`)

// CleanNumericString strips everything except digits, so "1,024 votes"
// reduces to "1024".
func CleanNumericString(s string) string {
	return nonNumericRegex.ReplaceAllString(s, "")
}

// SafeFloat parses s as a float, returning NaN when it isn't one. Callers
// comparing the result must tolerate NaN's unordered comparisons.
func SafeFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
