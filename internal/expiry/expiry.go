// Package expiry parses free-text offer-end timestamps into absolute
// instants. Storefronts disagree on date component order and append
// localized 12-hour times with whole-hour GMT offsets, so parsing is keyed
// by the record's country.
package expiry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// fullRegex matches "D/M/YYYY H:MM a.m. GMT+N" with "/" or "." as the
	// date separator. The first two components are day/month except for
	// month-first countries.
	fullRegex = regexp.MustCompile(`(?i)(\d{1,2})[/.](\d{1,2})[/.](\d{4})\s+(\d{1,2}):(\d{2})\s*(a\.m\.|p\.m\.)\s*GMT([+-]?\d+)`)

	// dateRegex matches a bare "D/M/YYYY" with no time of day.
	dateRegex = regexp.MustCompile(`(\d{1,2})[/.](\d{1,2})[/.](\d{4})`)
)

// monthFirst reports whether a country writes dates month-before-day.
func monthFirst(country string) bool {
	return country == "US" || country == "CA"
}

// Parse extracts an absolute expiry instant from offer-end text. It never
// fails: text with nothing date-like in it yields nil, which callers treat
// as "expiry unknown". Timed matches are anchored at the given whole-hour
// GMT offset; date-only matches are anchored at local midnight.
func Parse(text, country string) *time.Time {
	if m := fullRegex.FindStringSubmatch(text); m != nil {
		day, month := atoi(m[1]), atoi(m[2])
		if monthFirst(country) {
			day, month = month, day
		}
		hour := atoi(m[4])
		if strings.EqualFold(m[6], "p.m.") {
			if hour < 12 {
				hour += 12
			}
		} else if hour == 12 {
			hour = 0
		}
		offset, _ := strconv.Atoi(m[7])
		zone := time.FixedZone(fmt.Sprintf("GMT%+d", offset), offset*3600)
		t := time.Date(atoi(m[3]), time.Month(month), day, hour, atoi(m[5]), 0, 0, zone)
		return &t
	}

	if m := dateRegex.FindStringSubmatch(text); m != nil {
		day, month := atoi(m[1]), atoi(m[2])
		if monthFirst(country) {
			day, month = month, day
		}
		t := time.Date(atoi(m[3]), time.Month(month), day, 0, 0, 0, 0, time.Local)
		return &t
	}

	return nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
