package expiry

import (
	"testing"
	"time"
)

func TestParse_DateOnly(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		country   string
		wantDay   int
		wantMonth time.Month
		wantYear  int
	}{
		{name: "day first outside US/CA", text: "05/03/2025", country: "ES", wantDay: 5, wantMonth: time.March, wantYear: 2025},
		{name: "month first in US", text: "05/03/2025", country: "US", wantDay: 3, wantMonth: time.May, wantYear: 2025},
		{name: "month first in CA", text: "12/01/2026", country: "CA", wantDay: 1, wantMonth: time.December, wantYear: 2026},
		{name: "dot separators", text: "Oferta termina 05.03.2025", country: "DE", wantDay: 5, wantMonth: time.March, wantYear: 2025},
		{name: "embedded in copy", text: "Offer ends 9/6/2025!", country: "GB", wantDay: 9, wantMonth: time.June, wantYear: 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, tt.country)
			if got == nil {
				t.Fatalf("Parse(%q, %q) = nil, want a date", tt.text, tt.country)
			}
			if got.Day() != tt.wantDay || got.Month() != tt.wantMonth || got.Year() != tt.wantYear {
				t.Errorf("Parse(%q, %q) = %v, want %d %s %d", tt.text, tt.country, got, tt.wantDay, tt.wantMonth, tt.wantYear)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("Date-only parse should land at midnight, got %v", got)
			}
		})
	}
}

func TestParse_FullTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		country string
		want    time.Time
	}{
		{
			name:    "pm with positive offset",
			text:    "05/03/2025 11:30 p.m. GMT+2",
			country: "ES",
			want:    time.Date(2025, time.March, 5, 23, 30, 0, 0, time.FixedZone("GMT+2", 2*3600)),
		},
		{
			name:    "midnight is 12 am",
			text:    "05/03/2025 12:00 a.m. GMT+2",
			country: "ES",
			want:    time.Date(2025, time.March, 5, 0, 0, 0, 0, time.FixedZone("GMT+2", 2*3600)),
		},
		{
			name:    "noon is 12 pm",
			text:    "05/03/2025 12:00 p.m. GMT+2",
			country: "ES",
			want:    time.Date(2025, time.March, 5, 12, 0, 0, 0, time.FixedZone("GMT+2", 2*3600)),
		},
		{
			name:    "negative offset with US ordering",
			text:    "11/28/2025 9:00 a.m. GMT-5",
			country: "US",
			want:    time.Date(2025, time.November, 28, 9, 0, 0, 0, time.FixedZone("GMT-5", -5*3600)),
		},
		{
			name:    "uppercase meridiem",
			text:    "05/03/2025 1:15 P.M. GMT+1",
			country: "FR",
			want:    time.Date(2025, time.March, 5, 13, 15, 0, 0, time.FixedZone("GMT+1", 3600)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text, tt.country)
			if got == nil {
				t.Fatalf("Parse(%q, %q) = nil, want %v", tt.text, tt.country, tt.want)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q, %q) = %v, want %v", tt.text, tt.country, got, tt.want)
			}
		})
	}
}

func TestParse_NoMatch(t *testing.T) {
	for _, text := range []string{"", "sin fecha", "ends soon", "99/99"} {
		if got := Parse(text, "ES"); got != nil {
			t.Errorf("Parse(%q) = %v, want nil", text, got)
		}
	}
}
