package currency

import "testing"

func TestForCountry(t *testing.T) {
	tests := []struct {
		country string
		want    Code
	}{
		{"IN", INR},
		{"ES", EUR},
		{"FR", EUR},
		{"DE", EUR},
		{"IT", EUR},
		{"TR", TRY},
		{"MX", MXN},
		{"GB", GBP},
		{"US", USD},
		{"CA", USD},
		{"ZZ", USD},
		{"", USD},
	}

	for _, tt := range tests {
		if got := ForCountry(tt.country); got != tt.want {
			t.Errorf("ForCountry(%q) = %s, want %s", tt.country, got, tt.want)
		}
	}
}

func TestTableToUSD(t *testing.T) {
	table := Table{EUR: 1.16, INR: 0.0125}

	if got := table.ToUSD(100, EUR); got != 116 {
		t.Errorf("ToUSD(100, EUR) = %v, want 116", got)
	}
	if got := table.ToUSD(800, INR); got != 10 {
		t.Errorf("ToUSD(800, INR) = %v, want 10", got)
	}
	// Unmapped codes pass through at 1:1.
	if got := table.ToUSD(42.5, Code("PLN")); got != 42.5 {
		t.Errorf("ToUSD(42.5, PLN) = %v, want 42.5", got)
	}
}

func TestTableFromBytes(t *testing.T) {
	table, err := TableFromBytes([]byte(`{"USD": 1, "EUR": 1.2}`))
	if err != nil {
		t.Fatalf("TableFromBytes() returned unexpected error: %v", err)
	}
	if table[EUR] != 1.2 {
		t.Errorf("Expected EUR rate 1.2, got %v", table[EUR])
	}
}

func TestTableFromBytes_Invalid(t *testing.T) {
	if _, err := TableFromBytes([]byte(`not json`)); err == nil {
		t.Error("TableFromBytes() should return error for malformed JSON")
	}
	if _, err := TableFromBytes([]byte(`{}`)); err == nil {
		t.Error("TableFromBytes() should return error for an empty table")
	}
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	if table[USD] != 1 {
		t.Errorf("Expected USD rate 1, got %v", table[USD])
	}
	for _, code := range []Code{USD, EUR, GBP, INR, TRY, MXN} {
		if _, ok := table[code]; !ok {
			t.Errorf("DefaultTable() missing rate for %s", code)
		}
	}
}
