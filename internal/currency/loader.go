package currency

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

//go:embed rates.json
var embeddedRates embed.FS

// LoadTable resolves the USD conversion-rate table in the following order:
// 1. Embedded rates.json
// 2. External file named by DEALBOARD_RATES_PATH
// 3. Hardcoded defaults
// Rates stay static for the lifetime of the process; nothing here fetches.
func LoadTable() Table {
	data, err := embeddedRates.ReadFile("rates.json")
	if err == nil {
		table, parseErr := TableFromBytes(data)
		if parseErr == nil {
			return table
		}
		slog.Warn("Embedded rates failed to parse. Trying file fallback.", "error", parseErr)
	}

	if path := os.Getenv("DEALBOARD_RATES_PATH"); path != "" {
		if table, err := TableFromFile(path); err == nil {
			slog.Info("Loaded conversion rates from external file", "path", path)
			return table
		} else {
			slog.Warn("Failed to load external rates, falling back to defaults", "path", path, "error", err)
		}
	}

	slog.Info("Using hardcoded default conversion rates")
	return DefaultTable()
}

// TableFromFile loads a rate table from a JSON file.
func TableFromFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rates file: %w", err)
	}
	return TableFromBytes(data)
}

// TableFromBytes parses a rate table from raw JSON bytes. This supports
// loading from embedded data via go:embed.
func TableFromBytes(data []byte) (Table, error) {
	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse rates JSON: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("rates JSON contains no entries")
	}
	return table, nil
}

// DefaultTable returns the fallback rate table if no JSON source is loadable.
// The embedded rates.json should be preferred.
func DefaultTable() Table {
	return Table{
		USD: 1,
		EUR: 1.16,
		GBP: 1.34,
		INR: 0.0125,
		TRY: 0.0253,
		MXN: 0.055,
	}
}
