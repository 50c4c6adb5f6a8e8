package source

import (
	"embed"
	"log/slog"
	"os"
)

//go:embed selectors.json
var embeddedSelectors embed.FS

// LoadConfig tries to load selectors in the following order:
// 1. Embedded selectors.json
// 2. External file defined by DEALBOARD_SELECTORS_PATH
// 3. Hardcoded defaults
func LoadConfig() SelectorConfig {
	data, err := embeddedSelectors.ReadFile("selectors.json")
	if err == nil {
		sel, parseErr := LoadSelectorsFromBytes(data)
		if parseErr == nil {
			return sel
		}
		slog.Warn("Embedded selectors failed to parse. Trying file fallback.", "error", parseErr)
	}

	if path := os.Getenv("DEALBOARD_SELECTORS_PATH"); path != "" {
		if fileSel, err := LoadSelectors(path); err == nil {
			slog.Info("Loaded selectors from external file", "path", path)
			return fileSel
		} else {
			slog.Warn("Failed to load external selectors, falling back to defaults", "path", path, "error", err)
		}
	}

	slog.Info("Using hardcoded default selectors")
	return DefaultSelectors()
}
