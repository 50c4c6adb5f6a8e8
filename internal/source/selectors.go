package source

import (
	"encoding/json"
	"fmt"
	"os"
)

// SelectorConfig drives ParsePage's traversal of a rendered storefront
// listing page.
type SelectorConfig struct {
	DealList ListSelectors `json:"deal_list"`
}

type ListSelectors struct {
	Container ListContainer `json:"container"`
	Elements  ListElements  `json:"elements"`
}

type ListContainer struct {
	Item           string `json:"item"`            // e.g., "li.deal-tile"
	IgnoreModifier string `json:"ignore_modifier"` // e.g., ".promo-banner"
}

type ListElements struct {
	Type          string `json:"type"`
	TitleLink     string `json:"title_link"`
	FinalPrice    string `json:"final_price"`
	OriginalPrice string `json:"original_price"`
	Discount      string `json:"discount"`
	OfferEnds     string `json:"offer_ends"`
	Votes         string `json:"votes"`
	Voices        string `json:"voices"`
	Subtitles     string `json:"subtitles"`
}

// LoadSelectors loads the selector configuration from the specified JSON file.
func LoadSelectors(path string) (SelectorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SelectorConfig{}, fmt.Errorf("failed to read selector config file: %w", err)
	}
	return LoadSelectorsFromBytes(data)
}

// LoadSelectorsFromBytes parses selector configuration from raw JSON bytes.
// This supports loading from embedded data via go:embed.
func LoadSelectorsFromBytes(data []byte) (SelectorConfig, error) {
	var config SelectorConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return SelectorConfig{}, fmt.Errorf("failed to parse selector config JSON: %w", err)
	}
	return config, nil
}

// DefaultSelectors returns the fallback configuration if no JSON file is
// loaded. The embedded selectors.json should be preferred.
func DefaultSelectors() SelectorConfig {
	return SelectorConfig{
		DealList: ListSelectors{
			Container: ListContainer{
				Item:           "li.deal-tile",
				IgnoreModifier: ".promo-banner",
			},
			Elements: ListElements{
				Type:          ".deal-type",
				TitleLink:     ".deal-title a",
				FinalPrice:    ".price-final",
				OriginalPrice: ".price-original",
				Discount:      ".discount-badge",
				OfferEnds:     ".offer-ends",
				Votes:         ".vote-count",
				Voices:        ".spec-voices",
				Subtitles:     ".spec-subtitles",
			},
		},
	}
}
