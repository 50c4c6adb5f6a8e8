package currency

import (
	"strings"

	"dealboard/internal/models"
)

// Converter turns a raw deal's price text into USD amounts using a fixed
// rate table.
type Converter struct {
	Rates Table
}

// FinalPriceUSD normalizes the deal's final price into USD. INR and TRY
// feeds ship pre-parsed numbers that disagree with their price text, so for
// those currencies the text is authoritative; everywhere else a pre-parsed
// value takes precedence over re-parsing the text.
func (c Converter) FinalPriceUSD(d models.RawDeal) float64 {
	code := ForCountry(d.Country)
	var amount float64
	if code != INR && code != TRY && d.PriceNum != nil {
		amount = *d.PriceNum
	} else {
		amount = ParseAmount(d.FinalPrice, code)
	}
	return c.Rates.ToUSD(amount, code)
}

// OriginalPriceUSD normalizes the deal's pre-discount price into USD. An
// explicit "US$" prefix on the text overrides the storefront currency for
// this field only; the final price keeps its own currency decision.
func (c Converter) OriginalPriceUSD(d models.RawDeal) float64 {
	code := ForCountry(d.Country)
	if strings.HasPrefix(d.OriginalPrice, "US$") {
		code = USD
	}
	return c.Rates.ToUSD(ParseAmount(d.OriginalPrice, code), code)
}
