// Package currency owns all locale knowledge for deal prices: which currency
// a storefront quotes in, how that locale formats numbers, and how to convert
// parsed amounts to USD. Adding a currency is a table edit here, not a
// control-flow change elsewhere.
package currency

// Code identifies a storefront currency.
type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	INR Code = "INR"
	TRY Code = "TRY"
	MXN Code = "MXN"
)

// countryCurrency maps a storefront country code to the currency its prices
// are quoted in. Countries not listed (US, CA, unknown) quote in USD.
var countryCurrency = map[string]Code{
	"IN": INR,
	"ES": EUR,
	"FR": EUR,
	"DE": EUR,
	"IT": EUR,
	"TR": TRY,
	"MX": MXN,
	"GB": GBP,
}

// ForCountry resolves the currency assumed for prices from a country.
func ForCountry(country string) Code {
	if code, ok := countryCurrency[country]; ok {
		return code
	}
	return USD
}

// Table maps a currency code to its USD conversion factor.
type Table map[Code]float64

// ToUSD converts an amount into USD. Codes missing from the table pass
// through at 1:1.
func (t Table) ToUSD(amount float64, code Code) float64 {
	rate, ok := t[code]
	if !ok {
		return amount
	}
	return amount * rate
}
