package models

import "time"

// RawDeal is one deal record exactly as it arrives from a storefront feed.
// The JSON field names are fixed by the upstream per-country data files and
// must not be changed; source adapters map onto this shape, nothing maps off
// of it. RawDeal is never mutated after decoding.
type RawDeal struct {
	Country       string   `json:"pais" validate:"required"`
	Type          string   `json:"tipo"`
	Title         string   `json:"titulo" validate:"required"`
	FinalPrice    string   `json:"precioFinal"`
	OriginalPrice string   `json:"precioOrig"`
	PriceNum      *float64 `json:"precioNum,omitempty"` // pre-parsed final price, when the feed provides one
	Discount      string   `json:"descuento"`
	OfferEnds     string   `json:"offerEnds"`
	VotesText     string   `json:"votes"`
	Voices        string   `json:"voices,omitempty"`
	Subtitles     string   `json:"subtitles,omitempty"`
	Link          string   `json:"link" validate:"omitempty,url"`
}

// EnrichedDeal is a RawDeal with every derived field the query pipeline needs:
// normalized USD prices, an integer vote count, and expiry status. Created
// once per RawDeal by the enricher and immutable afterwards. Expiry is nil
// when the offer-end text could not be parsed; such deals never count as
// expired but sort to the end under the expiry sort modes.
type EnrichedDeal struct {
	RawDeal

	Votes            int     `validate:"gte=0"`
	FinalPriceUSD    float64 `validate:"gte=0"`
	OriginalPriceUSD float64 `validate:"gte=0"`
	Expiry           *time.Time
	Expired          bool
}
