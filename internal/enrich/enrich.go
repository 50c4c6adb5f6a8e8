// Package enrich derives the comparable fields every query stage works on.
package enrich

import (
	"time"

	"dealboard/internal/currency"
	"dealboard/internal/expiry"
	"dealboard/internal/models"
	"dealboard/internal/util"
)

// Enricher normalizes raw deals into enriched ones against a fixed rate
// table. It holds no other state.
type Enricher struct {
	conv currency.Converter
}

// New creates an Enricher converting through the given rate table.
func New(rates currency.Table) *Enricher {
	return &Enricher{conv: currency.Converter{Rates: rates}}
}

// Enrich normalizes one raw deal against the given clock reading. It is pure
// and deterministic: the same deal and the same now always produce the same
// result, and it never fails — malformed numbers degrade to 0 and malformed
// dates to an unknown expiry.
func (e *Enricher) Enrich(raw models.RawDeal, now time.Time) models.EnrichedDeal {
	deal := models.EnrichedDeal{RawDeal: raw}
	deal.Votes = util.SafeAtoi(util.CleanNumericString(raw.VotesText))
	deal.FinalPriceUSD = e.conv.FinalPriceUSD(raw)
	deal.OriginalPriceUSD = e.conv.OriginalPriceUSD(raw)
	deal.Expiry = expiry.Parse(raw.OfferEnds, raw.Country)
	deal.Expired = deal.Expiry != nil && deal.Expiry.Before(now)
	return deal
}

// EnrichAll normalizes a whole feed against one clock reading. Expiry status
// depends on now, so callers must re-enrich when the clock materially
// advances rather than caching results indefinitely.
func (e *Enricher) EnrichAll(raw []models.RawDeal, now time.Time) []models.EnrichedDeal {
	deals := make([]models.EnrichedDeal, 0, len(raw))
	for _, r := range raw {
		deals = append(deals, e.Enrich(r, now))
	}
	return deals
}
