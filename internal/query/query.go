// Package query implements the display pipeline over enriched deals:
// aggregate, filter, sort, paginate, in that fixed order. Every stage is a
// pure function of its input; the pipeline holds no state and recomputes
// fully on each call, so the caller owns all view state and any caching.
package query

import (
	"math"
	"sort"
	"strings"

	"dealboard/internal/models"
	"dealboard/internal/util"
)

// PageSize is the fixed number of deals per result page.
const PageSize = 30

// SortMode selects the comparison key for the sort stage.
type SortMode string

const (
	SortRelevance      SortMode = ""
	SortPriceAsc       SortMode = "price_asc"
	SortPriceDesc      SortMode = "price_desc"
	SortDiscountAsc    SortMode = "discount_asc"
	SortDiscountDesc   SortMode = "discount_desc"
	SortExpiryAsc      SortMode = "expiry_asc"
	SortExpiryDesc     SortMode = "expiry_desc"
	SortPopularityAsc  SortMode = "popularity_asc"
	SortPopularityDesc SortMode = "popularity_desc"
)

// Params is the caller-owned view state applied to one pipeline run. All
// filters are optional and conjunctive; empty fields match everything.
type Params struct {
	Country  string
	Type     string
	Title    string
	Sort     SortMode
	Cheapest bool
	Page     int
}

// Result is one page of deals plus the page count for the whole filtered set.
type Result struct {
	Deals      []models.EnrichedDeal
	TotalPages int
}

// Run applies the full pipeline: aggregate, filter, sort, paginate.
func Run(deals []models.EnrichedDeal, p Params) Result {
	if p.Cheapest {
		deals = CheapestPerTitle(deals)
	}
	deals = Filter(deals, p)
	deals = Sort(deals, p.Sort)
	return Paginate(deals, p.Page)
}

// CheapestPerTitle collapses duplicate titles to the record with the lowest
// final USD price. The first record seen wins ties, so the reduction is
// deterministic with respect to input order.
func CheapestPerTitle(deals []models.EnrichedDeal) []models.EnrichedDeal {
	index := make(map[string]int, len(deals))
	kept := make([]models.EnrichedDeal, 0, len(deals))
	for _, d := range deals {
		i, seen := index[d.Title]
		if !seen {
			index[d.Title] = len(kept)
			kept = append(kept, d)
			continue
		}
		if d.FinalPriceUSD < kept[i].FinalPriceUSD {
			kept[i] = d
		}
	}
	return kept
}

// Filter keeps deals matching every active filter: country equality, type
// equality, and case-insensitive title substring.
func Filter(deals []models.EnrichedDeal, p Params) []models.EnrichedDeal {
	if p.Country == "" && p.Type == "" && p.Title == "" {
		return deals
	}
	title := strings.ToLower(p.Title)
	kept := make([]models.EnrichedDeal, 0, len(deals))
	for _, d := range deals {
		if p.Country != "" && d.Country != p.Country {
			continue
		}
		if p.Type != "" && d.Type != p.Type {
			continue
		}
		if title != "" && !strings.Contains(strings.ToLower(d.Title), title) {
			continue
		}
		kept = append(kept, d)
	}
	return kept
}

// Deals with an unknown expiry sort to the end under both expiry directions:
// their key is +inf when ascending and -inf when descending.
const (
	expiryMissingLast  = int64(math.MaxInt64)
	expiryMissingFirst = int64(math.MinInt64)
)

func expiryKey(d models.EnrichedDeal, missing int64) int64 {
	if d.Expiry == nil {
		return missing
	}
	return d.Expiry.UnixMilli()
}

// lessFuncs keys each sort mode to its comparison. Non-numeric discount
// values compare as NaN, which is never less than anything; under a stable
// sort such records keep their incoming relative position.
var lessFuncs = map[SortMode]func(a, b models.EnrichedDeal) bool{
	SortPriceAsc:  func(a, b models.EnrichedDeal) bool { return a.FinalPriceUSD < b.FinalPriceUSD },
	SortPriceDesc: func(a, b models.EnrichedDeal) bool { return a.FinalPriceUSD > b.FinalPriceUSD },
	SortDiscountAsc: func(a, b models.EnrichedDeal) bool {
		return util.SafeFloat(a.Discount) < util.SafeFloat(b.Discount)
	},
	SortDiscountDesc: func(a, b models.EnrichedDeal) bool {
		return util.SafeFloat(a.Discount) > util.SafeFloat(b.Discount)
	},
	SortExpiryAsc: func(a, b models.EnrichedDeal) bool {
		return expiryKey(a, expiryMissingLast) < expiryKey(b, expiryMissingLast)
	},
	SortExpiryDesc: func(a, b models.EnrichedDeal) bool {
		return expiryKey(a, expiryMissingFirst) > expiryKey(b, expiryMissingFirst)
	},
	SortPopularityAsc:  func(a, b models.EnrichedDeal) bool { return a.Votes < b.Votes },
	SortPopularityDesc: func(a, b models.EnrichedDeal) bool { return a.Votes > b.Votes },
}

// Sort orders deals by the given mode without mutating the input. Sorting is
// stable: equal keys keep their incoming relative order. Relevance (and any
// unknown mode) leaves the input order untouched.
func Sort(deals []models.EnrichedDeal, mode SortMode) []models.EnrichedDeal {
	less, ok := lessFuncs[mode]
	if !ok {
		return deals
	}
	sorted := make([]models.EnrichedDeal, len(deals))
	copy(sorted, deals)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

// Paginate slices out one fixed-size page. Clamping the page index into
// range is the caller's job; an out-of-range page yields an empty page, not
// a panic.
func Paginate(deals []models.EnrichedDeal, page int) Result {
	totalPages := (len(deals) + PageSize - 1) / PageSize
	start := page * PageSize
	if page < 0 || start >= len(deals) {
		return Result{TotalPages: totalPages}
	}
	end := start + PageSize
	if end > len(deals) {
		end = len(deals)
	}
	return Result{Deals: deals[start:end], TotalPages: totalPages}
}
