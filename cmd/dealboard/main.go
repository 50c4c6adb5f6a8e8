package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"dealboard/internal/config"
	"dealboard/internal/currency"
	"dealboard/internal/enrich"
	"dealboard/internal/query"
	"dealboard/internal/source"
	"dealboard/internal/util"
)

func main() {
	country := flag.String("country", "", "filter by country code")
	dealType := flag.String("type", "", "filter by deal type")
	title := flag.String("title", "", "filter by title substring")
	sortMode := flag.String("sort", "", "sort mode: price_asc, price_desc, discount_asc, discount_desc, expiry_asc, expiry_desc, popularity_asc, popularity_desc")
	cheapest := flag.Bool("cheapest", false, "keep only the cheapest entry per title")
	page := flag.Int("page", 0, "page index (0-based)")
	flag.Parse()

	cfg := config.Load()
	rates := currency.LoadTable()

	ctx := context.Background()
	raw, err := source.LoadDir(ctx, cfg.DataDir)
	if err != nil {
		slog.Error("Failed to load data files", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded deal records", "count", len(raw), "dir", cfg.DataDir)

	deals := enrich.New(rates).EnrichAll(raw, time.Now())

	params := query.Params{
		Country:  *country,
		Type:     *dealType,
		Title:    *title,
		Sort:     query.SortMode(*sortMode),
		Cheapest: *cheapest,
		Page:     *page,
	}
	if params.Page < 0 {
		params.Page = 0
	}
	result := query.Run(deals, params)
	// The pipeline leaves page clamping to its caller.
	if len(result.Deals) == 0 && result.TotalPages > 0 && params.Page >= result.TotalPages {
		params.Page = result.TotalPages - 1
		result = query.Run(deals, params)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COUNTRY\tTYPE\tTITLE\tDISC\tUSD\tORIG USD\tEXPIRES\tVOTES\tSTORE")
	for _, d := range result.Deals {
		expires := "-"
		if d.Expired {
			expires = "expired"
		} else if d.Expiry != nil {
			expires = d.Expiry.Format("02/01/2006")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s%%\t$%.2f\t$%.2f\t%s\t%d\t%s\n",
			d.Country, d.Type, d.Title, d.Discount,
			d.FinalPriceUSD, d.OriginalPriceUSD, expires, d.Votes, util.Domain(d.Link))
	}
	w.Flush()
	fmt.Printf("Page %d of %d (%d on page)\n", params.Page+1, result.TotalPages, len(result.Deals))
}
