package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"dealboard/internal/models"
	"dealboard/internal/util"
)

// ParsePage extracts raw deals from one rendered storefront listing page.
// Extraction is best effort per row: missing elements leave their field
// empty for the normalization core to degrade gracefully, but rows without
// a title are dropped outright since nothing downstream can key on them.
func ParsePage(r io.Reader, country string, selectors SelectorConfig) ([]models.RawDeal, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page HTML: %w", err)
	}

	list := selectors.DealList
	if doc.Find(list.Container.Item).Length() == 0 {
		return nil, fmt.Errorf("no %q elements found. Potential block or page structure change", list.Container.Item)
	}

	var deals []models.RawDeal
	doc.Find(list.Container.Item).Each(func(_ int, s *goquery.Selection) {
		if list.Container.IgnoreModifier != "" && s.Is(list.Container.IgnoreModifier) {
			return
		}

		deal := models.RawDeal{Country: country}

		titleLink := s.Find(list.Elements.TitleLink).First()
		deal.Title = strings.TrimSpace(titleLink.Text())
		if deal.Title == "" {
			return
		}
		if href, exists := titleLink.Attr("href"); exists {
			deal.Link = util.NormalizeLink(strings.TrimSpace(href))
		}

		deal.Type = elementText(s, list.Elements.Type)
		deal.FinalPrice = elementText(s, list.Elements.FinalPrice)
		deal.OriginalPrice = elementText(s, list.Elements.OriginalPrice)
		deal.Discount = elementText(s, list.Elements.Discount)
		deal.OfferEnds = elementText(s, list.Elements.OfferEnds)
		deal.VotesText = elementText(s, list.Elements.Votes)
		deal.Voices = elementText(s, list.Elements.Voices)
		deal.Subtitles = elementText(s, list.Elements.Subtitles)

		deals = append(deals, deal)
	})

	return deals, nil
}

func elementText(s *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	return strings.TrimSpace(s.Find(selector).First().Text())
}
