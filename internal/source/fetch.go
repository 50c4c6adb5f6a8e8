package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"dealboard/internal/config"
	"dealboard/internal/models"
	"dealboard/internal/util"
)

// Fetcher downloads storefront listing pages politely: a shared rate
// limiter, a host allowlist, and exponential backoff on failures.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	cfg     *config.Config
}

// NewFetcher creates a Fetcher honoring the configured timeout, retry count,
// request rate and domain allowlist.
func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: cfg.FetchTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.FetchRate), 1),
		cfg:     cfg,
	}
}

// FetchDeals downloads one storefront listing page and parses it into raw
// deals tagged with the given country code.
func (f *Fetcher) FetchDeals(ctx context.Context, pageURL, country string, selectors SelectorConfig) ([]models.RawDeal, error) {
	var deals []models.RawDeal
	err := util.RetryWithBackoff(ctx, f.cfg.MaxRetries, func(attempt int) error {
		if attempt > 0 {
			slog.Warn("Retrying storefront fetch", "url", pageURL, "attempt", attempt)
		}
		res, err := f.get(ctx, pageURL)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		deals, err = ParsePage(res.Body, country, selectors)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch storefront page %s: %w", pageURL, err)
	}
	slog.Info("Fetched storefront page", "url", pageURL, "country", country, "deals", len(deals))
	return deals, nil
}

func (f *Fetcher) get(ctx context.Context, urlStr string) (*http.Response, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL %s: %w", urlStr, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL scheme %s: only http and https allowed", parsedURL.Scheme)
	}

	hostname := parsedURL.Hostname()
	allowed := false
	for _, domain := range f.cfg.AllowedDomains {
		if hostname == domain {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("URL hostname %s is not in allowlist", hostname)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %s: %w", urlStr, err)
	}

	start := time.Now()
	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %s: %w", urlStr, err)
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("failed to fetch URL %s: status code %d", urlStr, res.StatusCode)
	}
	slog.Debug("Fetched page", "url", urlStr, "elapsed", time.Since(start))
	return res, nil
}
