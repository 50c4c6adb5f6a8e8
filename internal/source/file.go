// Package source adapts external deal feeds — per-country JSON data files
// and rendered storefront pages — onto the fixed RawDeal shape the
// normalization core consumes. Schema mapping and record validation end
// here; the core never rejects input.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"dealboard/internal/models"
	"dealboard/internal/util"
	"dealboard/internal/validator"
)

// LoadDir reads every *.json data file under dir and merges their records
// into one flat slice in file-name order. Files are decoded concurrently.
// Each file holds either a bare array of deals or a map of country code to
// deal arrays. Records failing validation are dropped with a warning rather
// than failing the load.
func LoadDir(ctx context.Context, dir string) ([]models.RawDeal, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list data files in %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no data files found in %s", dir)
	}
	sort.Strings(paths)

	perFile := make([][]models.RawDeal, len(paths))
	v := validator.New()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read data file %s: %w", path, err)
			}
			deals, err := decodeFile(data)
			if err != nil {
				return fmt.Errorf("failed to decode data file %s: %w", path, err)
			}
			perFile[i] = cleanRecords(deals, v, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []models.RawDeal
	for _, deals := range perFile {
		merged = append(merged, deals...)
	}
	return merged, nil
}

// decodeFile accepts either a bare array of deals or a map of country code
// to deal arrays; map entries are flattened in sorted key order so merging
// stays deterministic.
func decodeFile(data []byte) ([]models.RawDeal, error) {
	var deals []models.RawDeal
	if err := json.Unmarshal(data, &deals); err == nil {
		return deals, nil
	}

	var byCountry map[string][]models.RawDeal
	if err := json.Unmarshal(data, &byCountry); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(byCountry))
	for k := range byCountry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		deals = append(deals, byCountry[k]...)
	}
	return deals, nil
}

// cleanRecords validates decoded records and normalizes their links,
// dropping anything that fails required-field validation.
func cleanRecords(deals []models.RawDeal, v *validator.Validator, path string) []models.RawDeal {
	kept := deals[:0]
	for _, d := range deals {
		if err := v.ValidateStruct(d); err != nil {
			slog.Warn("Dropping invalid deal record", "file", path, "title", d.Title, "error", err)
			continue
		}
		d.Link = util.NormalizeLink(d.Link)
		kept = append(kept, d)
	}
	return kept
}
