package pipeline

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"gearflip/internal"
	"gearflip/internal/catalog"
	"gearflip/internal/config"
)

type ReportOptions struct {
	MinMatchScore   float64
	UsedPriceMin    float64
	UsedPriceMax    float64
	NewPriceMin     float64
	NewPriceMax     float64
	Limit           int
	FlatShippingFee float64
	Workers         int
}

func OptionsFromConfig(cfg config.Config) ReportOptions {
	return ReportOptions{
		MinMatchScore:   cfg.MinMatchScore,
		UsedPriceMin:    cfg.UsedPriceMin,
		UsedPriceMax:    cfg.UsedPriceMax,
		NewPriceMin:     cfg.NewPriceMin,
		NewPriceMax:     cfg.NewPriceMax,
		Limit:           cfg.ReportLimit,
		FlatShippingFee: cfg.FlatShippingFee,
		Workers:         cfg.ReportWorkers,
	}
}

// BuildReport runs the matcher over every used listing and assembles the
// arbitrage report: entries with a positive price difference, stably sorted
// by match score descending, then filtered to the configured price bands and
// minimum score, then truncated. Filters apply after the sort, so truncation
// follows score rank. Matches for different used listings are independent
// and read only the shared brand index, so the pass runs on a bounded worker
// pool; results are collected per input position to keep the outcome
// deterministic.
func BuildReport(ctx context.Context, used []internal.ListingRecord, matcher *Matcher, opts ReportOptions) ([]internal.ArbitrageEntry, error) {
	results := make([]*internal.ArbitrageEntry, len(used))

	g, ctx := errgroup.WithContext(ctx)
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i := range used {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rec := used[i]
			matched, score := matcher.FindBestMatch(rec)
			if matched == nil {
				return nil
			}

			shipping := effectiveShipping(rec, opts.FlatShippingFee)
			total := rec.Price + shipping
			difference := matched.Price - total
			if difference <= 0 {
				return nil
			}

			results[i] = &internal.ArbitrageEntry{
				Used:            rec,
				New:             *matched,
				UsedShipping:    shipping,
				UsedTotalPrice:  total,
				PriceDifference: difference,
				MatchScore:      score,
				UsedURL:         catalog.UsedListingURL(rec),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]internal.ArbitrageEntry, 0, len(results))
	for _, e := range results {
		if e != nil {
			entries = append(entries, *e)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MatchScore > entries[j].MatchScore
	})

	kept := make([]internal.ArbitrageEntry, 0, len(entries))
	for _, e := range entries {
		if e.Used.Price <= opts.UsedPriceMin || e.Used.Price >= opts.UsedPriceMax {
			continue
		}
		if e.New.Price <= opts.NewPriceMin || e.New.Price >= opts.NewPriceMax {
			continue
		}
		if e.MatchScore <= opts.MinMatchScore {
			continue
		}
		kept = append(kept, e)
	}
	if opts.Limit > 0 && len(kept) > opts.Limit {
		kept = kept[:opts.Limit]
	}
	return kept, nil
}

// effectiveShipping applies the store-specific default: Sweetwater listings
// ship free unless a price is set, every other store gets the flat fee when
// no price is set.
func effectiveShipping(used internal.ListingRecord, flatFee float64) float64 {
	if used.Store == internal.StoreSweetwater {
		return used.ShippingPrice
	}
	if used.ShippingPrice == 0 {
		return flatFee
	}
	return used.ShippingPrice
}
