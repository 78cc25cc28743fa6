package catalog

import "gearflip/internal"

// BrandIndex groups new listings by brand for candidate lookup. It is built
// once per run and read-only thereafter; insertion order within a bucket is
// preserved.
type BrandIndex struct {
	ByBrand map[string][]internal.ListingRecord
}

func BuildBrandIndex(listings []internal.ListingRecord) *BrandIndex {
	idx := &BrandIndex{ByBrand: map[string][]internal.ListingRecord{}}
	for _, l := range listings {
		if l.Brand == "" {
			continue
		}
		idx.ByBrand[l.Brand] = append(idx.ByBrand[l.Brand], l)
	}
	return idx
}

// Candidates returns the bucket for brand, nil when the brand is unknown.
func (i *BrandIndex) Candidates(brand string) []internal.ListingRecord {
	if brand == "" {
		return nil
	}
	return i.ByBrand[brand]
}
