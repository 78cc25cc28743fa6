package pipeline

import (
	"sort"

	"gearflip/internal"
)

// RealDiscount is the actual markdown on a new listing: original price minus
// current price when both are set and the listing is genuinely reduced,
// otherwise zero.
func RealDiscount(l internal.ListingRecord) float64 {
	if l.OriginalPrice > 0 && l.Price > 0 && l.Price < l.OriginalPrice {
		return l.OriginalPrice - l.Price
	}
	return 0
}

// TopDiscounts returns the top new listings by real discount, descending.
func TopDiscounts(listings []internal.ListingRecord, top int) []internal.DiscountEntry {
	entries := make([]internal.DiscountEntry, 0, len(listings))
	for _, l := range listings {
		discount := RealDiscount(l)
		if discount <= 0 {
			continue
		}
		entries = append(entries, internal.DiscountEntry{Listing: l, RealDiscount: discount})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].RealDiscount > entries[j].RealDiscount
	})
	if top > 0 && len(entries) > top {
		entries = entries[:top]
	}
	return entries
}
