package catalog

import (
	"strings"

	"gearflip/internal"
)

const (
	sweetwaterBaseURL   = "https://www.sweetwater.com"
	guitarCenterBaseURL = "https://www.guitarcenter.com"
)

// UsedListingURL builds the listing locator for a used record from its
// source-specific slug format.
func UsedListingURL(rec internal.ListingRecord) string {
	store := rec.Store
	if store == "" {
		store = internal.StoreGuitarCenter
	}
	slug := rec.Slug
	if slug == "" {
		return rec.URL
	}

	switch store {
	case internal.StoreSweetwater:
		if !strings.HasPrefix(slug, "/used/listings/") {
			slug = "/used/listings/" + slug
		}
		return sweetwaterBaseURL + slug
	case internal.StoreGuitarCenter:
		if !strings.HasPrefix(slug, "http") {
			return guitarCenterBaseURL + slug
		}
		return slug
	default:
		return slug
	}
}
