package pipeline

import (
	"testing"

	"gearflip/internal"
	"gearflip/internal/config"
)

func testConfig() config.Config {
	cfg, _ := config.Load()
	return cfg
}

func TestFindBestMatch(t *testing.T) {
	newListings := []internal.ListingRecord{
		{Title: "Fender Vintera Telecaster Deluxe", Brand: "Fender", Price: 1100, Store: internal.StoreGuitarCenter},
		{Title: "Fender Player Stratocaster HSS", Brand: "Fender", Price: 900, Store: internal.StoreGuitarCenter},
	}
	m := NewMatcher(testConfig(), newListings)

	used := internal.ListingRecord{
		Title: "Fender Player Stratocaster", Brand: "Fender", Price: 600,
		Store: internal.StoreSweetwater,
	}
	matched, score := m.FindBestMatch(used)
	if matched == nil {
		t.Fatal("expected a match")
	}
	if matched.Title != "Fender Player Stratocaster HSS" {
		t.Fatalf("matched %q", matched.Title)
	}
	if score <= 70 {
		t.Fatalf("score=%v", score)
	}
}

func TestFindBestMatchNoBrand(t *testing.T) {
	m := NewMatcher(testConfig(), []internal.ListingRecord{
		{Title: "Fender Player Stratocaster HSS", Brand: "Fender", Price: 900},
	})

	if matched, _ := m.FindBestMatch(internal.ListingRecord{Title: "Fender Player Stratocaster", Price: 600}); matched != nil {
		t.Fatalf("matched without brand: %+v", matched)
	}
}

func TestFindBestMatchUnknownBrand(t *testing.T) {
	m := NewMatcher(testConfig(), []internal.ListingRecord{
		{Title: "Fender Player Stratocaster HSS", Brand: "Fender", Price: 900},
	})

	used := internal.ListingRecord{Title: "SG Standard", Brand: "Gibson", Price: 600}
	if matched, _ := m.FindBestMatch(used); matched != nil {
		t.Fatalf("matched against empty bucket: %+v", matched)
	}
}

func TestFindBestMatchBelowThreshold(t *testing.T) {
	// Same brand, dissimilar titles: the textual similarity gate rejects the
	// candidate even though brand and price would otherwise line up.
	m := NewMatcher(testConfig(), []internal.ListingRecord{
		{Title: "Fender Acoustasonic Jazzmaster", Brand: "Fender", Price: 620},
	})

	used := internal.ListingRecord{Title: "Fender Mustang Micro", Brand: "Fender", Price: 600}
	if matched, score := m.FindBestMatch(used); matched != nil {
		t.Fatalf("matched below threshold: %+v score=%v", matched, score)
	}
}

func TestFindBestMatchFirstOfEqualCandidates(t *testing.T) {
	// Strictly-better-only selection keeps the earliest of tied candidates.
	newListings := []internal.ListingRecord{
		{Title: "Fender Player Stratocaster HSS", Brand: "Fender", Price: 900, Slug: "a"},
		{Title: "Fender Player Stratocaster HSS", Brand: "Fender", Price: 950, Slug: "b"},
	}
	m := NewMatcher(testConfig(), newListings)

	used := internal.ListingRecord{Title: "Fender Player Stratocaster", Brand: "Fender", Price: 600}
	matched, _ := m.FindBestMatch(used)
	if matched == nil || matched.Slug != "a" {
		t.Fatalf("matched %+v", matched)
	}
}
