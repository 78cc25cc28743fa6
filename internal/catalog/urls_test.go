package catalog

import (
	"testing"

	"gearflip/internal"
)

func TestUsedListingURL(t *testing.T) {
	cases := []struct {
		name string
		rec  internal.ListingRecord
		want string
	}{
		{
			name: "sweetwater slug gets prefix",
			rec:  internal.ListingRecord{Store: internal.StoreSweetwater, Slug: "player-strat"},
			want: "https://www.sweetwater.com/used/listings/player-strat",
		},
		{
			name: "sweetwater slug already prefixed",
			rec:  internal.ListingRecord{Store: internal.StoreSweetwater, Slug: "/used/listings/player-strat"},
			want: "https://www.sweetwater.com/used/listings/player-strat",
		},
		{
			name: "guitar center relative slug",
			rec:  internal.ListingRecord{Store: internal.StoreGuitarCenter, Slug: "/Used/fender-strat.gc"},
			want: "https://www.guitarcenter.com/Used/fender-strat.gc",
		},
		{
			name: "guitar center absolute slug untouched",
			rec:  internal.ListingRecord{Store: internal.StoreGuitarCenter, Slug: "https://www.guitarcenter.com/x"},
			want: "https://www.guitarcenter.com/x",
		},
		{
			name: "missing store treated as guitar center",
			rec:  internal.ListingRecord{Slug: "/Used/sg.gc"},
			want: "https://www.guitarcenter.com/Used/sg.gc",
		},
		{
			name: "no slug falls back to url",
			rec:  internal.ListingRecord{Store: internal.StoreGuitarCenter, URL: "https://example.com/x"},
			want: "https://example.com/x",
		},
		{
			name: "unknown store returns slug as is",
			rec:  internal.ListingRecord{Store: "Reverb", Slug: "some-slug"},
			want: "some-slug",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := UsedListingURL(tc.rec); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}
