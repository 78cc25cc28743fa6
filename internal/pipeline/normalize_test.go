package pipeline

import "testing"

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		name  string
		title string
		brand string
		want  string
	}{
		{
			name:  "brand color and category stripped",
			title: "Fender Player Stratocaster Sunburst Guitar",
			brand: "Fender",
			want:  "player stratocaster",
		},
		{
			// "electric guitar" is a multi-word removal entry that can never
			// match a single token, so "electric" survives.
			name:  "multi word category entry never matches",
			title: "Fender Player Stratocaster Electric Guitar",
			brand: "Fender",
			want:  "player stratocaster electric",
		},
		{
			name:  "special characters stripped",
			title: "Les Paul '59 Standard!!",
			brand: "Gibson",
			want:  "les paul 59 standard",
		},
		{
			name:  "brand match is case insensitive",
			title: "FENDER Telecaster",
			brand: "Fender",
			want:  "telecaster",
		},
		{
			name:  "empty title",
			title: "",
			brand: "Fender",
			want:  "",
		},
		{
			name:  "no brand given",
			title: "Fender Telecaster",
			brand: "",
			want:  "fender telecaster",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTitle(tc.title, tc.brand)
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	titles := []string{
		"Fender Player Stratocaster Sunburst Guitar",
		"Gibson Les Paul Studio Ebony",
		"PRS SE Custom 24",
		"Jackson Pro Series Soloist SL2",
	}
	for _, title := range titles {
		once := NormalizeTitle(title, "Fender")
		twice := NormalizeTitle(once, "Fender")
		if once != twice {
			t.Fatalf("not stable: %q -> %q -> %q", title, once, twice)
		}
	}
}
