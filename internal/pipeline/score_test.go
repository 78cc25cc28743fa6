package pipeline

import (
	"math"
	"testing"
)

func TestPriceDropPenaltyBrackets(t *testing.T) {
	cases := []struct {
		name      string
		usedPrice float64
		newPrice  float64
		want      float64
	}{
		{name: "85 pct", usedPrice: 15, newPrice: 100, want: 85 * 0.6},
		{name: "75 pct uses its own bracket", usedPrice: 25, newPrice: 100, want: 75 * 0.45},
		{name: "65 pct", usedPrice: 35, newPrice: 100, want: 65 * 0.3},
		{name: "55 pct", usedPrice: 45, newPrice: 100, want: 55 * 0.15},
		{name: "45 pct", usedPrice: 55, newPrice: 100, want: 45 * 0.08},
		{name: "35 pct", usedPrice: 65, newPrice: 100, want: 35 * 0.04},
		{name: "25 pct", usedPrice: 75, newPrice: 100, want: 25 * 0.02},
		{name: "15 pct", usedPrice: 85, newPrice: 100, want: 15 * 0.01},
		{name: "10 pct and below is free", usedPrice: 90, newPrice: 100, want: 0},
		{name: "negative pct is free", usedPrice: 120, newPrice: 100, want: 0},
		{name: "zero new price guarded", usedPrice: 500, newPrice: 0, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := priceDropPenalty(tc.usedPrice, tc.newPrice)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestMatchScoreCappedAt100(t *testing.T) {
	// Identical titles, equal prices: fuzzy 100 plus model bonus, capped.
	score := MatchScore("Fender Player Stratocaster", "Fender Player Stratocaster", 600, 600, "Fender")
	if score != 100 {
		t.Fatalf("score=%v", score)
	}
}

func TestMatchScoreShortTitleRule(t *testing.T) {
	// One-token used title: fuzzy is discounted by 10 and the model bonus is
	// weighted by 1.5. "Stratocaster" vs itself: fuzzy 100-10=90, the "s"
	// model term hits both titles for +5*1.5=7.5.
	score := MatchScore("Stratocaster", "Stratocaster", 100, 100, "")
	if math.Abs(score-97.5) > 1e-9 {
		t.Fatalf("score=%v", score)
	}
}

func TestMatchScoreModelTermPenalty(t *testing.T) {
	// A model term present in exactly one title costs 5 points. Both titles
	// share "s"; only the new title carries "player".
	with := MatchScore("Fender Stratocaster Deluxe", "Fender Stratocaster Deluxe", 45, 100, "Fender")
	without := MatchScore("Fender Stratocaster Deluxe", "Fender Player Stratocaster Deluxe", 45, 100, "Fender")
	if without >= with {
		t.Fatalf("one-sided term did not penalize: with=%v without=%v", with, without)
	}
}

func TestMatchScoreNeverAbove100(t *testing.T) {
	titles := []struct{ used, new string }{
		{"Fender Player Stratocaster", "Fender Player Stratocaster HSS"},
		{"Gibson Les Paul Studio", "Gibson Les Paul Studio Ebony"},
		{"PRS SE Custom 24", "PRS SE Custom 24"},
		{"Stratocaster", "Fender Player Stratocaster"},
	}
	for _, tc := range titles {
		if score := MatchScore(tc.used, tc.new, 600, 900, "Fender"); score > 100 {
			t.Fatalf("score %v > 100 for %q vs %q", score, tc.used, tc.new)
		}
	}
}
