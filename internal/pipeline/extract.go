package pipeline

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gearflip/internal"
)

// Flat shipping fee stamped on legacy used listings that carry no slug.
const flatShippingFallback = 30

var reShippingPrice = regexp.MustCompile(`\$(\d+(?:\.\d{1,2})?)`)

type resultPage struct {
	Hits []map[string]any `json:"hits"`
}

// ParseUsedListings parses the legacy used-source payload: an object with a
// results array of hit pages. Shipping cost is read out of the free-text
// shipping message when the listing is not marked free shipping. Listings
// with a slug are attributed to Sweetwater, the rest to Guitar Center with
// the flat shipping fee.
func ParseUsedListings(blob []byte) ([]internal.ListingRecord, error) {
	var doc struct {
		Results []resultPage `json:"results"`
	}
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, fmt.Errorf("decode used source payload: %w", err)
	}

	var out []internal.ListingRecord
	for _, page := range doc.Results {
		for _, hit := range page.Hits {
			shipping, _ := hit["shipping"].(map[string]any)
			slug := asString(hit["slug"])

			freeShipping := 1.0
			if v, ok := shipping["free_shipping"]; ok {
				freeShipping = asFloat(v)
			}
			shippingPrice := 0.0
			if message := asString(shipping["shipping_message"]); freeShipping == 0 && message != "" {
				if m := reShippingPrice.FindStringSubmatch(message); m != nil {
					if v, err := strconv.ParseFloat(m[1], 64); err == nil {
						shippingPrice = v
					}
				}
			}

			store := internal.StoreGuitarCenter
			url := ""
			if slug != "" {
				store = internal.StoreSweetwater
				url = "https://www.guitarcenter.com/" + slug
			} else {
				shippingPrice = flatShippingFallback
			}

			out = append(out, internal.ListingRecord{
				Title:                asString(hit["title"]),
				Brand:                strings.TrimSpace(asString(hit["brand"])),
				Price:                asFloat(hit["price"]),
				OriginalPrice:        asFloat(hit["original_price"]),
				PriceDrop:            asFloat(hit["price_drop"]),
				Condition:            asString(hit["condition"]),
				Location:             asString(hit["location"]),
				Slug:                 slug,
				URL:                  url,
				Store:                store,
				ShippingPrice:        shippingPrice,
				ShippingAvailable:    asBool(shipping["shipping_available"]),
				LocalPickupAvailable: asBool(shipping["local_pickup_available"]),
			})
		}
	}
	return out, nil
}

// ParseNewListings parses the new-source payload, which is either a bare
// array of hit pages or an object with a results array.
func ParseNewListings(blob []byte) ([]internal.ListingRecord, error) {
	pages, err := decodeResultPages(blob)
	if err != nil {
		return nil, err
	}

	var out []internal.ListingRecord
	for _, page := range pages {
		for _, hit := range page.Hits {
			originalPrice := asFloat(hit["listPrice"])
			price := asFloat(hit["price"])
			slug := asString(hit["seoUrl"])

			url := ""
			if slug != "" {
				url = "https://www.guitarcenter.com" + slug
			}

			condition := ""
			if c, ok := hit["condition"].(map[string]any); ok {
				condition = asString(c["lvl0"])
			}

			retailOnly := asBool(hit["retailOnly"])

			out = append(out, internal.ListingRecord{
				Title:                asString(hit["displayName"]),
				Brand:                strings.TrimSpace(asString(hit["brand"])),
				Price:                price,
				OriginalPrice:        originalPrice,
				PriceDrop:            priceDrop(originalPrice, price),
				Condition:            condition,
				Slug:                 slug,
				URL:                  url,
				Store:                internal.StoreGuitarCenter,
				ShippingAvailable:    !retailOnly,
				LocalPickupAvailable: retailOnly,
			})
		}
	}
	return out, nil
}

func decodeResultPages(blob []byte) ([]resultPage, error) {
	var list []resultPage
	if err := json.Unmarshal(blob, &list); err == nil {
		return list, nil
	}
	var doc struct {
		Results []resultPage `json:"results"`
	}
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, fmt.Errorf("decode new source payload: %w", err)
	}
	return doc.Results, nil
}

// LoadUsedDir parses and combines every used source file in dir. Files named
// used_guitars*.json carry the legacy format; used_guitars_other*.json carry
// the new-source format. Previously combined outputs are skipped.
func LoadUsedDir(dir string) ([]internal.ListingRecord, error) {
	names, err := sourceFiles(dir, "used_guitars")
	if err != nil {
		return nil, err
	}

	var out []internal.ListingRecord
	for _, name := range names {
		blob, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		var recs []internal.ListingRecord
		if strings.Contains(name, "other") {
			recs, err = ParseNewListings(blob)
		} else {
			recs, err = ParseUsedListings(blob)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, recs...)
	}
	return out, nil
}

// LoadNewDir parses and combines every new source file in dir.
func LoadNewDir(dir string) ([]internal.ListingRecord, error) {
	names, err := sourceFiles(dir, "new_guitars")
	if err != nil {
		return nil, err
	}

	var out []internal.ListingRecord
	for _, name := range names {
		blob, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		recs, err := ParseNewListings(blob)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, recs...)
	}
	return out, nil
}

func sourceFiles(dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("source dir %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		if strings.Contains(name, "combined") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

type recordWire struct {
	Title                string   `json:"title"`
	Brand                *string  `json:"brand"`
	Price                *float64 `json:"price"`
	OriginalPrice        *float64 `json:"original_price"`
	PriceDrop            *float64 `json:"price_drop"`
	Condition            *string  `json:"condition"`
	Location             *string  `json:"location"`
	Slug                 *string  `json:"slug"`
	URL                  *string  `json:"url"`
	Store                string   `json:"store"`
	ShippingPrice        *float64 `json:"shipping_price"`
	ShippingAvailable    bool     `json:"shipping_available"`
	LocalPickupAvailable bool     `json:"local_pickup_available"`
}

// LoadCombinedFile reads a pre-combined listing file: a flat JSON array of
// records in the common shape, with nulls defaulting to empty/zero.
func LoadCombinedFile(path string) ([]internal.ListingRecord, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("combined file %s: %w", path, err)
	}
	var wires []recordWire
	if err := json.Unmarshal(blob, &wires); err != nil {
		return nil, fmt.Errorf("decode combined file %s: %w", path, err)
	}

	out := make([]internal.ListingRecord, 0, len(wires))
	for _, w := range wires {
		out = append(out, internal.ListingRecord{
			Title:                w.Title,
			Brand:                strings.TrimSpace(derefString(w.Brand)),
			Price:                derefFloat(w.Price),
			OriginalPrice:        derefFloat(w.OriginalPrice),
			PriceDrop:            derefFloat(w.PriceDrop),
			Condition:            derefString(w.Condition),
			Location:             derefString(w.Location),
			Slug:                 derefString(w.Slug),
			URL:                  derefString(w.URL),
			Store:                w.Store,
			ShippingPrice:        derefFloat(w.ShippingPrice),
			ShippingAvailable:    w.ShippingAvailable,
			LocalPickupAvailable: w.LocalPickupAvailable,
		})
	}
	return out, nil
}

func priceDrop(originalPrice, price float64) float64 {
	if originalPrice > 0 && price > 0 && originalPrice > price {
		return math.Round((originalPrice-price)*100) / 100
	}
	return 0
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	default:
		return 0
	}
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		return b != ""
	default:
		return false
	}
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
