package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gearflip/internal"
	"gearflip/internal/config"
	"gearflip/internal/pipeline"
	"gearflip/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "ingest:used":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		dir := fs.String("dir", cfg.DataDir, "directory with used source files")
		_ = fs.Parse(os.Args[2:])
		listings, err := pipeline.LoadUsedDir(*dir)
		must(err)
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		must(db.ReplaceListings(internal.SideUsed, listings))
		_ = db.SetMetadata("ingest.last.used", time.Now().UTC().Format(time.RFC3339))
		fmt.Printf("ingested %d used listings from %s\n", len(listings), *dir)
	case "ingest:new":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		dir := fs.String("dir", cfg.DataDir, "directory with new source files")
		_ = fs.Parse(os.Args[2:])
		listings, err := pipeline.LoadNewDir(*dir)
		must(err)
		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		must(db.ReplaceListings(internal.SideNew, listings))
		_ = db.SetMetadata("ingest.last.new", time.Now().UTC().Format(time.RFC3339))
		fmt.Printf("ingested %d new listings from %s\n", len(listings), *dir)
	case "report":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "optional output xlsx path")
		limit := fs.Int("limit", cfg.ReportLimit, "max report entries")
		threshold := fs.Float64("threshold", cfg.SimilarityThreshold, "similarity threshold")
		minScore := fs.Float64("min-score", cfg.MinMatchScore, "minimum match score")
		usedMin := fs.Float64("used-min", cfg.UsedPriceMin, "used price band lower bound")
		usedMax := fs.Float64("used-max", cfg.UsedPriceMax, "used price band upper bound")
		newMin := fs.Float64("new-min", cfg.NewPriceMin, "new price band lower bound")
		newMax := fs.Float64("new-max", cfg.NewPriceMax, "new price band upper bound")
		workers := fs.Int("workers", cfg.ReportWorkers, "matching workers")
		_ = fs.Parse(os.Args[2:])

		cfg.ReportLimit = *limit
		cfg.SimilarityThreshold = *threshold
		cfg.MinMatchScore = *minScore
		cfg.UsedPriceMin, cfg.UsedPriceMax = *usedMin, *usedMax
		cfg.NewPriceMin, cfg.NewPriceMax = *newMin, *newMax
		cfg.ReportWorkers = *workers

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		start := time.Now()
		used, err := db.ListListings(internal.SideUsed)
		must(err)
		fresh, err := db.ListListings(internal.SideNew)
		must(err)

		matcher := pipeline.NewMatcher(cfg, fresh)
		entries, err := pipeline.BuildReport(context.Background(), used, matcher, pipeline.OptionsFromConfig(cfg))
		must(err)

		printReport(entries)
		if strings.TrimSpace(*out) != "" {
			must(pipeline.ExportEntriesToXLSX(entries, *out))
			fmt.Printf("exported %d entries to %s\n", len(entries), *out)
		}

		trace := traceID()
		must(db.SaveReportEntries(trace, entries))
		_ = db.InsertRun(trace,
			map[string]float64{"totalMs": float64(time.Since(start).Milliseconds())},
			map[string]int{"used": len(used), "new": len(fresh), "reported": len(entries)})
	case "discounts":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		top := fs.Int("top", 10, "number of entries")
		_ = fs.Parse(os.Args[2:])

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()
		fresh, err := db.ListListings(internal.SideNew)
		must(err)
		printDiscounts(pipeline.TopDiscounts(fresh, *top), *top)
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		usedPath := fs.String("used", "", "combined used listings json")
		newPath := fs.String("new", "", "combined new listings json")
		out := fs.String("out", "", "optional output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if *usedPath == "" || *newPath == "" {
			must(fmt.Errorf("--used and --new are required"))
		}

		used, err := pipeline.LoadCombinedFile(*usedPath)
		must(err)
		fresh, err := pipeline.LoadCombinedFile(*newPath)
		must(err)

		matcher := pipeline.NewMatcher(cfg, fresh)
		entries, err := pipeline.BuildReport(context.Background(), used, matcher, pipeline.OptionsFromConfig(cfg))
		must(err)

		printReport(entries)
		if strings.TrimSpace(*out) != "" {
			must(pipeline.ExportEntriesToXLSX(entries, *out))
			fmt.Printf("exported %d entries to %s\n", len(entries), *out)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func printReport(entries []internal.ArbitrageEntry) {
	for i, e := range entries {
		fmt.Printf("%d. Used: %s ($%.2f + $%.2f shipping) [%s, %s]\n", i+1, e.Used.Title, e.Used.Price, e.UsedShipping, e.Used.Condition, e.Used.Store)
		fmt.Printf("    New:  %s ($%.2f) [%s]\n", e.New.Title, e.New.Price, e.New.Store)
		fmt.Printf("    Price difference (new - used): $%.2f (Match score: %.1f)\n", e.PriceDifference, e.MatchScore)
		fmt.Printf("    New URL: %s\n", e.New.URL)
		fmt.Printf("    Used URL: %s\n", e.UsedURL)
		fmt.Println()
	}
}

func printDiscounts(entries []internal.DiscountEntry, top int) {
	fmt.Printf("Top %d new listings with the biggest real discounts:\n\n", top)
	for i, e := range entries {
		fmt.Printf("%d. %s - %s\n", i+1, e.Listing.Title, e.Listing.Brand)
		fmt.Printf("   Original Price: $%.2f\n", e.Listing.OriginalPrice)
		fmt.Printf("   Current Price:  $%.2f\n", e.Listing.Price)
		fmt.Printf("   Discount:       $%.2f\n", e.RealDiscount)
		fmt.Printf("   Condition:      %s\n", e.Listing.Condition)
		fmt.Printf("   URL:            %s\n", e.Listing.URL)
		fmt.Println()
	}
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

func usage() {
	fmt.Println("usage: gearflip <command>")
	fmt.Println("commands:")
	fmt.Println("  ingest:used --dir=./data")
	fmt.Println("  ingest:new --dir=./data")
	fmt.Println("  report [--out=./out/report.xlsx] [--limit=100] [--threshold=80] [--min-score=70]")
	fmt.Println("         [--used-min=500] [--used-max=900] [--new-min=800] [--new-max=1500] [--workers=1]")
	fmt.Println("  discounts [--top=10]")
	fmt.Println("  run --used=used_combined.json --new=new_combined.json [--out=...xlsx]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
