package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"gearflip/internal"
)

func ExportEntriesToXLSX(entries []internal.ArbitrageEntry, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"rank", "used_title", "used_price", "used_shipping", "used_total_price",
		"used_condition", "used_store", "used_url",
		"new_title", "new_price", "new_store", "new_url",
		"price_difference", "match_score",
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, entry := range entries {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, i+1)
		set(2, entry.Used.Title)
		set(3, entry.Used.Price)
		set(4, entry.UsedShipping)
		set(5, entry.UsedTotalPrice)
		set(6, entry.Used.Condition)
		set(7, entry.Used.Store)
		set(8, entry.UsedURL)
		set(9, entry.New.Title)
		set(10, entry.New.Price)
		set(11, entry.New.Store)
		set(12, entry.New.URL)
		set(13, entry.PriceDifference)
		set(14, entry.MatchScore)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
