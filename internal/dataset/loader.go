package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"basket-insights-go/internal/types"
)

// Load reads a point-of-sale transaction export, auto-detecting columns by
// header heuristics so differently labelled exports still load.
func Load(path string) ([]types.RawTransaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}
	brandIdx := -1
	productIdx := -1
	categoryIdx := -1
	priceIdx := -1
	boughtIdx := -1
	for i, h := range rows[0] {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		// "bought_with_other_brands" also contains "brand"; match it first
		case strings.Contains(l, "bought") || strings.Contains(l, "bundle") || strings.Contains(l, "companion"):
			if boughtIdx == -1 {
				boughtIdx = i
			}
		case strings.Contains(l, "brand"):
			if brandIdx == -1 {
				brandIdx = i
			}
		case strings.Contains(l, "product") || strings.Contains(l, "item"):
			if productIdx == -1 {
				productIdx = i
			}
		case strings.Contains(l, "category"):
			if categoryIdx == -1 {
				categoryIdx = i
			}
		case strings.Contains(l, "price") || strings.Contains(l, "total") || strings.Contains(l, "amount"):
			if priceIdx == -1 {
				priceIdx = i
			}
		}
	}
	if brandIdx == -1 && productIdx == -1 {
		return nil, fmt.Errorf("no brand or product column detected")
	}

	cell := func(r []string, idx int) string {
		if idx >= 0 && idx < len(r) {
			return r[idx]
		}
		return ""
	}
	var out []types.RawTransaction
	for i, r := range rows {
		if i == 0 {
			continue
		}
		rec := types.RawTransaction{
			Brand:      cell(r, brandIdx),
			Product:    cell(r, productIdx),
			Category:   cell(r, categoryIdx),
			BoughtWith: cell(r, boughtIdx),
		}
		if p := strings.TrimSpace(cell(r, priceIdx)); p != "" {
			rec.TotalPrice = p
		}
		// skip rows carrying no item at all quietly
		if strings.TrimSpace(rec.Brand) == "" && strings.TrimSpace(rec.Product) == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
