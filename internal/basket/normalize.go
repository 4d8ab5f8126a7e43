package basket

import (
	"encoding/json"
	"strconv"
	"strings"

	"basket-insights-go/internal/types"
)

// Normalize coerces raw records into engine input. String fields are
// trimmed, prices become non-negative floats (parse failures default to 0)
// and records without a primary item are dropped. It never fails: malformed
// input degrades to defaults.
func Normalize(raw []types.RawTransaction) []types.Transaction {
	out := make([]types.Transaction, 0, len(raw))
	for _, r := range raw {
		t := types.Transaction{
			Brand:      strings.TrimSpace(r.Brand),
			Product:    strings.TrimSpace(r.Product),
			Category:   strings.TrimSpace(r.Category),
			TotalPrice: coercePrice(r.TotalPrice),
			BoughtWith: strings.TrimSpace(r.BoughtWith),
		}
		if t.PrimaryItem() == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

func coercePrice(v any) float64 {
	var f float64
	switch p := v.(type) {
	case nil:
		return 0
	case float64:
		f = p
	case float32:
		f = float64(p)
	case int:
		f = float64(p)
	case int64:
		f = float64(p)
	case json.Number:
		parsed, err := p.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if f < 0 {
		return 0
	}
	return f
}
