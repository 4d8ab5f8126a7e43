package basket

import (
	"math"
	"sort"

	"basket-insights-go/internal/types"
)

// rankRecommendations prices and prioritizes the retained rules, then
// orders them by composite score. Lift is rounded to two decimals and
// confidence to a whole percent before ranking, so the score sees the
// display values; support stays exact.
func rankRecommendations(records []types.Transaction, rules []types.AffinityRule, t tables, cfg Config) []types.Recommendation {
	recs := make([]types.Recommendation, 0, len(rules))
	for _, rule := range rules {
		avg := avgPrice(records, rule.PrimaryItem, t.frequency[rule.PrimaryItem])
		rounded := rule
		rounded.Lift = math.Round(rule.Lift*100) / 100
		rounded.Confidence = math.Round(rule.Confidence)
		recs = append(recs, types.Recommendation{
			AffinityRule:  rounded,
			RevenueImpact: int(math.Round(avg * rule.Lift * float64(rule.CoOccurrence))),
			Priority:      priorityFor(rule.Lift, cfg),
		})
	}
	sort.Slice(recs, func(i, j int) bool {
		si := recs[i].Lift * recs[i].Confidence * recs[i].Support
		sj := recs[j].Lift * recs[j].Confidence * recs[j].Support
		if si != sj {
			return si > sj
		}
		if recs[i].PrimaryItem != recs[j].PrimaryItem {
			return recs[i].PrimaryItem < recs[j].PrimaryItem
		}
		return recs[i].SecondaryItem < recs[j].SecondaryItem
	})
	if len(recs) > cfg.MaxRecommendations {
		recs = recs[:cfg.MaxRecommendations]
	}
	return recs
}

// priorityFor uses the unrounded lift; the cut-offs are strict, so a lift
// of exactly 2.0 stays medium.
func priorityFor(lift float64, cfg Config) types.Priority {
	switch {
	case lift > cfg.HighLiftCutoff:
		return types.PriorityHigh
	case lift > cfg.MediumLiftCutoff:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// avgPrice averages totalPrice over every transaction naming the item as
// its brand or product, but divides by the item's bundle frequency. The two
// populations differ on purpose: the revenue figures are calibrated against
// this mismatch and changing either side changes them.
func avgPrice(records []types.Transaction, item string, bundleFreq int) float64 {
	if bundleFreq == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		if r.Brand == item || r.Product == item {
			sum += r.TotalPrice
		}
	}
	return sum / float64(bundleFreq)
}
