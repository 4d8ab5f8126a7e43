package basket

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"basket-insights-go/internal/types"
)

const (
	insightTopBundle     = "Top Bundle Opportunity"
	insightCrossCategory = "Cross-Category Opportunity"
)

// synthesizeInsights formats the top-ranked recommendation and the top
// cross-category rule into readable takeaways. No new computation happens
// here; it only selects and formats already-derived values.
func synthesizeInsights(recs []types.Recommendation, rules []types.CategoryAffinityRule) []types.Insight {
	insights := make([]types.Insight, 0, 2)
	if len(recs) > 0 {
		top := recs[0]
		insights = append(insights, types.Insight{
			Type:            insightTopBundle,
			Message:         fmt.Sprintf("%s + %s shows %gx lift", top.PrimaryItem, top.SecondaryItem, top.Lift),
			SuggestedAction: fmt.Sprintf("Create prominent bundle display with %.0f%% confidence", top.Confidence),
			ImpactStatement: fmt.Sprintf("₱%s potential revenue", humanize.Comma(int64(top.RevenueImpact))),
		})
	}
	for _, rule := range rules {
		if rule.CategoryA == rule.CategoryB {
			continue
		}
		insights = append(insights, types.Insight{
			Type:            insightCrossCategory,
			Message:         fmt.Sprintf("%s and %s frequently bought together", rule.CategoryA, rule.CategoryB),
			SuggestedAction: "Reorganize store layout for proximity placement",
			ImpactStatement: fmt.Sprintf("%.1f%% of transactions show this pattern", rule.Strength),
		})
		break
	}
	return insights
}
