package basket

import (
	"sort"

	"basket-insights-go/internal/types"
)

// Classifier assigns a coarse product category to an item name. Implementations
// return ok=false when the item is unrecognized.
type Classifier interface {
	Classify(itemName string) (category string, ok bool)
}

// aggregateCategories maps item-level co-purchases onto category pairs.
// Unlike item pairs the key is unordered: both orderings of a pair collapse
// into one rule, keyed with the lexicographically smaller category first.
func aggregateCategories(records []types.Transaction, classify Classifier, cfg Config) []types.CategoryAffinityRule {
	rules := make([]types.CategoryAffinityRule, 0)
	if len(records) == 0 || classify == nil {
		return rules
	}
	counts := map[[2]string]int{}
	for _, r := range records {
		if r.Category == "" || !r.IsBundle() {
			continue
		}
		secondary, ok := classify.Classify(r.BoughtWith)
		if !ok || secondary == r.Category {
			continue
		}
		a, b := r.Category, secondary
		if b < a {
			a, b = b, a
		}
		counts[[2]string{a, b}]++
	}
	total := float64(len(records))
	for pair, n := range counts {
		strength := float64(n) / total * 100
		if strength <= cfg.MinCategoryStrength {
			continue
		}
		rules = append(rules, types.CategoryAffinityRule{
			CategoryA: pair[0],
			CategoryB: pair[1],
			Strength:  strength,
		})
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Strength != rules[j].Strength {
			return rules[i].Strength > rules[j].Strength
		}
		if rules[i].CategoryA != rules[j].CategoryA {
			return rules[i].CategoryA < rules[j].CategoryA
		}
		return rules[i].CategoryB < rules[j].CategoryB
	})
	if len(rules) > cfg.MaxCategoryRules {
		rules = rules[:cfg.MaxCategoryRules]
	}
	return rules
}
