package types

// Priority buckets a recommendation by association strength.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// AffinityRule is a directed item-pair association that passed the evidence
// floors. Support and Confidence are percentages.
type AffinityRule struct {
	PrimaryItem   string  `json:"primary_item"`
	SecondaryItem string  `json:"secondary_item"`
	Support       float64 `json:"support"`
	Confidence    float64 `json:"confidence"`
	Lift          float64 `json:"lift"`
	CoOccurrence  int     `json:"co_occurrence"`
}

// Recommendation is an affinity rule priced and prioritized for display.
type Recommendation struct {
	AffinityRule
	RevenueImpact int      `json:"revenue_impact"`
	Priority      Priority `json:"priority"`
}

// CategoryAffinityRule is a symmetric category-level association.
// CategoryA sorts before CategoryB so both orderings collapse to one rule.
type CategoryAffinityRule struct {
	CategoryA string  `json:"category_a"`
	CategoryB string  `json:"category_b"`
	Strength  float64 `json:"strength"`
}

// Insight is a human-readable takeaway built from the top-ranked results.
type Insight struct {
	Type            string `json:"type"`
	Message         string `json:"message"`
	SuggestedAction string `json:"suggested_action"`
	ImpactStatement string `json:"impact_statement"`
}

// Analysis is the full output of one engine invocation.
type Analysis struct {
	Recommendations   []Recommendation       `json:"recommendations"`
	CategoryRules     []CategoryAffinityRule `json:"category_affinity_rules"`
	Insights          []Insight              `json:"insights"`
	TotalTransactions int                    `json:"total_transactions"`
	TotalBundles      int                    `json:"total_bundles"`
	BundleRate        float64                `json:"bundle_rate"`
}
