package basket

import "basket-insights-go/internal/types"

// Config carries the policy knobs of the analysis: evidence floors against
// noise from rare pairings, priority cut-offs and display caps. The zero
// value keeps nothing; start from DefaultConfig.
type Config struct {
	MinConfidence       float64 // percent, exclusive floor
	MinLift             float64 // exclusive floor
	MinCoOccurrence     int     // inclusive floor
	MinCategoryStrength float64 // percent, exclusive floor
	HighLiftCutoff      float64 // exclusive, lift above is "high" priority
	MediumLiftCutoff    float64 // exclusive, lift above is "medium" priority
	MaxRecommendations  int
	MaxCategoryRules    int
}

func DefaultConfig() Config {
	return Config{
		MinConfidence:       10,
		MinLift:             1.2,
		MinCoOccurrence:     3,
		MinCategoryStrength: 1,
		HighLiftCutoff:      2,
		MediumLiftCutoff:    1.5,
		MaxRecommendations:  8,
		MaxCategoryRules:    6,
	}
}

// deriveRules converts raw counts into support/confidence/lift statistics
// and keeps only pairs passing every evidence floor. Zero frequencies or a
// zero expectation discard the candidate instead of dividing by zero.
func deriveRules(t tables, cfg Config) []types.AffinityRule {
	if t.totalTx == 0 {
		return nil
	}
	var rules []types.AffinityRule
	for primary, companions := range t.coOccurrence {
		for secondary, count := range companions {
			freqA := t.frequency[primary]
			freqB := t.frequency[secondary]
			if freqA == 0 || freqB == 0 {
				continue
			}
			expected := float64(freqA) * float64(freqB) / float64(t.totalTx)
			if expected == 0 {
				continue
			}
			confidence := float64(count) / float64(freqA) * 100
			support := float64(count) / float64(t.totalTx) * 100
			lift := float64(count) / expected
			if confidence <= cfg.MinConfidence || lift <= cfg.MinLift || count < cfg.MinCoOccurrence {
				continue
			}
			rules = append(rules, types.AffinityRule{
				PrimaryItem:   primary,
				SecondaryItem: secondary,
				Support:       support,
				Confidence:    confidence,
				Lift:          lift,
				CoOccurrence:  count,
			})
		}
	}
	return rules
}
