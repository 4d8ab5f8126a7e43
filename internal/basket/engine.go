package basket

import (
	"github.com/sirupsen/logrus"

	"basket-insights-go/internal/logger"
	"basket-insights-go/internal/types"
)

// Engine runs the full market-basket analysis. It holds configuration and a
// category classifier only; every call is a pure function of its input and
// safe to run concurrently.
type Engine struct {
	cfg      Config
	classify Classifier
	log      *logrus.Entry
}

func New(cfg Config, classify Classifier) *Engine {
	return &Engine{
		cfg:      cfg,
		classify: classify,
		log:      logger.New().WithComponent("basket.engine"),
	}
}

// Analyze computes bundle recommendations, category affinity rules and
// insights for one normalized transaction set. Empty or fully-malformed
// input yields empty collections at every stage, never an error.
func (e *Engine) Analyze(records []types.Transaction) types.Analysis {
	t := buildTables(records)
	rules := deriveRules(t, e.cfg)
	recs := rankRecommendations(records, rules, t, e.cfg)
	catRules := aggregateCategories(records, e.classify, e.cfg)

	analysis := types.Analysis{
		Recommendations:   recs,
		CategoryRules:     catRules,
		Insights:          synthesizeInsights(recs, catRules),
		TotalTransactions: t.totalTx,
		TotalBundles:      t.totalBundles,
	}
	if t.totalTx > 0 {
		analysis.BundleRate = float64(t.totalBundles) / float64(t.totalTx) * 100
	}
	e.log.WithFields(logrus.Fields{
		"transactions":    t.totalTx,
		"bundles":         t.totalBundles,
		"recommendations": len(recs),
		"category_rules":  len(catRules),
	}).Debug("analysis complete")
	return analysis
}
