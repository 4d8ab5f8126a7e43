package basket

import (
	"reflect"
	"testing"

	"basket-insights-go/internal/taxonomy"
	"basket-insights-go/internal/types"
)

// 10 transactions, 5 of them Chips+Soda bundles at ₱30 each.
func chipsSodaScenario() []types.Transaction {
	records := make([]types.Transaction, 0, 10)
	for i := 0; i < 5; i++ {
		records = append(records, types.Transaction{Brand: "Chips", Category: "Snacks", TotalPrice: 30, BoughtWith: "Soda"})
	}
	for i := 0; i < 5; i++ {
		records = append(records, types.Transaction{Brand: "Water", TotalPrice: 10})
	}
	return records
}

func TestAnalyze_ChipsSodaScenario(t *testing.T) {
	engine := New(DefaultConfig(), taxonomy.Keyword())
	got := engine.Analyze(chipsSodaScenario())

	if got.TotalTransactions != 10 || got.TotalBundles != 5 {
		t.Fatalf("got totals %d/%d, want 10/5", got.TotalTransactions, got.TotalBundles)
	}
	if got.BundleRate != 50 {
		t.Fatalf("got bundle rate %v, want 50", got.BundleRate)
	}
	if len(got.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(got.Recommendations))
	}
	rec := got.Recommendations[0]
	if rec.Confidence != 100 || rec.Support != 50 || rec.Lift != 2.0 || rec.CoOccurrence != 5 {
		t.Fatalf("unexpected metrics: %+v", rec)
	}
	// lift of exactly 2.0 is medium, not high
	if rec.Priority != types.PriorityMedium {
		t.Fatalf("got priority %s, want medium", rec.Priority)
	}
	// avg price 150/5 = 30; 30 * 2.0 * 5 = 300
	if rec.RevenueImpact != 300 {
		t.Fatalf("got revenue impact %d, want 300", rec.RevenueImpact)
	}
	// "Soda" matches no taxonomy keyword, so no category rules
	if len(got.CategoryRules) != 0 {
		t.Fatalf("got %d category rules, want 0", len(got.CategoryRules))
	}
	if len(got.Insights) != 1 {
		t.Fatalf("got %d insights, want 1", len(got.Insights))
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	var records []types.Transaction
	for i := 0; i < 4; i++ {
		records = append(records, types.Transaction{Brand: "Pringles", Category: "Snacks", TotalPrice: 50, BoughtWith: "Coca-Cola"})
	}
	for i := 0; i < 3; i++ {
		records = append(records, types.Transaction{Brand: "Marlboro", Category: "Tobacco", TotalPrice: 120, BoughtWith: "Sprite"})
	}
	for i := 0; i < 3; i++ {
		records = append(records, types.Transaction{Brand: "Water", TotalPrice: 15})
	}
	engine := New(DefaultConfig(), taxonomy.Keyword())

	first := engine.Analyze(records)
	if len(first.Recommendations) != 2 || len(first.CategoryRules) != 2 || len(first.Insights) != 2 {
		t.Fatalf("unexpected result shape: %d/%d/%d",
			len(first.Recommendations), len(first.CategoryRules), len(first.Insights))
	}
	for i := 0; i < 10; i++ {
		if again := engine.Analyze(records); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\nfirst: %+v\nagain: %+v", i, first, again)
		}
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	engine := New(DefaultConfig(), taxonomy.Keyword())
	got := engine.Analyze(nil)
	if got.TotalTransactions != 0 || got.TotalBundles != 0 || got.BundleRate != 0 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if len(got.Recommendations) != 0 || len(got.CategoryRules) != 0 || len(got.Insights) != 0 {
		t.Fatalf("expected empty collections: %+v", got)
	}
	if got.Recommendations == nil || got.CategoryRules == nil || got.Insights == nil {
		t.Fatal("collections must be empty, not nil")
	}
}

func TestAnalyze_NoBundleTransactions(t *testing.T) {
	records := []types.Transaction{
		{Brand: "Chips", TotalPrice: 25},
		{Brand: "Soda", TotalPrice: 15},
		{Brand: "Water", TotalPrice: 10},
	}
	engine := New(DefaultConfig(), taxonomy.Keyword())
	got := engine.Analyze(records)
	if got.BundleRate != 0 || got.TotalBundles != 0 {
		t.Fatalf("got bundle rate %v / bundles %d, want 0/0", got.BundleRate, got.TotalBundles)
	}
	if len(got.Recommendations) != 0 || len(got.CategoryRules) != 0 || len(got.Insights) != 0 {
		t.Fatalf("expected empty collections: %+v", got)
	}
}

func TestAnalyze_DirectionalityPreserved(t *testing.T) {
	var records []types.Transaction
	for i := 0; i < 3; i++ {
		records = append(records, types.Transaction{Brand: "A", BoughtWith: "B"})
	}
	for i := 0; i < 7; i++ {
		records = append(records, types.Transaction{Brand: "X"})
	}
	engine := New(DefaultConfig(), taxonomy.Keyword())
	got := engine.Analyze(records)
	if len(got.Recommendations) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(got.Recommendations))
	}
	rec := got.Recommendations[0]
	if rec.PrimaryItem != "A" || rec.SecondaryItem != "B" {
		t.Fatalf("reverse rule must not be synthesized: %+v", rec)
	}
}

func TestAnalyze_SafeForConcurrentUse(t *testing.T) {
	engine := New(DefaultConfig(), taxonomy.Keyword())
	records := chipsSodaScenario()
	want := engine.Analyze(records)

	done := make(chan types.Analysis, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- engine.Analyze(records)
		}()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; !reflect.DeepEqual(want, got) {
			t.Fatalf("concurrent run differs: %+v", got)
		}
	}
}
