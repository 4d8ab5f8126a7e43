package basket

import (
	"testing"

	"basket-insights-go/internal/types"
)

func TestDeriveRules_ChipsSodaScenario(t *testing.T) {
	tb := buildTables(chipsSodaScenario())
	rules := deriveRules(tb, DefaultConfig())
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	r := rules[0]
	if r.PrimaryItem != "Chips" || r.SecondaryItem != "Soda" {
		t.Fatalf("unexpected pair: %+v", r)
	}
	if r.Confidence != 100 {
		t.Fatalf("got confidence %v, want 100", r.Confidence)
	}
	if r.Support != 50 {
		t.Fatalf("got support %v, want 50", r.Support)
	}
	// expected co-occurrence 5*5/10 = 2.5, lift 5/2.5
	if r.Lift != 2.0 {
		t.Fatalf("got lift %v, want 2.0", r.Lift)
	}
	if r.CoOccurrence != 5 {
		t.Fatalf("got co-occurrence %d, want 5", r.CoOccurrence)
	}
}

func TestDeriveRules_CoOccurrenceFloorIsInclusiveAtThree(t *testing.T) {
	build := func(bundles int) tables {
		var records []types.Transaction
		for i := 0; i < bundles; i++ {
			records = append(records, types.Transaction{Brand: "A", BoughtWith: "B"})
		}
		for len(records) < 10 {
			records = append(records, types.Transaction{Brand: "X"})
		}
		return buildTables(records)
	}

	if rules := deriveRules(build(2), DefaultConfig()); len(rules) != 0 {
		t.Fatalf("pair seen twice must be discarded, got %+v", rules)
	}
	rules := deriveRules(build(3), DefaultConfig())
	if len(rules) != 1 {
		t.Fatalf("pair seen three times must be kept, got %d rules", len(rules))
	}
}

func TestDeriveRules_ConfidenceAndLiftFloorsAreExclusive(t *testing.T) {
	// A->B has confidence exactly 10 (3 of 30), A->C has lift exactly 1.
	var records []types.Transaction
	for i := 0; i < 3; i++ {
		records = append(records, types.Transaction{Brand: "A", BoughtWith: "B"})
	}
	for i := 0; i < 27; i++ {
		records = append(records, types.Transaction{Brand: "A", BoughtWith: "C"})
	}
	tb := buildTables(records)
	if rules := deriveRules(tb, DefaultConfig()); len(rules) != 0 {
		t.Fatalf("boundary values must not pass the floors, got %+v", rules)
	}
}

func TestDeriveRules_EmptyTables(t *testing.T) {
	if rules := deriveRules(buildTables(nil), DefaultConfig()); len(rules) != 0 {
		t.Fatalf("got %d rules for empty input, want 0", len(rules))
	}
}
