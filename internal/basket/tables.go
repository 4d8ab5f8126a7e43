package basket

import "basket-insights-go/internal/types"

// tables holds the raw counts one pass over the transactions produces.
// frequency counts item appearances in either role across bundle
// transactions only; items never seen in a bundle are absent, not zero.
// coOccurrence is directed: primary item -> recorded companion.
type tables struct {
	frequency    map[string]int
	coOccurrence map[string]map[string]int
	totalTx      int
	totalBundles int
}

func buildTables(records []types.Transaction) tables {
	t := tables{
		frequency:    map[string]int{},
		coOccurrence: map[string]map[string]int{},
		totalTx:      len(records),
	}
	for _, r := range records {
		if !r.IsBundle() {
			continue
		}
		primary := r.PrimaryItem()
		secondary := r.BoughtWith
		t.frequency[primary]++
		t.frequency[secondary]++
		companions := t.coOccurrence[primary]
		if companions == nil {
			companions = map[string]int{}
			t.coOccurrence[primary] = companions
		}
		companions[secondary]++
		t.totalBundles++
	}
	return t
}
