package views

import (
	"sort"

	"debris-risk-economics/internal/catalog"
)

// FilterAll selects every conjunction regardless of risk level.
const FilterAll = "all"

// SortKey names a descending ordering over debris objects.
type SortKey string

const (
	SortByScore        SortKey = "score"
	SortByImpact       SortKey = "impact"
	SortByConjunctions SortKey = "conjunctions"
	SortBySatellites   SortKey = "satellites"
)

// SortKeys lists the supported keys, default first.
var SortKeys = []SortKey{SortByScore, SortByImpact, SortByConjunctions, SortBySatellites}

// ParseSortKey maps user input onto a SortKey. Unknown or empty input falls
// back to SortByScore.
func ParseSortKey(raw string) SortKey {
	key := SortKey(raw)
	for _, k := range SortKeys {
		if k == key {
			return k
		}
	}
	return SortByScore
}

// SelectConjunctions returns the events whose risk level equals filter, in
// input order. FilterAll returns every event. A filter that names no known
// level matches nothing.
func SelectConjunctions(events []catalog.ConjunctionEvent, filter string) []catalog.ConjunctionEvent {
	if filter == FilterAll {
		return append([]catalog.ConjunctionEvent{}, events...)
	}

	selected := make([]catalog.ConjunctionEvent, 0, len(events))
	for _, ev := range events {
		if string(ev.RiskLevel) == filter {
			selected = append(selected, ev)
		}
	}
	return selected
}

// SortDebris returns a new slice ordered descending by key. Equal keys keep
// their input order.
func SortDebris(objects []catalog.DebrisObject, key SortKey) []catalog.DebrisObject {
	sorted := append([]catalog.DebrisObject{}, objects...)
	less := descending(key)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// TopN sorts by key and keeps the first n objects.
func TopN(objects []catalog.DebrisObject, n int, key SortKey) []catalog.DebrisObject {
	if n <= 0 {
		return []catalog.DebrisObject{}
	}
	sorted := SortDebris(objects, key)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

func descending(key SortKey) func(a, b catalog.DebrisObject) bool {
	switch ParseSortKey(string(key)) {
	case SortByImpact:
		return func(a, b catalog.DebrisObject) bool {
			return a.EstimatedAnnualImpactMillion > b.EstimatedAnnualImpactMillion
		}
	case SortByConjunctions:
		return func(a, b catalog.DebrisObject) bool {
			return a.AnnualConjunctions > b.AnnualConjunctions
		}
	case SortBySatellites:
		return func(a, b catalog.DebrisObject) bool {
			return a.ThreatenedSatellites > b.ThreatenedSatellites
		}
	default:
		return func(a, b catalog.DebrisObject) bool {
			return a.EconomicRiskScore > b.EconomicRiskScore
		}
	}
}
