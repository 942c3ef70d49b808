package trace

// Summary aggregates statistics from a RunTrace.
type Summary struct {
	Total    int
	ByMarker map[Marker]int // marker -> count of records
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *Summary {
	summary := &Summary{
		ByMarker: make(map[Marker]int),
	}
	if rt == nil {
		return summary
	}

	summary.Total = len(rt.Records)
	for _, r := range rt.Records {
		summary.ByMarker[r.Marker]++
	}

	return summary
}
