package domain

// CorpusStats aggregates the loaded corpus for the analytics views.
type CorpusStats struct {
	// TotalVerses is the number of verses counted.
	TotalVerses int

	// ByMandala counts verses per book.
	ByMandala map[int]int

	// ByDeity counts verses per primary deity.
	ByDeity map[string]int

	// ByRishi counts verses per rishi.
	ByRishi map[string]int

	// ByMeter counts verses per meter tag.
	ByMeter map[string]int
}

// ComputeStats tallies the corpus. Verses missing a metadata field are
// counted in the totals but skipped for that field's breakdown.
func ComputeStats(verses []Verse) CorpusStats {
	stats := CorpusStats{
		TotalVerses: len(verses),
		ByMandala:   make(map[int]int),
		ByDeity:     make(map[string]int),
		ByRishi:     make(map[string]int),
		ByMeter:     make(map[string]int),
	}
	for i := range verses {
		v := &verses[i]
		stats.ByMandala[v.Mandala]++
		if d := v.Metadata.Deity.Primary; d != "" {
			stats.ByDeity[d]++
		}
		if r := v.Metadata.Rishi.Name; r != "" {
			stats.ByRishi[r]++
		}
		if m := v.Metadata.Meter; m != "" {
			stats.ByMeter[m]++
		}
	}
	return stats
}
