package domain

// FilterSpec is a sparse record of filter predicates. Zero-value fields
// impose no constraint; all present predicates are combined with AND.
type FilterSpec struct {
	// Mandala restricts to one book (0 = any).
	Mandala int

	// Sukta restricts to one hymn number (0 = any).
	Sukta int

	// Deity matches the primary deity name exactly.
	Deity string

	// Rishi matches the rishi name exactly.
	Rishi string

	// Meter matches the meter tag exactly.
	Meter string

	// Theme requires membership in the verse's theme set.
	Theme string

	// Query is a free-text search query. It is evaluated by the search
	// engine, not by Apply; when the query matched at least one verse the
	// categorical predicates are applied on top of the search results.
	Query string
}

// IsZero reports whether no predicate is set.
func (f FilterSpec) IsZero() bool {
	return f == FilterSpec{}
}

// Matches evaluates the categorical predicates against one verse.
// The Query field is ignored here; it belongs to the search engine.
func (f FilterSpec) Matches(v *Verse) bool {
	if f.Mandala != 0 && v.Mandala != f.Mandala {
		return false
	}
	if f.Sukta != 0 && v.Sukta != f.Sukta {
		return false
	}
	if f.Deity != "" && v.Metadata.Deity.Primary != f.Deity {
		return false
	}
	if f.Rishi != "" && v.Metadata.Rishi.Name != f.Rishi {
		return false
	}
	if f.Meter != "" && v.Metadata.Meter != f.Meter {
		return false
	}
	if f.Theme != "" && !v.HasTheme(f.Theme) {
		return false
	}
	return true
}

// Apply returns the verses satisfying every categorical predicate,
// preserving input order. The input is never mutated; with a zero spec
// the result is content-equal to the input.
func (f FilterSpec) Apply(verses []Verse) []Verse {
	out := make([]Verse, 0, len(verses))
	for i := range verses {
		if f.Matches(&verses[i]) {
			out = append(out, verses[i])
		}
	}
	return out
}
