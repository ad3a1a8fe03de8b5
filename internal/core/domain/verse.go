package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MandalaCount is the number of books in the corpus. Partition files
// exist for mandalas 1..MandalaCount.
const MandalaCount = 10

// Translation is one translator's rendition of a verse's text.
type Translation struct {
	// Language is the translation language (e.g. "en").
	Language string `json:"language"`

	// Translator is the translator's name (e.g. "Griffith").
	Translator string `json:"translator"`

	// Text is the translated verse text.
	Text string `json:"text"`

	// Year is the publication year, when known.
	Year int `json:"year,omitempty"`
}

// VerseText holds the original-script and transliterated text of a verse
// together with its translations.
type VerseText struct {
	// Sanskrit is the Devanagari original.
	Sanskrit string `json:"sanskrit"`

	// IAST is the romanised transliteration.
	IAST string `json:"iast"`

	// Translations is ordered by source data. It is non-empty in
	// well-formed data but must be tolerated empty.
	Translations []Translation `json:"translations"`
}

// Deity identifies the deity (or deities) a verse is addressed to.
type Deity struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
}

// Rishi identifies the seer credited with a verse.
type Rishi struct {
	Name   string `json:"name"`
	Gotra  string `json:"gotra,omitempty"`
	Family string `json:"family,omitempty"`
}

// VerseMetadata carries the categorical attributes used for filtering.
type VerseMetadata struct {
	// Deity is required for meaningful filtering. A missing deity means
	// the verse has not been enriched yet, not that the data is broken.
	Deity Deity `json:"deity"`

	// Rishi is the attributed seer.
	Rishi Rishi `json:"rishi"`

	// Meter is the poetic form tag (e.g. "Gayatri").
	Meter string `json:"meter,omitempty"`

	// Category is an optional free-form tag.
	Category string `json:"category,omitempty"`
}

// VerseContext holds optional interpretive notes.
type VerseContext struct {
	Significance    string `json:"significance,omitempty"`
	RitualUse       string `json:"ritual_use,omitempty"`
	SymbolicMeaning string `json:"symbolic_meaning,omitempty"`
	Note            string `json:"note,omitempty"`
}

// VerseConnections links a verse to related material elsewhere in the corpus.
type VerseConnections struct {
	RelatedVerses []string `json:"related_verses,omitempty"`
	ParallelHymns []string `json:"parallel_hymns,omitempty"`
	ReferencedIn  []string `json:"referenced_in,omitempty"`
}

// Coordinates is a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// VerseGeography ties a verse to a geographic region.
type VerseGeography struct {
	Region         string       `json:"region,omitempty"`
	ModernLocation string       `json:"modern_location,omitempty"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
}

// VerseChronology places a verse in a compositional layer.
type VerseChronology struct {
	Layer        string `json:"layer,omitempty"`
	ApproxPeriod string `json:"approx_period,omitempty"`
	RelativeDate int    `json:"relative_date,omitempty"`
}

// VerseAudio references a recorded recitation.
type VerseAudio struct {
	PronunciationURL string `json:"pronunciation_url,omitempty"`
	RecitationStyle  string `json:"recitation_style,omitempty"`
}

// VerseAnalysis holds textual analysis annotations.
type VerseAnalysis struct {
	WordCount        int      `json:"word_count,omitempty"`
	Complexity       string   `json:"complexity,omitempty"`
	PoeticDevices    []string `json:"poetic_devices,omitempty"`
	GrammaticalNotes string   `json:"grammatical_notes,omitempty"`
}

// Verse is the atomic unit of the corpus: one verse (rik) of the Rigveda,
// addressed by its (mandala, sukta, verse) location and a stable string ID.
type Verse struct {
	// ID is globally unique and stable across loads.
	ID string `json:"id"`

	// Mandala is the book number (1..10).
	Mandala int `json:"mandala"`

	// Sukta is the hymn number within the mandala.
	Sukta int `json:"sukta"`

	// Verse is the verse number within the sukta.
	Verse int `json:"verse"`

	// Text holds the original, transliteration, and translations.
	Text VerseText `json:"text"`

	// Metadata holds the categorical attributes (deity, rishi, meter).
	Metadata VerseMetadata `json:"metadata"`

	// Themes is a set of free-text theme tags, zero or more.
	Themes []string `json:"themes,omitempty"`

	// Optional enrichment. All of these may be absent after a partial
	// or lazy load; consumers treat absence as "not yet enriched".
	Context     *VerseContext     `json:"context,omitempty"`
	Connections *VerseConnections `json:"connections,omitempty"`
	Geography   *VerseGeography   `json:"geography,omitempty"`
	Chronology  *VerseChronology  `json:"chronology,omitempty"`
	Audio       *VerseAudio       `json:"audio,omitempty"`
	Analysis    *VerseAnalysis    `json:"analysis,omitempty"`
}

// Ref is a verse location: (mandala, sukta, verse).
type Ref struct {
	Mandala int
	Sukta   int
	Verse   int
}

// Ref returns the verse's location.
func (v *Verse) Ref() Ref {
	return Ref{Mandala: v.Mandala, Sukta: v.Sukta, Verse: v.Verse}
}

// String formats the reference as "mandala.sukta.verse".
func (r Ref) String() string {
	return fmt.Sprintf("%d.%d.%d", r.Mandala, r.Sukta, r.Verse)
}

// Compare orders references lexicographically by (mandala, sukta, verse).
// It returns -1, 0, or 1.
func (r Ref) Compare(other Ref) int {
	if r.Mandala != other.Mandala {
		return sign(r.Mandala - other.Mandala)
	}
	if r.Sukta != other.Sukta {
		return sign(r.Sukta - other.Sukta)
	}
	return sign(r.Verse - other.Verse)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// ParseRef parses "mandala.sukta.verse" (e.g. "1.1.1").
func ParseRef(s string) (Ref, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return Ref{}, fmt.Errorf("%w: ref %q must be mandala.sukta.verse", ErrInvalidInput, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return Ref{}, fmt.Errorf("%w: ref %q has non-positive component", ErrInvalidInput, s)
		}
		nums[i] = n
	}
	return Ref{Mandala: nums[0], Sukta: nums[1], Verse: nums[2]}, nil
}

// HasTheme reports whether the verse's theme set contains theme.
func (v *Verse) HasTheme(theme string) bool {
	for _, t := range v.Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// Enriched reports whether the verse carries its full metadata. A verse
// fresh out of a partial load may lack deity and translations; callers
// render what is available and fill in later.
func (v *Verse) Enriched() bool {
	return v.Metadata.Deity.Primary != "" && len(v.Text.Translations) > 0
}

// TranslationBy returns the translation by the named translator, falling
// back to the first available translation when the translator is absent.
func (v *Verse) TranslationBy(translator string) (Translation, bool) {
	for _, t := range v.Text.Translations {
		if t.Translator == translator {
			return t, true
		}
	}
	if len(v.Text.Translations) > 0 {
		return v.Text.Translations[0], true
	}
	return Translation{}, false
}

// SortVerses orders verses by their natural (mandala, sukta, verse) order.
// The sort is stable so equal references keep their input order.
func SortVerses(verses []Verse) {
	sort.SliceStable(verses, func(i, j int) bool {
		return verses[i].Ref().Compare(verses[j].Ref()) < 0
	})
}

// DedupeVerses removes verses with duplicate IDs, keeping the first
// occurrence. The input slice is not modified.
func DedupeVerses(verses []Verse) []Verse {
	seen := make(map[string]struct{}, len(verses))
	out := make([]Verse, 0, len(verses))
	for _, v := range verses {
		if _, dup := seen[v.ID]; dup {
			continue
		}
		seen[v.ID] = struct{}{}
		out = append(out, v)
	}
	return out
}
