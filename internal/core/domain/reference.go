package domain

// GeographyEntry is one place from the geographic reference resource.
type GeographyEntry struct {
	Name           string       `json:"name"`
	Region         string       `json:"region,omitempty"`
	ModernLocation string       `json:"modern_location,omitempty"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	Description    string       `json:"description,omitempty"`
}

// DeityEntry is one deity from the deity reference resource.
type DeityEntry struct {
	Name        string   `json:"name"`
	Domain      string   `json:"domain,omitempty"`
	Epithets    []string `json:"epithets,omitempty"`
	Description string   `json:"description,omitempty"`
	VerseCount  int      `json:"verse_count,omitempty"`
}

// AudioIndex maps mandala number -> sukta number -> recitation URL.
// Absence of an entry means audio is simply unavailable for that sukta;
// that is a normal condition, not an error.
type AudioIndex map[int]map[int]string

// Lookup returns the recitation URL for (mandala, sukta).
func (a AudioIndex) Lookup(mandala, sukta int) (string, bool) {
	suktas, ok := a[mandala]
	if !ok {
		return "", false
	}
	url, ok := suktas[sukta]
	if !ok || url == "" {
		return "", false
	}
	return url, true
}
