package domain

const unknownDescription = "Unknown"

// Script selects which script(s) verse text is rendered in.
type Script string

// Available scripts.
const (
	// ScriptDevanagari shows the Sanskrit original only.
	ScriptDevanagari Script = "devanagari"

	// ScriptIAST shows the romanised transliteration only.
	ScriptIAST Script = "iast"

	// ScriptBoth shows original and transliteration side by side.
	ScriptBoth Script = "both"
)

// IsValid returns true if the script option is recognised.
func (s Script) IsValid() bool {
	switch s {
	case ScriptDevanagari, ScriptIAST, ScriptBoth:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Script) String() string {
	return string(s)
}

// Description returns a human-readable description of the script option.
func (s Script) Description() string {
	switch s {
	case ScriptDevanagari:
		return "Devanagari (original)"
	case ScriptIAST:
		return "IAST (transliteration)"
	case ScriptBoth:
		return "Both scripts"
	default:
		return unknownDescription
	}
}

// ReadingMode selects how verses are laid out.
type ReadingMode string

// Available reading modes.
const (
	ReadingModeScroll   ReadingMode = "scroll"
	ReadingModeCard     ReadingMode = "card"
	ReadingModeParallel ReadingMode = "parallel"
)

// IsValid returns true if the reading mode is recognised.
func (m ReadingMode) IsValid() bool {
	switch m {
	case ReadingModeScroll, ReadingModeCard, ReadingModeParallel:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ReadingMode) String() string {
	return string(m)
}

// Known translator names for the preferred-translation setting. Free-form
// values are accepted since translation data carries arbitrary translators.
const (
	TranslatorGriffith        = "Griffith"
	TranslatorJamisonBrereton = "Jamison-Brereton"
	TranslatorWilson          = "Wilson"
)

// ReadingSettings holds the user's display and playback preferences.
// It is a flat record persisted locally and merged over defaults on load.
type ReadingSettings struct {
	// Script selects the rendered script(s).
	Script Script `toml:"script"`

	// Translation is the preferred translator name.
	Translation string `toml:"translation"`

	// FontSize is the display font size in points.
	FontSize int `toml:"font_size"`

	// LineSpacing is the display line spacing multiplier.
	LineSpacing float64 `toml:"line_spacing"`

	// Mode selects the verse layout.
	Mode ReadingMode `toml:"reading_mode"`

	// AudioAutoPlay starts recitation playback when a verse opens.
	AudioAutoPlay bool `toml:"audio_auto_play"`

	// AudioSpeed is the playback rate multiplier.
	AudioSpeed float64 `toml:"audio_speed"`

	// AudioVolume is the playback volume (0..1).
	AudioVolume float64 `toml:"audio_volume"`
}

// DefaultReadingSettings returns the defaults used when nothing is
// persisted or the persisted record is unreadable.
func DefaultReadingSettings() ReadingSettings {
	return ReadingSettings{
		Script:        ScriptDevanagari,
		Translation:   TranslatorGriffith,
		FontSize:      20,
		LineSpacing:   1.5,
		Mode:          ReadingModeScroll,
		AudioAutoPlay: false,
		AudioSpeed:    1,
		AudioVolume:   1,
	}
}

// Normalise replaces invalid fields with their defaults. Persisted
// settings pass through here so a corrupt file degrades field by field
// instead of rejecting the whole record.
func (s ReadingSettings) Normalise() ReadingSettings {
	def := DefaultReadingSettings()
	if !s.Script.IsValid() {
		s.Script = def.Script
	}
	if s.Translation == "" {
		s.Translation = def.Translation
	}
	if s.FontSize <= 0 {
		s.FontSize = def.FontSize
	}
	if s.LineSpacing <= 0 {
		s.LineSpacing = def.LineSpacing
	}
	if !s.Mode.IsValid() {
		s.Mode = def.Mode
	}
	if s.AudioSpeed <= 0 {
		s.AudioSpeed = def.AudioSpeed
	}
	if s.AudioVolume < 0 || s.AudioVolume > 1 {
		s.AudioVolume = def.AudioVolume
	}
	return s
}
