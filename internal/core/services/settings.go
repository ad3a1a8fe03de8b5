package services

import (
	"fmt"
	"strconv"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driven"
	"github.com/riklabs/rigveda-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for reading preferences.
const (
	keyScript        = "reading.script"
	keyTranslation   = "reading.translation"
	keyFontSize      = "reading.font_size"
	keyLineSpacing   = "reading.line_spacing"
	keyReadingMode   = "reading.mode"
	keyAudioAutoPlay = "audio.auto_play"
	keyAudioSpeed    = "audio.speed"
	keyAudioVolume   = "audio.volume"
)

// SettingsService manages reading preferences over the config store.
// Missing or invalid persisted values silently fall back to defaults;
// the user never sees an error for a corrupt preferences file.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings, merged over defaults.
func (s *SettingsService) Get() (domain.ReadingSettings, error) {
	def := domain.DefaultReadingSettings()

	settings := domain.ReadingSettings{
		Script:        domain.Script(s.getString(keyScript, def.Script.String())),
		Translation:   s.getString(keyTranslation, def.Translation),
		FontSize:      s.getInt(keyFontSize, def.FontSize),
		LineSpacing:   s.getFloat(keyLineSpacing, def.LineSpacing),
		Mode:          domain.ReadingMode(s.getString(keyReadingMode, def.Mode.String())),
		AudioAutoPlay: s.configStore.GetBool(keyAudioAutoPlay),
		AudioSpeed:    s.getFloat(keyAudioSpeed, def.AudioSpeed),
		AudioVolume:   s.getFloat(keyAudioVolume, def.AudioVolume),
	}

	return settings.Normalise(), nil
}

// Save persists settings, normalising invalid fields first.
func (s *SettingsService) Save(settings domain.ReadingSettings) error {
	settings = settings.Normalise()

	pairs := []struct {
		key   string
		value any
	}{
		{keyScript, settings.Script.String()},
		{keyTranslation, settings.Translation},
		{keyFontSize, settings.FontSize},
		{keyLineSpacing, settings.LineSpacing},
		{keyReadingMode, settings.Mode.String()},
		{keyAudioAutoPlay, settings.AudioAutoPlay},
		{keyAudioSpeed, settings.AudioSpeed},
		{keyAudioVolume, settings.AudioVolume},
	}
	for _, p := range pairs {
		if err := s.configStore.Set(p.key, p.value); err != nil {
			return fmt.Errorf("save %s: %w", p.key, err)
		}
	}
	return nil
}

// Set updates a single preference from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case "script":
		script := domain.Script(value)
		if !script.IsValid() {
			return fmt.Errorf("%w: unknown script %q", domain.ErrInvalidInput, value)
		}
		settings.Script = script
	case "translation":
		if value == "" {
			return fmt.Errorf("%w: empty translation", domain.ErrInvalidInput)
		}
		settings.Translation = value
	case "font_size":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: font_size %q", domain.ErrInvalidInput, value)
		}
		settings.FontSize = n
	case "line_spacing":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: line_spacing %q", domain.ErrInvalidInput, value)
		}
		settings.LineSpacing = f
	case "reading_mode":
		mode := domain.ReadingMode(value)
		if !mode.IsValid() {
			return fmt.Errorf("%w: unknown reading mode %q", domain.ErrInvalidInput, value)
		}
		settings.Mode = mode
	case "audio_auto_play":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: audio_auto_play %q", domain.ErrInvalidInput, value)
		}
		settings.AudioAutoPlay = b
	case "audio_speed":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: audio_speed %q", domain.ErrInvalidInput, value)
		}
		settings.AudioSpeed = f
	case "audio_volume":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 || f > 1 {
			return fmt.Errorf("%w: audio_volume %q", domain.ErrInvalidInput, value)
		}
		settings.AudioVolume = f
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// GetDefaults returns the default settings.
func (s *SettingsService) GetDefaults() domain.ReadingSettings {
	return domain.DefaultReadingSettings()
}

func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

// getInt and getFloat check key presence rather than comparing against
// zero: zero is a legitimate persisted value (audio_volume = 0), only a
// missing key falls back to the default.
func (s *SettingsService) getInt(key string, def int) int {
	v, ok := s.configStore.Get(key)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	default:
		return def
	}
}

func (s *SettingsService) getFloat(key string, def float64) float64 {
	v, ok := s.configStore.Get(key)
	if !ok {
		return def
	}
	switch f := v.(type) {
	case float64:
		return f
	case int64:
		return float64(f)
	case int:
		return float64(f)
	default:
		return def
	}
}
