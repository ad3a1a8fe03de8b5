package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riklabs/rigveda-cli/internal/adapters/driven/storage/memory"
	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

func TestSettingsService_GetDefaultsWhenEmpty(t *testing.T) {
	s := NewSettingsService(memory.NewConfigStore())

	got, err := s.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultReadingSettings(), got)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	s := NewSettingsService(memory.NewConfigStore())

	want := domain.DefaultReadingSettings()
	want.Script = domain.ScriptIAST
	want.FontSize = 24
	want.AudioAutoPlay = true

	require.NoError(t, s.Save(want))

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsService_MutedVolumeSurvivesRoundTrip(t *testing.T) {
	s := NewSettingsService(memory.NewConfigStore())

	want := domain.DefaultReadingSettings()
	want.AudioVolume = 0

	require.NoError(t, s.Save(want))

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.AudioVolume, "persisted zero volume must not revert to the default")
}

func TestSettingsService_InvalidPersistedValuesFallBack(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("reading.script", "klingon"))
	require.NoError(t, store.Set("reading.font_size", -3))
	s := NewSettingsService(store)

	got, err := s.Get()

	require.NoError(t, err)
	def := domain.DefaultReadingSettings()
	assert.Equal(t, def.Script, got.Script)
	assert.Equal(t, def.FontSize, got.FontSize)
}

func TestSettingsService_SetByKey(t *testing.T) {
	s := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, s.Set("script", "both"))
	require.NoError(t, s.Set("font_size", "22"))
	require.NoError(t, s.Set("reading_mode", "card"))
	require.NoError(t, s.Set("audio_volume", "0.5"))

	got, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ScriptBoth, got.Script)
	assert.Equal(t, 22, got.FontSize)
	assert.Equal(t, domain.ReadingModeCard, got.Mode)
	assert.Equal(t, 0.5, got.AudioVolume)
}

func TestSettingsService_SetRejectsInvalid(t *testing.T) {
	s := NewSettingsService(memory.NewConfigStore())

	cases := map[string]string{
		"script":          "runes",
		"font_size":       "zero",
		"line_spacing":    "-1",
		"reading_mode":    "teleprompter",
		"audio_auto_play": "maybe",
		"audio_speed":     "0",
		"audio_volume":    "1.5",
		"no_such_key":     "x",
	}
	for key, value := range cases {
		err := s.Set(key, value)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%s=%s", key, value)
	}
}
