package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

func TestShowCmd_Use(t *testing.T) {
	assert.Equal(t, "show [verse]", showCmd.Use)
}

func TestShowCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("show")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestShowCmd_PrintsVerse(t *testing.T) {
	corpus := &mockCorpusService{
		VerseFunc: func(_ context.Context, idOrRef string) (*domain.Verse, error) {
			assert.Equal(t, "1.1.1", idOrRef)
			return sampleVerse("rv.1.1.1", 1, 1, 1, "Agni"), nil
		},
	}
	cleanup := setupServices(Services{
		Corpus:    corpus,
		Search:    &mockSearchService{},
		Bookmarks: &mockBookmarkService{},
		Settings:  newMockSettingsService(),
	})
	defer cleanup()

	out, err := executeCommand("show", "1.1.1")

	require.NoError(t, err)
	assert.Contains(t, out, "1.1.1 · Agni · Gayatri")
	assert.Contains(t, out, "Rishi: Madhuchchhandas")
	assert.Contains(t, out, "अग्निमीळे पुरोहितम्")
	assert.Contains(t, out, "agnim ile purohitam")
	assert.Contains(t, out, "I laud Agni, the chosen priest")
	assert.Contains(t, out, "(Griffith)")
	assert.Contains(t, out, "Themes: [praise]")
}

func TestShowCmd_HonoursScriptSetting(t *testing.T) {
	corpus := &mockCorpusService{
		VerseFunc: func(_ context.Context, _ string) (*domain.Verse, error) {
			return sampleVerse("rv.1.1.1", 1, 1, 1, "Agni"), nil
		},
	}
	settings := newMockSettingsService()
	settings.Settings.Script = domain.ScriptIAST
	cleanup := setupServices(Services{Corpus: corpus, Settings: settings})
	defer cleanup()

	out, err := executeCommand("show", "1.1.1")

	require.NoError(t, err)
	assert.NotContains(t, out, "अग्निमीळे")
	assert.Contains(t, out, "agnim ile purohitam")
}

func TestShowCmd_MarksBookmarked(t *testing.T) {
	corpus := &mockCorpusService{
		VerseFunc: func(_ context.Context, _ string) (*domain.Verse, error) {
			return sampleVerse("rv.1.1.1", 1, 1, 1, "Agni"), nil
		},
	}
	cleanup := setupServices(Services{
		Corpus:    corpus,
		Bookmarks: &mockBookmarkService{Bookmarked: true},
		Settings:  newMockSettingsService(),
	})
	defer cleanup()

	out, err := executeCommand("show", "1.1.1")

	require.NoError(t, err)
	assert.Contains(t, out, "Bookmarked.")
}

func TestShowCmd_JSON(t *testing.T) {
	corpus := &mockCorpusService{
		VerseFunc: func(_ context.Context, _ string) (*domain.Verse, error) {
			return sampleVerse("rv.1.1.1", 1, 1, 1, "Agni"), nil
		},
	}
	cleanup := setupServices(Services{Corpus: corpus})
	defer cleanup()
	defer func() { showJSON = false }()

	out, err := executeCommand("show", "1.1.1", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"id": "rv.1.1.1"`)
	assert.Contains(t, out, `"mandala": 1`)
}

func TestShowCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("show", "99.99.99")

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShowCmd_ErrorsWithoutService(t *testing.T) {
	cleanup := setupServices(Services{})
	defer cleanup()

	_, err := executeCommand("show", "1.1.1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
