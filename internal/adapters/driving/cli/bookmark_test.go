package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

func TestBookmarkCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range bookmarkCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "list")
	assert.Contains(t, names, "add")
	assert.Contains(t, names, "remove")
	assert.Contains(t, names, "toggle")
}

func TestBookmarkListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("bookmark", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No bookmarks.")
}

func TestBookmarkListCmd_PrintsEntries(t *testing.T) {
	bookmarks := &mockBookmarkService{
		Bookmarks: []domain.Bookmark{
			{ID: "b1", VerseID: "rv.3.62.10", CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)},
			{ID: "b2", VerseID: "rv.1.1.1", CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
		},
	}
	cleanup := setupServices(Services{Bookmarks: bookmarks})
	defer cleanup()

	out, err := executeCommand("bookmark", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "rv.3.62.10  (saved 2026-08-30)")
	assert.Contains(t, out, "rv.1.1.1  (saved 2026-08-01)")
}

func TestBookmarkAddCmd_ResolvesReference(t *testing.T) {
	corpus := &mockCorpusService{
		VerseFunc: func(_ context.Context, idOrRef string) (*domain.Verse, error) {
			assert.Equal(t, "1.1.1", idOrRef)
			return sampleVerse("rv.1.1.1", 1, 1, 1, "Agni"), nil
		},
	}
	bookmarks := &mockBookmarkService{}
	cleanup := setupServices(Services{Corpus: corpus, Bookmarks: bookmarks})
	defer cleanup()

	out, err := executeCommand("bookmark", "add", "1.1.1")

	require.NoError(t, err)
	assert.Equal(t, []string{"rv.1.1.1"}, bookmarks.Added)
	assert.Contains(t, out, "Bookmarked rv.1.1.1.")
}

func TestBookmarkAddCmd_UnknownVerse(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("bookmark", "add", "99.99.99")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookmarkRemoveCmd(t *testing.T) {
	corpus := &mockCorpusService{
		VerseFunc: func(_ context.Context, _ string) (*domain.Verse, error) {
			return sampleVerse("rv.1.1.1", 1, 1, 1, "Agni"), nil
		},
	}
	bookmarks := &mockBookmarkService{}
	cleanup := setupServices(Services{Corpus: corpus, Bookmarks: bookmarks})
	defer cleanup()

	out, err := executeCommand("bookmark", "remove", "rv.1.1.1")

	require.NoError(t, err)
	assert.Equal(t, []string{"rv.1.1.1"}, bookmarks.Removed)
	assert.Contains(t, out, "Removed bookmark for rv.1.1.1.")
}

func TestBookmarkToggleCmd(t *testing.T) {
	corpus := &mockCorpusService{
		VerseFunc: func(_ context.Context, _ string) (*domain.Verse, error) {
			return sampleVerse("rv.1.1.1", 1, 1, 1, "Agni"), nil
		},
	}
	bookmarks := &mockBookmarkService{}
	cleanup := setupServices(Services{Corpus: corpus, Bookmarks: bookmarks})
	defer cleanup()

	out, err := executeCommand("bookmark", "toggle", "1.1.1")
	require.NoError(t, err)
	assert.Contains(t, out, "Bookmarked rv.1.1.1.")

	out, err = executeCommand("bookmark", "toggle", "1.1.1")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed bookmark for rv.1.1.1.")
}

func TestBookmarkCmds_ErrorWithoutService(t *testing.T) {
	cleanup := setupServices(Services{})
	defer cleanup()

	for _, args := range [][]string{
		{"bookmark", "list"},
		{"bookmark", "add", "1.1.1"},
		{"bookmark", "remove", "1.1.1"},
		{"bookmark", "toggle", "1.1.1"},
	} {
		_, err := executeCommand(args...)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	}
}
