package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riklabs/rigveda-cli/internal/core/domain"
)

func TestHistoryStore_ReplaceAndList(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()

	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Replace(ctx, []string{"agni", "indra"}))

	got, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"agni", "indra"}, got)

	// Mutating the returned slice must not affect the store.
	got[0] = "soma"
	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"agni", "indra"}, again)
}

func TestHistoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()

	require.NoError(t, store.Replace(ctx, []string{"agni"}))
	require.NoError(t, store.Clear(ctx))

	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookmarkStore_SaveListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewBookmarkStore()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, domain.Bookmark{ID: "a", VerseID: "rv.1.1.1", CreatedAt: base}))
	require.NoError(t, store.Save(ctx, domain.Bookmark{ID: "b", VerseID: "rv.2.12.1", CreatedAt: base.Add(time.Hour)}))

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rv.2.12.1", got[0].VerseID)
	assert.Equal(t, "rv.1.1.1", got[1].VerseID)
}

func TestBookmarkStore_SaveExistingIsNoop(t *testing.T) {
	ctx := context.Background()
	store := NewBookmarkStore()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, domain.Bookmark{ID: "a", VerseID: "rv.1.1.1", CreatedAt: base}))
	require.NoError(t, store.Save(ctx, domain.Bookmark{ID: "b", VerseID: "rv.1.1.1", CreatedAt: base.Add(time.Hour)}))

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestBookmarkStore_DeleteAndExists(t *testing.T) {
	ctx := context.Background()
	store := NewBookmarkStore()

	require.NoError(t, store.Save(ctx, domain.Bookmark{ID: "a", VerseID: "rv.1.1.1", CreatedAt: time.Now()}))

	ok, err := store.Exists(ctx, "rv.1.1.1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Delete(ctx, "rv.1.1.1"))
	require.NoError(t, store.Delete(ctx, "rv.1.1.1")) // second delete is a no-op

	ok, err = store.Exists(ctx, "rv.1.1.1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("reading.script", "iast"))
	require.NoError(t, store.Set("reading.font_size", 18))
	require.NoError(t, store.Set("reading.line_spacing", 1.5))
	require.NoError(t, store.Set("audio.auto_play", true))

	assert.Equal(t, "iast", store.GetString("reading.script"))
	assert.Equal(t, 18, store.GetInt("reading.font_size"))
	assert.Equal(t, 1.5, store.GetFloat("reading.line_spacing"))
	assert.True(t, store.GetBool("audio.auto_play"))

	// Integer values convert for float reads, as the file store does.
	require.NoError(t, store.Set("audio.speed", 2))
	assert.Equal(t, 2.0, store.GetFloat("audio.speed"))

	// Missing or mistyped keys return zero values.
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("reading.script"))
	assert.False(t, store.GetBool("reading.script"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}
