package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riklabs/rigveda-cli/internal/adapters/driven/storage/memory"
)

// failingHistoryStore simulates a corrupt persisted history.
type failingHistoryStore struct {
	memory.HistoryStore
	listErr error
}

func (f *failingHistoryStore) List(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.HistoryStore.List(ctx)
}

func TestHistoryService_RecordMoveToFront(t *testing.T) {
	ctx := context.Background()
	s := NewHistoryService(memory.NewHistoryStore(), 0)

	require.NoError(t, s.Record(ctx, "agni"))
	require.NoError(t, s.Record(ctx, "indra"))
	require.NoError(t, s.Record(ctx, "soma"))
	// Repeating an existing query moves it, it does not duplicate.
	require.NoError(t, s.Record(ctx, "agni"))

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"agni", "soma", "indra"}, got)
}

func TestHistoryService_BoundedAtLimit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()
	s := NewHistoryService(store, 0)

	for i := 0; i < DefaultHistoryLimit+5; i++ {
		require.NoError(t, s.Record(ctx, fmt.Sprintf("query-%d", i)))
	}

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, DefaultHistoryLimit)
	assert.Equal(t, fmt.Sprintf("query-%d", DefaultHistoryLimit+4), got[0])

	// The store holds the same truncated list.
	persisted, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, persisted)
}

func TestHistoryService_BlankIgnored(t *testing.T) {
	ctx := context.Background()
	s := NewHistoryService(memory.NewHistoryStore(), 0)

	require.NoError(t, s.Record(ctx, ""))
	require.NoError(t, s.Record(ctx, "   "))

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistoryService_LoadsPersistedEntries(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()
	require.NoError(t, store.Replace(ctx, []string{"usha", "varuna"}))

	s := NewHistoryService(store, 0)

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"usha", "varuna"}, got)
}

func TestHistoryService_TruncatesOversizedPersistedHistory(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()
	var entries []string
	for i := 0; i < 25; i++ {
		entries = append(entries, fmt.Sprintf("q%d", i))
	}
	require.NoError(t, store.Replace(ctx, entries))

	s := NewHistoryService(store, 0)

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, DefaultHistoryLimit)
	assert.Equal(t, "q0", got[0])
}

func TestHistoryService_CorruptStoreStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := &failingHistoryStore{listErr: errors.New("unreadable")}
	s := NewHistoryService(store, 0)

	got, err := s.List(ctx)
	require.NoError(t, err, "unreadable history is not the user's problem")
	assert.Empty(t, got)

	// The service stays usable after the bad load.
	require.NoError(t, s.Record(ctx, "agni"))
	got, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"agni"}, got)
}

func TestHistoryService_Remove(t *testing.T) {
	ctx := context.Background()
	s := NewHistoryService(memory.NewHistoryStore(), 0)

	require.NoError(t, s.Record(ctx, "agni"))
	require.NoError(t, s.Record(ctx, "indra"))
	require.NoError(t, s.Record(ctx, "soma"))

	require.NoError(t, s.Remove(ctx, "indra"))
	require.NoError(t, s.Remove(ctx, "absent"))

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"soma", "agni"}, got)
}

func TestHistoryService_Clear(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()
	s := NewHistoryService(store, 0)

	require.NoError(t, s.Record(ctx, "agni"))
	require.NoError(t, s.Clear(ctx))

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	persisted, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}
