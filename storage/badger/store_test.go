package badger

import (
	"context"
	"testing"

	"github.com/riftforge/riftseed/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBatch_CommitAndRead(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	batch := store.NewBatch("items")
	batch.Set("potion_health_small", map[string]any{"id": "potion_health_small", "type": "potion"})
	batch.Set("key_rift_e", map[string]any{"id": "key_rift_e", "type": "key"})
	assert.Equal(t, 2, batch.Len())

	require.NoError(t, batch.Commit(ctx))

	doc, err := store.GetDocument(ctx, "items", "potion_health_small")
	require.NoError(t, err)
	assert.Equal(t, "items", doc.Collection)
	assert.Equal(t, "potion_health_small", doc.ID)
	assert.Equal(t, "potion", doc.Data["type"])
	assert.False(t, doc.WrittenAt.IsZero())

	docs, err := store.ListDocuments(ctx, "items")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	// Key order
	assert.Equal(t, "key_rift_e", docs[0].ID)
	assert.Equal(t, "potion_health_small", docs[1].ID)
}

func TestBatch_LastWriteWins(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	batch := store.NewBatch("skills")
	batch.Set("dup", map[string]any{"id": "dup", "name": "first"})
	batch.Set("dup", map[string]any{"id": "dup", "name": "second"})
	assert.Equal(t, 1, batch.Len())

	require.NoError(t, batch.Commit(ctx))

	doc, err := store.GetDocument(ctx, "skills", "dup")
	require.NoError(t, err)
	assert.Equal(t, "second", doc.Data["name"])
}

func TestBatch_OverwritesExistingDocument(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first := store.NewBatch("items")
	first.Set("a", map[string]any{"id": "a", "name": "old", "extra": true})
	require.NoError(t, first.Commit(ctx))

	second := store.NewBatch("items")
	second.Set("a", map[string]any{"id": "a", "name": "new"})
	require.NoError(t, second.Commit(ctx))

	doc, err := store.GetDocument(ctx, "items", "a")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "a", "name": "new"}, doc.Data)
}

func TestBatch_CommitTwice(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	batch := store.NewBatch("items")
	batch.Set("a", map[string]any{"id": "a"})
	require.NoError(t, batch.Commit(ctx))

	assert.ErrorIs(t, batch.Commit(ctx), storage.ErrBatchCommitted)
}

func TestBatch_EmptyCollection(t *testing.T) {
	store := setupTestStore(t)

	batch := store.NewBatch("")
	batch.Set("a", map[string]any{"id": "a"})
	assert.ErrorIs(t, batch.Commit(context.Background()), storage.ErrEmptyCollection)
}

func TestBatch_EmptyCommit(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.NewBatch("items").Commit(ctx))

	docs, err := store.ListDocuments(ctx, "items")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestBatch_CancelledContext(t *testing.T) {
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := store.NewBatch("items")
	batch.Set("a", map[string]any{"id": "a"})
	assert.ErrorIs(t, batch.Commit(ctx), context.Canceled)

	_, err := store.GetDocument(context.Background(), "items", "a")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_Closed(t *testing.T) {
	store, err := NewMemoryStore()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	batch := store.NewBatch("items")
	batch.Set("a", map[string]any{"id": "a"})
	assert.ErrorIs(t, batch.Commit(context.Background()), storage.ErrStorageClosed)

	_, err = store.GetDocument(context.Background(), "items", "a")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestStore_CollectionsAreIsolated(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	items := store.NewBatch("items")
	items.Set("shared", map[string]any{"id": "shared", "kind": "item"})
	require.NoError(t, items.Commit(ctx))

	skills := store.NewBatch("skills")
	skills.Set("shared", map[string]any{"id": "shared", "kind": "skill"})
	require.NoError(t, skills.Commit(ctx))

	doc, err := store.GetDocument(ctx, "items", "shared")
	require.NoError(t, err)
	assert.Equal(t, "item", doc.Data["kind"])

	docs, err := store.ListDocuments(ctx, "skills")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "skill", docs[0].Data["kind"])
}

func TestOpenStore_Persists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := OpenStore(dir)
	require.NoError(t, err)
	batch := store.NewBatch("items")
	batch.Set("a", map[string]any{"id": "a"})
	require.NoError(t, batch.Commit(ctx))
	require.NoError(t, store.Close())

	reopened, err := OpenStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	doc, err := reopened.GetDocument(ctx, "items", "a")
	require.NoError(t, err)
	assert.Equal(t, "a", doc.ID)
}

func TestNewStore_DoesNotCloseBackend(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	store := NewStore(backend)
	require.NoError(t, store.Close())
	assert.False(t, backend.IsClosed())
}
