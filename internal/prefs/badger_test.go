package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerKVInMemoryGetSet(t *testing.T) {
	kv, err := OpenBadgerInMemory(nil)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	_, ok, err := kv.Get(KeyFilters)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(KeyFilters, `{"topic":"Algebra"}`))
	v, ok, err := kv.Get(KeyFilters)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"topic":"Algebra"}`, v)
}

func TestBadgerKVPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	kv, err := OpenBadger(dir, nil)
	require.NoError(t, err)
	store := NewStore(kv, nil)
	snap := Snapshot{
		Topic: "Geometry", Subtopic: "Circles", Difficulty: "medium",
		Tags: []string{"area"}, FavoritesOnly: true,
		Favorites: []string{"3"}, DarkMode: true,
	}
	require.NoError(t, store.Save(snap))
	require.NoError(t, kv.Close())

	reopened, err := OpenBadger(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })
	assert.Equal(t, snap, NewStore(reopened, nil).Load())
}

func TestOpenBadgerRequiresDir(t *testing.T) {
	_, err := OpenBadger("", nil)
	assert.Error(t, err)
}
