package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavoritesToggleRoundTrip(t *testing.T) {
	f := NewFavorites("b", "", "a")
	assert.Equal(t, 2, f.Len())
	assert.True(t, f.Has("a"))
	assert.False(t, f.Has(""))

	assert.True(t, f.Toggle("c"))
	assert.False(t, f.Toggle("a"))
	assert.Equal(t, []string{"b", "c"}, f.IDs())

	// toggling twice restores the original set
	f.Toggle("z")
	f.Toggle("z")
	assert.Equal(t, []string{"b", "c"}, f.IDs())
}

func TestFavoritesIDsEmpty(t *testing.T) {
	ids := NewFavorites().IDs()
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}
