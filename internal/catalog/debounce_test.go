package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerOnlyLatestTicketFires(t *testing.T) {
	var d Debouncer[string]

	first := d.Push("a")
	second := d.Push("al")
	third := d.Push("alg")

	_, ok := d.Take(first)
	assert.False(t, ok)
	_, ok = d.Take(second)
	assert.False(t, ok)

	v, ok := d.Take(third)
	assert.True(t, ok)
	assert.Equal(t, "alg", v)

	// consumed
	_, ok = d.Take(third)
	assert.False(t, ok)
	assert.False(t, d.Pending())
}

func TestDebouncerCancel(t *testing.T) {
	var d Debouncer[string]
	ticket := d.Push("x")
	assert.True(t, d.Pending())

	d.Cancel()
	_, ok := d.Take(ticket)
	assert.False(t, ok)
	assert.False(t, d.Pending())

	next := d.Push("y")
	assert.NotEqual(t, ticket, next)
	v, ok := d.Take(next)
	assert.True(t, ok)
	assert.Equal(t, "y", v)
}
