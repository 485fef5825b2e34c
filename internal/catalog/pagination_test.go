package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func numberedRecords(n int) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i] = Record{
			ID:           fmt.Sprintf("q-%02d", i+1),
			Topic:        "Algebra",
			Subtopic:     "Linear",
			Difficulty:   Easy,
			QuestionText: fmt.Sprintf("question %d", i+1),
			SolutionText: "answer",
			Tags:         []string{"drill"},
		}
	}
	return out
}

func TestPaginatorClampsAndAdvances(t *testing.T) {
	results := numberedRecords(30)
	p := NewPaginator(12)

	assert.Equal(t, 1, p.Page())
	assert.Len(t, p.VisibleSlice(results), 12)
	assert.True(t, p.HasMore(len(results)))

	p.Advance()
	p.Advance()
	assert.Equal(t, 3, p.Page())
	assert.Len(t, p.VisibleSlice(results), 30)
	assert.False(t, p.HasMore(len(results)))

	p.Reset()
	assert.Equal(t, 1, p.Page())
}

func TestPaginatorVisibleNeverExceedsTotal(t *testing.T) {
	for total := 0; total < 40; total++ {
		results := numberedRecords(total)
		p := NewPaginator(5)
		for step := 0; step < 10; step++ {
			visible := p.VisibleSlice(results)
			assert.LessOrEqual(t, len(visible), total)
			assert.Equal(t, len(visible) != total, p.HasMore(total))
			p.Advance()
		}
	}
}

func TestPaginatorDefaultSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewPaginator(0).Size())
	assert.Equal(t, DefaultPageSize, NewPaginator(-3).Size())
}

func TestPaginatorRevealIndex(t *testing.T) {
	p := NewPaginator(12)
	assert.False(t, p.RevealIndex(5, 30))
	assert.Equal(t, 1, p.Page())

	assert.True(t, p.RevealIndex(25, 30))
	assert.Equal(t, 3, p.Page())

	// already visible, never moves backwards
	assert.False(t, p.RevealIndex(0, 30))
	assert.Equal(t, 3, p.Page())

	assert.False(t, p.RevealIndex(30, 30))
	assert.False(t, p.RevealIndex(-1, 30))
}
