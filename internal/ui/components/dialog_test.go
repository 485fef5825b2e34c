package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickerDialogMarksCheckedAndCursor(t *testing.T) {
	out := PickerDialog("Tags", []PickerOption{
		{Label: "intro", Checked: true},
		{Label: "advanced"},
	}, 1, 80)
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Tags")
	assert.Contains(t, clean, "[x] intro")
	assert.Contains(t, clean, "> [ ] advanced")
	assert.Contains(t, clean, "space: toggle")
}

func TestPickerDialogEmpty(t *testing.T) {
	out := PickerDialog("Tags", nil, 0, 80)
	assert.Contains(t, SanitizeText(out), "Nothing to pick.")
}
