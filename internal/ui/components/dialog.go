package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var dialogStyle lipgloss.Style

// PickerOption is one row of a PickerDialog.
type PickerOption struct {
	Label   string
	Checked bool
}

// PickerDialog renders a checklist with the cursor row highlighted.
func PickerDialog(title string, options []PickerOption, cursor int, width int) string {
	header := lipgloss.NewStyle().
		Foreground(active.Primary).
		Bold(true).
		Render(title)

	var rows []string
	if len(options) == 0 {
		rows = append(rows, boxMutedStyle.Render("Nothing to pick."))
	}
	for i, opt := range options {
		mark := "[ ] "
		if opt.Checked {
			mark = "[x] "
		}
		line := mark + SanitizeOneLine(opt.Label)
		if i == cursor {
			rows = append(rows, lipgloss.NewStyle().Foreground(active.Primary).Bold(true).Render("> "+line))
		} else {
			rows = append(rows, boxValueStyle.Render("  "+line))
		}
	}

	hint := boxMutedStyle.Render("\nspace: toggle | enter/esc: close")

	return dialogStyle.Width(safeBoxWidth(width)).Render(header + "\n\n" + strings.Join(rows, "\n") + hint)
}
