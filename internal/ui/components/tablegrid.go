package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FavoriteMarker flags a starred question in the marker column.
const FavoriteMarker = "★"

// gutter is the blank space left of every grid line.
const gutter = 2

var (
	gridLineStyle      lipgloss.Style
	gridActiveRowStyle lipgloss.Style
	gridActiveSepStyle lipgloss.Style
	gridMarkerStyle    lipgloss.Style
)

// TableColumn is one column of a Grid.
//
// Width is the content width without separators. The Flex column absorbs
// whatever width the grid has left over (or gives it back when too narrow);
// without one, the last column does. Paint, when set, styles a padded data
// cell of an inactive row.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
	Flex   bool
	Paint  func(cell string) string
}

// MarkerColumn is a narrow centered column that highlights FavoriteMarker.
func MarkerColumn() TableColumn {
	return TableColumn{
		Header: FavoriteMarker,
		Width:  3,
		Align:  lipgloss.Center,
		Paint:  HighlightMarker,
	}
}

// HighlightMarker colors every FavoriteMarker in cell.
func HighlightMarker(cell string) string {
	return strings.ReplaceAll(cell, FavoriteMarker, gridMarkerStyle.Render(FavoriteMarker))
}

// Grid is a header, a rule and one line per row, drawn with the rounded
// border glyphs of the boxes. Active is the highlighted row, -1 for none.
type Grid struct {
	Columns []TableColumn
	Rows    [][]string
	Active  int
}

// Render draws the grid exactly width cells wide. Pass a width that fits a
// box content area (BoxContentWidth).
func (g Grid) Render(width int) string {
	if width <= 0 {
		return ""
	}
	if len(g.Columns) == 0 {
		return padRight("", width)
	}

	border := lipgloss.RoundedBorder()
	cols := fitColumns(g.Columns, lipgloss.Width(border.Left), width)

	lines := make([]string, 0, len(g.Rows)+2)
	lines = append(lines, g.header(cols, border.Left, width))
	lines = append(lines, rule(cols, border.Middle, border.Top, width))
	for i, row := range g.Rows {
		lines = append(lines, g.row(cols, row, border.Left, width, i == g.Active))
	}
	return strings.Join(lines, "\n")
}

func fitColumns(columns []TableColumn, sepWidth, width int) []TableColumn {
	cols := make([]TableColumn, len(columns))
	copy(cols, columns)

	flex := len(cols) - 1
	used := (len(cols) - 1) * sepWidth
	for i := range cols {
		if cols[i].Width < 1 {
			cols[i].Width = 1
		}
		if cols[i].Flex {
			flex = i
		}
		used += cols[i].Width
	}
	avail := width - gutter
	if avail < len(cols) {
		avail = len(cols)
	}
	cols[flex].Width += avail - used
	if cols[flex].Width < 1 {
		cols[flex].Width = 1
	}
	return cols
}

func (g Grid) header(cols []TableColumn, sep string, width int) string {
	cells := make([]string, len(cols))
	for i, col := range cols {
		cell := alignCell(SanitizeOneLine(col.Header), col.Width, col.Align)
		cells[i] = boxLabelStyle.Bold(true).Inline(true).Render(cell)
	}
	return joinCells(cells, gridLineStyle.Inline(true).Render(sep), width)
}

func (g Grid) row(cols []TableColumn, row []string, sep string, width int, active bool) string {
	sepStyle := gridLineStyle
	if active {
		sepStyle = gridActiveSepStyle
	}
	cells := make([]string, len(cols))
	for i, col := range cols {
		text := ""
		if i < len(row) {
			text = row[i]
		}
		cell := alignCell(text, col.Width, col.Align)
		switch {
		case active:
			cell = gridActiveRowStyle.Inline(true).Render(cell)
		case col.Paint != nil:
			cell = col.Paint(cell)
		}
		cells[i] = cell
	}
	return joinCells(cells, sepStyle.Inline(true).Render(sep), width)
}

func joinCells(cells []string, sep string, width int) string {
	return padRight(strings.Repeat(" ", gutter)+strings.Join(cells, sep), width)
}

func rule(cols []TableColumn, cross, horiz string, width int) string {
	segs := make([]string, len(cols))
	for i, col := range cols {
		segs[i] = strings.Repeat(horiz, col.Width)
	}
	line := padRight(strings.Repeat(" ", gutter)+strings.Join(segs, cross), width)
	return gridLineStyle.Inline(true).Render(line)
}

// alignCell clamps text to width and pads it according to align.
func alignCell(text string, width int, align lipgloss.Position) string {
	clamped := ClampTextWidth(text, width)
	if lipgloss.Width(clamped) > width {
		clamped = truncateRunes(clamped, width)
	}
	pad := width - lipgloss.Width(clamped)
	if pad <= 0 {
		return clamped
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + clamped
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + clamped + strings.Repeat(" ", pad-left)
	default:
		return clamped + strings.Repeat(" ", pad)
	}
}
