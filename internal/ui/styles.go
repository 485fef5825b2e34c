package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/qbank/internal/catalog"
	"github.com/gravitrone/qbank/internal/ui/components"
)

// --- Theme Colors ---

var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorBackground lipgloss.Color
	ColorText       lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBorder     lipgloss.Color
)

// difficulty badge colors, shared by both themes
var (
	colorEasy   = lipgloss.Color("#3f866b")
	colorMedium = lipgloss.Color("#c78854")
	colorHard   = lipgloss.Color("#b0505e")
)

// --- Reusable Styles ---

var (
	BannerStyle    lipgloss.Style
	StatusBarStyle lipgloss.Style
	SelectedStyle  lipgloss.Style
	NormalStyle    lipgloss.Style
	MutedStyle     lipgloss.Style
	AccentStyle    lipgloss.Style
	HeaderStyle    lipgloss.Style
	TagStyle       lipgloss.Style
	TagActiveStyle lipgloss.Style
	ToastStyle     lipgloss.Style
)

// ApplyTheme switches every ui and component style to the dark or light palette.
func ApplyTheme(dark bool) {
	p := components.LightPalette
	if dark {
		p = components.DarkPalette
	}
	components.SetPalette(p)

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorBackground = p.Background
	ColorText = p.Text
	ColorMuted = p.Muted
	ColorBorder = p.Border

	BannerStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		PaddingTop(1)

	SelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	NormalStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	AccentStyle = lipgloss.NewStyle().
		Foreground(p.Marker)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	TagStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TagActiveStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorSecondary).
		Bold(true).
		Padding(0, 1)

	ToastStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)
}

// light until the restored preference says otherwise
func init() {
	ApplyTheme(false)
}

// DifficultyBadge renders a short colored label for a difficulty.
func DifficultyBadge(difficulty string) string {
	return lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(difficultyColor(difficulty)).
		Bold(true).
		Padding(0, 1).
		Render(difficulty)
}

// difficultyCell colors a padded table cell by the difficulty it holds.
func difficultyCell(cell string) string {
	return lipgloss.NewStyle().
		Foreground(difficultyColor(strings.TrimSpace(cell))).
		Bold(true).
		Render(cell)
}

func difficultyColor(difficulty string) lipgloss.Color {
	switch catalog.Difficulty(difficulty) {
	case catalog.Easy:
		return colorEasy
	case catalog.Medium:
		return colorMedium
	case catalog.Hard:
		return colorHard
	}
	return ColorMuted
}
