package components

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors the components render with.
type Palette struct {
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Background  lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	KeyCap      lipgloss.Color
	ActiveRow   lipgloss.Color
	Marker      lipgloss.Color
	ErrorBorder lipgloss.Color
	ErrorTitle  lipgloss.Color
	ErrorBody   lipgloss.Color
}

var (
	DarkPalette = Palette{
		Primary:     lipgloss.Color("#7f57b4"),
		Secondary:   lipgloss.Color("#436b77"),
		Background:  lipgloss.Color("#16161d"),
		Text:        lipgloss.Color("#d7d9da"),
		Muted:       lipgloss.Color("#9ba0bf"),
		Border:      lipgloss.Color("#273540"),
		KeyCap:      lipgloss.Color("#888ba4"),
		ActiveRow:   lipgloss.Color("#1f2530"),
		Marker:      lipgloss.Color("#e0b341"),
		ErrorBorder: lipgloss.Color("#7a2f3a"),
		ErrorTitle:  lipgloss.Color("#e06c75"),
		ErrorBody:   lipgloss.Color("#d6b5b5"),
	}

	LightPalette = Palette{
		Primary:     lipgloss.Color("#5b3a8c"),
		Secondary:   lipgloss.Color("#2f5562"),
		Background:  lipgloss.Color("#f4f4f6"),
		Text:        lipgloss.Color("#1e2024"),
		Muted:       lipgloss.Color("#5c6178"),
		Border:      lipgloss.Color("#b8c2ca"),
		KeyCap:      lipgloss.Color("#5c6178"),
		ActiveRow:   lipgloss.Color("#e2e5ee"),
		Marker:      lipgloss.Color("#b07d00"),
		ErrorBorder: lipgloss.Color("#b04a5a"),
		ErrorTitle:  lipgloss.Color("#a3283a"),
		ErrorBody:   lipgloss.Color("#5a2a30"),
	}
)

var active = DarkPalette

// CurrentPalette returns the palette in use.
func CurrentPalette() Palette {
	return active
}

// SetPalette rebuilds every component style from p.
func SetPalette(p Palette) {
	active = p

	boxBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)
	boxBorderActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	boxHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	boxMutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	boxValueStyle = lipgloss.NewStyle().
		Foreground(p.Text)
	boxLabelStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)
	errorBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.ErrorBorder).
		Padding(1, 2)
	errorHeaderStyle = lipgloss.NewStyle().
		Foreground(p.ErrorTitle).
		Bold(true)
	errorBodyStyle = lipgloss.NewStyle().
		Foreground(p.ErrorBody)

	gridLineStyle = lipgloss.NewStyle().
		Foreground(p.Border)
	gridActiveRowStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.ActiveRow).
		Bold(true)
	gridActiveSepStyle = lipgloss.NewStyle().
		Foreground(p.Border).
		Background(p.ActiveRow)
	gridMarkerStyle = lipgloss.NewStyle().
		Foreground(p.Marker).
		Bold(true)

	hintDescStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	keyCapStyle = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.KeyCap).
		Bold(true).
		Padding(0, 1)
	segmentStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		MarginRight(1)

	dialogStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)
}

func init() {
	SetPalette(LightPalette)
}
