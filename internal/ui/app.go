package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/qbank/internal/api"
	"github.com/gravitrone/qbank/internal/catalog"
	"github.com/gravitrone/qbank/internal/config"
	"github.com/gravitrone/qbank/internal/prefs"
	"github.com/gravitrone/qbank/internal/ui/components"
)

const loadTimeout = 30 * time.Second

// compact header below this terminal height
const bannerMinHeight = 34

// --- Messages ---

type recordsLoadedMsg struct {
	records []catalog.Record
}

type loadFailedMsg struct {
	err error
}

// --- App State ---

type appState int

const (
	stateLoading appState = iota
	stateReady
	stateFailed
)

// --- App Model ---

// App is the root TUI model. It loads the question collection once and
// then hands every interaction to the browser.
type App struct {
	source   api.Source
	kv       prefs.KV
	config   *config.Config
	logger   *slog.Logger
	state    appState
	err      error
	browser  BrowserModel
	helpOpen bool
	width    int
	height   int
}

// NewApp creates the root application model.
func NewApp(source api.Source, kv prefs.KV, cfg *config.Config, logger *slog.Logger) App {
	if cfg == nil {
		cfg = config.Default()
	}
	if kv == nil {
		kv = prefs.NewMemoryKV()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return App{
		source: source,
		kv:     kv,
		config: cfg,
		logger: logger,
		state:  stateLoading,
	}
}

func (a App) Init() tea.Cmd {
	return a.loadCmd()
}

// loadCmd performs the one-shot load of the record collection.
func (a App) loadCmd() tea.Cmd {
	source := a.source
	return func() tea.Msg {
		if source == nil {
			return loadFailedMsg{err: errors.New("no data source configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		records, err := source.Load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return recordsLoadedMsg{records: records}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.state == stateReady {
			a.browser.setSize(msg.Width, msg.Height)
		}
		return a, nil

	case recordsLoadedMsg:
		a.start(msg.records)
		return a, nil

	case loadFailedMsg:
		a.state = stateFailed
		a.err = msg.err
		a.logger.Error("load questions failed", slog.String("error", msg.err.Error()))
		return a, nil

	case tea.KeyMsg:
		if a.state != stateReady {
			if isQuit(msg) {
				return a, tea.Quit
			}
			return a, nil
		}
		if isKey(msg, "ctrl+c") {
			return a, tea.Quit
		}
		if a.browser.capturingInput() {
			break
		}
		if a.helpOpen {
			if isBack(msg) || isKey(msg, "?") {
				a.helpOpen = false
			}
			return a, nil
		}
		if isKey(msg, "?") {
			a.helpOpen = true
			return a, nil
		}
		if isQuit(msg) {
			return a, tea.Quit
		}
	}

	if a.state != stateReady {
		return a, nil
	}
	var cmd tea.Cmd
	a.browser, cmd = a.browser.Update(msg)
	return a, cmd
}

// start builds the store and engine around the loaded records.
func (a *App) start(records []catalog.Record) {
	store := catalog.NewStore(records)
	engine := catalog.NewEngine(store, prefs.NewStore(a.kv, a.logger),
		catalog.WithPageSize(a.config.PageSize),
		catalog.WithLogger(a.logger),
	)
	ApplyTheme(engine.DarkMode())

	delay := time.Duration(a.config.SearchDelayMS) * time.Millisecond
	a.browser = NewBrowserModel(engine, delay, a.config.VimKeys)
	a.browser.setSize(a.width, a.height)
	a.state = stateReady
	a.logger.Info("questions loaded",
		slog.Int("count", store.Len()),
		slog.Int("matching", len(engine.Results())),
	)
}

func (a App) View() string {
	header := RenderCompactHeader()
	if a.height >= bannerMinHeight {
		header = RenderBanner()
	}
	header = centerBlockUniform(header, a.width)

	var content string
	switch a.state {
	case stateLoading:
		content = components.Indent(components.Box(MutedStyle.Render("Loading questions..."), a.width), 1)
	case stateFailed:
		content = components.Indent(components.ErrorBox("Could not load questions", a.errText(), a.width), 1)
	default:
		if a.helpOpen {
			content = a.renderHelp()
		} else {
			content = a.browser.View()
		}
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)
	return fmt.Sprintf("%s\n%s\n\n%s", header, content, hints)
}

func (a App) errText() string {
	if a.err == nil {
		return "unknown error"
	}
	text := a.err.Error()
	var le *api.LoadError
	if errors.As(a.err, &le) && le.Status != 0 {
		text += fmt.Sprintf("\n\nstatus: %d", le.Status)
	}
	return text
}

func (a App) statusHints() []string {
	switch {
	case a.state != stateReady:
		return []string{components.Hint("q", "Quit")}
	case a.helpOpen:
		return []string{components.Hint("esc", "Close help")}
	}
	return a.browser.hints()
}

var helpRows = [][2]string{
	{"/", "Search (applies after a short pause, enter applies now)"},
	{"t / T", "Next / previous topic"},
	{"s / S", "Next / previous subtopic"},
	{"d", "Next difficulty"},
	{"g", "Tag picker (space toggles)"},
	{"f", "Star the selected question"},
	{"F", "Show starred questions only"},
	{"enter", "Show or hide the solution"},
	{"pgup / pgdown", "Scroll the solution"},
	{"m", "Load more"},
	{"r", "Random question"},
	{"c", "Clear filters"},
	{"D", "Toggle dark mode"},
	{"q", "Quit"},
}

func (a App) renderHelp() string {
	lines := make([]string, 0, len(helpRows)+2)
	lines = append(lines, MutedStyle.Render("esc to close"), "")
	for _, row := range helpRows {
		lines = append(lines, "  "+components.InfoRow(row[0], row[1]))
	}
	return components.Indent(components.TitledBox("Help", strings.Join(lines, "\n"), a.width), 1)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
