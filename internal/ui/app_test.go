package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/qbank/internal/api"
	"github.com/gravitrone/qbank/internal/catalog"
	"github.com/gravitrone/qbank/internal/config"
	"github.com/gravitrone/qbank/internal/prefs"
	"github.com/gravitrone/qbank/internal/ui/components"
)

type stubSource struct {
	records []catalog.Record
	err     error
}

func (s stubSource) Load(context.Context) ([]catalog.Record, error) {
	return s.records, s.err
}

func loadedApp(t *testing.T, kv prefs.KV) App {
	t.Helper()
	restorePalette(t)
	app := NewApp(stubSource{records: questionRecords()}, kv, &config.Config{PageSize: 2}, nil)
	model, _ := app.Update(app.Init()())
	return model.(App)
}

func sendKeys(a App, keys ...string) (App, tea.Cmd) {
	var cmd tea.Cmd
	var model tea.Model = a
	for _, k := range keys {
		model, cmd = model.Update(key(k))
	}
	return model.(App), cmd
}

func TestAppLoadsRecordsIntoBrowser(t *testing.T) {
	app := loadedApp(t, prefs.NewMemoryKV())

	assert.Equal(t, stateReady, app.state)
	assert.Equal(t, []string{"1", "2"}, app.browser.list.Items)
	view := components.SanitizeText(app.View())
	assert.Contains(t, view, "Questions")
	assert.Contains(t, view, "Showing 2 of 4")
}

func TestAppLoadingStateOnlyQuits(t *testing.T) {
	app := NewApp(stubSource{}, nil, nil, nil)
	assert.Contains(t, components.SanitizeText(app.View()), "Loading questions...")

	updated, cmd := sendKeys(app, "r")
	assert.Nil(t, cmd)
	assert.Equal(t, stateLoading, updated.state)

	_, cmd = sendKeys(app, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppLoadFailureShowsErrorBox(t *testing.T) {
	loadErr := &api.LoadError{Source: "https://example.test/q.json", Status: 404, Err: errors.New("HTTP 404")}
	app := NewApp(stubSource{err: loadErr}, nil, nil, nil)
	model, _ := app.Update(app.Init()())
	app = model.(App)

	assert.Equal(t, stateFailed, app.state)
	view := components.SanitizeText(app.View())
	assert.Contains(t, view, "Could not load questions")
	assert.Contains(t, view, "status: 404")
	assert.NotContains(t, view, emptyResultsText)

	updated, cmd := sendKeys(app, "r")
	assert.Nil(t, cmd)
	assert.Equal(t, stateFailed, updated.state)

	_, cmd = sendKeys(app, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppWithoutSourceFails(t *testing.T) {
	app := NewApp(nil, nil, nil, nil)
	msg := app.Init()()

	failed, ok := msg.(loadFailedMsg)
	require.True(t, ok)
	assert.Contains(t, failed.err.Error(), "no data source configured")
}

func TestAppRestoresPersistedPreferences(t *testing.T) {
	kv := prefs.NewMemoryKV()
	require.NoError(t, prefs.NewStore(kv, nil).Save(prefs.Snapshot{
		Topic:      "Geometry",
		Subtopic:   "Circles",
		Difficulty: catalog.All,
		Tags:       []string{},
		Favorites:  []string{"3"},
		DarkMode:   true,
	}))

	app := loadedApp(t, kv)
	state := app.browser.engine.State()
	assert.Equal(t, "Geometry", state.Topic)
	assert.Equal(t, "Circles", state.Subtopic)
	assert.Equal(t, []string{"3"}, app.browser.list.Items)
	assert.True(t, app.browser.engine.IsFavorite("3"))
	assert.Equal(t, components.DarkPalette, components.CurrentPalette())
}

func TestAppSearchCapturesQuitKey(t *testing.T) {
	app := loadedApp(t, prefs.NewMemoryKV())

	app, _ = sendKeys(app, "/", "q")
	assert.Equal(t, "q", app.browser.search.input.Value())
	assert.Equal(t, stateReady, app.state)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppHelpToggle(t *testing.T) {
	app := loadedApp(t, prefs.NewMemoryKV())

	app, _ = sendKeys(app, "?")
	assert.True(t, app.helpOpen)
	assert.Contains(t, components.SanitizeText(app.View()), "Tag picker")

	// browser keys are ignored while help is open
	app, _ = sendKeys(app, "t")
	assert.Equal(t, catalog.All, app.browser.engine.State().Topic)

	app, _ = sendKeys(app, "esc")
	assert.False(t, app.helpOpen)
}

func TestAppWindowSizeReachesBrowser(t *testing.T) {
	app := loadedApp(t, prefs.NewMemoryKV())

	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app = model.(App)
	assert.Equal(t, 120, app.browser.width)
	assert.Equal(t, 16, app.browser.list.PageSize)

	view := components.SanitizeText(app.View())
	assert.Contains(t, view, "Question Bank Browser")
}

func TestAppBrowserKeysFlowThrough(t *testing.T) {
	app := loadedApp(t, prefs.NewMemoryKV())

	app, _ = sendKeys(app, "t", "m")
	assert.Equal(t, "Algebra", app.browser.engine.State().Topic)
	assert.Equal(t, "All matching questions are shown.", app.browser.toast)
}

func TestCenterBlockUniformPadsShortLines(t *testing.T) {
	out := centerBlockUniform("hi\nworld", 11)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "   "))
	assert.True(t, strings.HasPrefix(lines[1], "   "))
	assert.Equal(t, "0123456789", centerBlockUniform("0123456789", 5))
	assert.Equal(t, "x", centerBlockUniform("x", 0))
}
