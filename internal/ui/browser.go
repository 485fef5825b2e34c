package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/qbank/internal/catalog"
	"github.com/gravitrone/qbank/internal/ui/components"
)

const (
	emptyResultsText = "No questions match your filters."
	minListRows      = 4
)

// resultFeed mirrors the engine's latest events.
type resultFeed struct {
	visible      []catalog.Record
	hasMore      bool
	total        int
	page         int
	lastFavorite *catalog.FavoriteEvent
}

// tagPicker is the checklist overlay opened with g.
type tagPicker struct {
	tags []string
	list *components.List
}

// BrowserModel is the question list with its filter controls.
type BrowserModel struct {
	engine  *catalog.Engine
	feed    *resultFeed
	list    *components.List
	search  searchBar
	panel   solutionPanel
	picker  *tagPicker
	vimKeys bool
	toast   string
	width   int
	height  int
}

// NewBrowserModel wires a browser to engine and seeds it with the current results.
func NewBrowserModel(engine *catalog.Engine, searchDelay time.Duration, vimKeys bool) BrowserModel {
	feed := &resultFeed{
		visible: engine.Visible(),
		hasMore: engine.HasMore(),
		total:   len(engine.Results()),
		page:    engine.Page(),
	}
	engine.Subscribe(catalog.ListenerFuncs{
		OnResults: func(ev catalog.ResultsEvent) {
			feed.visible = ev.Visible
			feed.hasMore = ev.HasMore
			feed.total = ev.Total
			feed.page = ev.Page
		},
		OnFavorite: func(ev catalog.FavoriteEvent) {
			feed.lastFavorite = &ev
		},
	})

	m := BrowserModel{
		engine:  engine,
		feed:    feed,
		list:    components.NewList(catalog.DefaultPageSize),
		search:  newSearchBar(searchDelay),
		panel:   newSolutionPanel(),
		vimKeys: vimKeys,
	}
	m.syncList(true)
	return m
}

// capturingInput reports whether keys should bypass global shortcuts.
func (m BrowserModel) capturingInput() bool {
	return m.search.focused() || m.picker != nil
}

func (m *BrowserModel) setSize(width, height int) {
	m.width = width
	m.height = height
	rows := height - 24
	if m.panel.isOpen() {
		rows -= maxPanelHeight
	}
	if rows < minListRows {
		rows = minListRows
	}
	m.list.PageSize = rows
	m.list.SetCursor(m.list.Cursor)
	m.panel.resize(width, height)
}

func (m BrowserModel) Update(msg tea.Msg) (BrowserModel, tea.Cmd) {
	switch msg := msg.(type) {
	case searchTickMsg:
		if term, ok := m.search.take(msg.ticket); ok {
			m.engine.ApplySearch(term)
			m.syncList(true)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.search.focused() {
		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (BrowserModel, tea.Cmd) {
	if m.picker != nil {
		return m.handlePickerKeys(msg)
	}
	if m.search.focused() {
		return m.handleSearchKeys(msg)
	}

	m.toast = ""
	switch {
	case isDown(msg, m.vimKeys):
		m.list.Down()
	case isUp(msg, m.vimKeys):
		m.list.Up()
	case isScroll(msg):
		if m.panel.isOpen() {
			return m, m.panel.update(msg)
		}
	case isKey(msg, "/"):
		return m, m.search.focus()
	case isKey(msg, "t"):
		m.engine.ApplyTopic(cycle(m.engine.Store().Topics(), m.engine.State().Topic, 1))
		m.syncList(true)
	case isKey(msg, "T"):
		m.engine.ApplyTopic(cycle(m.engine.Store().Topics(), m.engine.State().Topic, -1))
		m.syncList(true)
	case isKey(msg, "s"):
		m.engine.ApplySubtopic(cycle(m.engine.Subtopics(), m.engine.State().Subtopic, 1))
		m.syncList(true)
	case isKey(msg, "S"):
		m.engine.ApplySubtopic(cycle(m.engine.Subtopics(), m.engine.State().Subtopic, -1))
		m.syncList(true)
	case isKey(msg, "d"):
		m.engine.ApplyDifficulty(cycle(m.engine.Store().Difficulties(), m.engine.State().Difficulty, 1))
		m.syncList(true)
	case isKey(msg, "g"):
		m.openTagPicker()
	case isKey(msg, "f"):
		m.toggleFavorite()
	case isKey(msg, "F"):
		m.engine.ToggleFavoritesOnly()
		m.syncList(true)
	case isEnter(msg):
		m.toggleSolution()
	case isKey(msg, "m"):
		if m.engine.AdvancePage() {
			m.syncList(false)
		} else {
			m.toast = "All matching questions are shown."
		}
	case isKey(msg, "r"):
		m.pickRandom()
	case isKey(msg, "c"):
		m.search.reset()
		m.engine.ClearFilters()
		m.syncList(true)
		m.toast = "Filters cleared."
	case isKey(msg, "D"):
		ApplyTheme(m.engine.ToggleDarkMode())
		m.panel.resize(m.width, m.height)
	}
	return m, nil
}

func (m BrowserModel) handleSearchKeys(msg tea.KeyMsg) (BrowserModel, tea.Cmd) {
	switch {
	case isEnter(msg):
		term := m.search.flush()
		m.search.blur()
		m.engine.ApplySearch(term)
		m.syncList(true)
		return m, nil
	case isBack(msg):
		// a pending term still applies when its tick fires
		m.search.blur()
		return m, nil
	}
	return m, m.search.update(msg)
}

func (m BrowserModel) handlePickerKeys(msg tea.KeyMsg) (BrowserModel, tea.Cmd) {
	switch {
	case isBack(msg), isEnter(msg), isKey(msg, "g"):
		m.picker = nil
	case isDown(msg, m.vimKeys):
		m.picker.list.Down()
	case isUp(msg, m.vimKeys):
		m.picker.list.Up()
	case isSpace(msg):
		if tag, ok := m.picker.list.Current(); ok {
			m.engine.ToggleTag(tag)
			m.syncList(true)
		}
	}
	return m, nil
}

func (m *BrowserModel) openTagPicker() {
	tags := m.engine.Store().Tags()
	list := components.NewList(len(tags) + 1)
	list.SetItems(tags)
	m.picker = &tagPicker{tags: tags, list: list}
}

func (m *BrowserModel) toggleFavorite() {
	rec, ok := m.current()
	if !ok {
		return
	}
	m.engine.ToggleFavorite(rec.ID)
	m.syncList(false)
	if ev := m.feed.lastFavorite; ev != nil && ev.ID == rec.ID {
		if ev.On {
			m.toast = fmt.Sprintf("Starred %s.", ev.ID)
		} else {
			m.toast = fmt.Sprintf("Unstarred %s.", ev.ID)
		}
	}
}

func (m *BrowserModel) toggleSolution() {
	rec, ok := m.current()
	if !ok {
		return
	}
	if m.panel.openID() == rec.ID {
		m.panel.close()
	} else {
		m.panel.open(rec, m.width, m.height)
	}
	m.setSize(m.width, m.height)
}

// pickRandom moves the cursor to a random match and opens only its solution.
func (m *BrowserModel) pickRandom() {
	rec, idx, ok := m.engine.PickRandom()
	if !ok {
		m.toast = emptyResultsText
		return
	}
	m.syncList(false)
	m.panel.open(rec, m.width, m.height)
	m.setSize(m.width, m.height)
	m.list.SetCursor(idx)
	m.toast = fmt.Sprintf("Random pick: %s.", rec.ID)
}

// syncList copies the visible slice into the cursor list. A reset moves the
// cursor back to the first card.
func (m *BrowserModel) syncList(reset bool) {
	ids := make([]string, len(m.feed.visible))
	for i, rec := range m.feed.visible {
		ids[i] = rec.ID
	}
	if reset {
		m.list.SetItems(ids)
	} else {
		m.list.ReplaceItems(ids)
	}
	if open := m.panel.openID(); open != "" && !containsID(ids, open) {
		m.panel.close()
	}
}

func (m BrowserModel) current() (catalog.Record, bool) {
	idx := m.list.Selected()
	if idx < 0 || idx >= len(m.feed.visible) {
		return catalog.Record{}, false
	}
	return m.feed.visible[idx], true
}

// cycle returns the option step positions away from current, wrapping.
func cycle(options []string, current string, step int) string {
	if len(options) == 0 {
		return catalog.All
	}
	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	n := len(options)
	return options[((idx+step)%n+n)%n]
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// --- View ---

func (m BrowserModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderFilters())
	b.WriteString("\n")
	b.WriteString(m.search.view(components.BoxContentWidth(m.width)))
	b.WriteString("\n\n")

	switch {
	case m.picker != nil:
		b.WriteString(m.renderTagPicker())
	case m.feed.total == 0:
		b.WriteString(MutedStyle.Render(emptyResultsText))
	default:
		b.WriteString(m.renderTable())
		b.WriteString("\n\n")
		b.WriteString(m.renderFooter())
	}

	if m.toast != "" {
		b.WriteString("\n\n")
		b.WriteString(ToastStyle.Render(m.toast))
	}

	sections := []string{components.Indent(components.TitledBox("Questions", b.String(), m.width), 1)}
	if m.panel.isOpen() {
		sections = append(sections, components.Indent(m.panel.view(m.width), 1))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BrowserModel) renderFilters() string {
	state := m.engine.State()
	favorites := "off"
	if state.FavoritesOnly {
		favorites = "on"
	}
	row := strings.Join([]string{
		components.InfoRow("Topic", state.Topic),
		components.InfoRow("Subtopic", state.Subtopic),
		components.InfoRow("Difficulty", state.Difficulty),
		components.InfoRow("Favorites only", favorites),
	}, "  ")

	tags := MutedStyle.Render("Tags: none")
	if active := state.Tags.Sorted(); len(active) > 0 {
		chips := make([]string, len(active))
		for i, tag := range active {
			chips[i] = TagActiveStyle.Render(components.SanitizeOneLine(tag))
		}
		tags = MutedStyle.Render("Tags:") + strings.Join(chips, " ")
	}
	return row + "\n" + tags
}

func (m BrowserModel) renderTable() string {
	width := components.BoxContentWidth(m.width)
	if width <= 0 {
		width = 74
	}
	state := m.engine.State()
	cols := []components.TableColumn{
		components.MarkerColumn(),
		{Header: "Topic", Width: 20},
		{Header: "Level", Width: 8, Paint: difficultyCell},
		{Header: "Question", Width: 28, Flex: true},
		{Header: "Tags", Width: 12, Paint: activeTagCell},
	}

	visible := m.list.Visible()
	rows := make([][]string, 0, len(visible))
	for i := range visible {
		rec := m.feed.visible[m.list.RelToAbs(i)]
		star := ""
		if m.engine.IsFavorite(rec.ID) {
			star = components.FavoriteMarker
		}
		rows = append(rows, []string{
			star,
			rec.Topic + " › " + rec.Subtopic,
			string(rec.Difficulty),
			rec.QuestionText,
			formatTags(rec.Tags, state.Tags),
		})
	}
	grid := components.Grid{Columns: cols, Rows: rows, Active: m.list.Cursor - m.list.Offset}
	return grid.Render(width)
}

// activeTagCell accents a tags cell that holds an active filter tag.
func activeTagCell(cell string) string {
	if strings.HasPrefix(strings.TrimSpace(cell), "+") || strings.Contains(cell, ", +") {
		return AccentStyle.Render(cell)
	}
	return cell
}

// formatTags lists tags, marking those in the active filter with a leading +.
func formatTags(tags []string, active catalog.TagSet) string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		if active.Has(tag) {
			out[i] = "+" + tag
		} else {
			out[i] = tag
		}
	}
	return strings.Join(out, ", ")
}

func (m BrowserModel) renderFooter() string {
	line := MutedStyle.Render(fmt.Sprintf("Showing %d of %d", len(m.feed.visible), m.feed.total))
	if m.feed.hasMore {
		line += "  " + AccentStyle.Render("m: load more")
	}
	return line
}

func (m BrowserModel) renderTagPicker() string {
	state := m.engine.State()
	options := make([]components.PickerOption, len(m.picker.tags))
	for i, tag := range m.picker.tags {
		options[i] = components.PickerOption{Label: tag, Checked: state.Tags.Has(tag)}
	}
	return components.PickerDialog("Tags", options, m.picker.list.Selected(), m.width)
}

func (m BrowserModel) hints() []string {
	switch {
	case m.picker != nil:
		return []string{
			components.Hint("space", "Toggle"),
			components.Hint("↑/↓", "Move"),
			components.Hint("esc", "Close"),
		}
	case m.search.focused():
		return []string{
			components.Hint("enter", "Apply"),
			components.Hint("esc", "Leave search"),
		}
	}
	hints := []string{
		components.Hint("/", "Search"),
		components.Hint("t/s/d", "Topic/Sub/Level"),
		components.Hint("g", "Tags"),
		components.Hint("f/F", "Star/Starred"),
		components.Hint("enter", "Solution"),
		components.Hint("r", "Random"),
	}
	if m.feed.hasMore {
		hints = append(hints, components.Hint("m", "Load more"))
	}
	return append(hints,
		components.Hint("c", "Clear"),
		components.Hint("D", "Theme"),
		components.Hint("?", "Help"),
		components.Hint("q", "Quit"),
	)
}
