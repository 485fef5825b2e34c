package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/qbank/internal/catalog"
)

// searchTickMsg fires when the quiet period of one keystroke has elapsed.
type searchTickMsg struct {
	ticket catalog.Ticket
}

// searchBar is the free-text input. Keystrokes are applied to the engine
// only after the input has been quiet for delay.
type searchBar struct {
	input    textinput.Model
	debounce *catalog.Debouncer[string]
	delay    time.Duration
}

func newSearchBar(delay time.Duration) searchBar {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search questions, solutions and tags"
	ti.CharLimit = 256
	ti.Width = 48
	return searchBar{
		input:    ti,
		debounce: &catalog.Debouncer[string]{},
		delay:    delay,
	}
}

func (s searchBar) focused() bool {
	return s.input.Focused()
}

func (s *searchBar) focus() tea.Cmd {
	return s.input.Focus()
}

func (s *searchBar) blur() {
	s.input.Blur()
}

// update feeds a key to the input and schedules an apply when the text changed.
func (s *searchBar) update(msg tea.KeyMsg) tea.Cmd {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, s.schedule(s.input.Value()))
}

func (s *searchBar) schedule(term string) tea.Cmd {
	ticket := s.debounce.Push(term)
	if s.delay <= 0 {
		return func() tea.Msg { return searchTickMsg{ticket: ticket} }
	}
	return tea.Tick(s.delay, func(time.Time) tea.Msg {
		return searchTickMsg{ticket: ticket}
	})
}

// take returns the term for ticket unless a newer keystroke superseded it.
func (s *searchBar) take(ticket catalog.Ticket) (string, bool) {
	return s.debounce.Take(ticket)
}

// flush drops the pending apply and returns the current text.
func (s *searchBar) flush() string {
	s.debounce.Cancel()
	return s.input.Value()
}

func (s *searchBar) reset() {
	s.debounce.Cancel()
	s.input.SetValue("")
}

func (s searchBar) view(width int) string {
	if width > 8 {
		s.input.Width = width - 4
	}
	if !s.focused() && s.input.Value() == "" {
		return MutedStyle.Render("/ to search")
	}
	return s.input.View()
}
