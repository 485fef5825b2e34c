package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/qbank/internal/catalog"
	"github.com/gravitrone/qbank/internal/ui/components"
)

const (
	youTubeEmbedBase = "https://www.youtube.com/embed/"
	maxPanelHeight   = 12
)

// solutionPanel shows one record's solution in a scrollable viewport.
// Only one panel is open at a time.
type solutionPanel struct {
	record   *catalog.Record
	viewport viewport.Model
}

func newSolutionPanel() solutionPanel {
	return solutionPanel{viewport: viewport.New(0, 0)}
}

func (p solutionPanel) isOpen() bool {
	return p.record != nil
}

func (p solutionPanel) openID() string {
	if p.record == nil {
		return ""
	}
	return p.record.ID
}

func (p *solutionPanel) open(rec catalog.Record, width, height int) {
	p.record = &rec
	p.resize(width, height)
	p.viewport.GotoTop()
}

func (p *solutionPanel) close() {
	p.record = nil
	p.viewport.SetContent("")
}

// resize fits the viewport to the terminal and re-renders the content.
func (p *solutionPanel) resize(width, height int) {
	w := components.BoxContentWidth(width)
	if w <= 0 {
		w = 60
	}
	h := height / 3
	if h < 4 {
		h = 4
	}
	if h > maxPanelHeight {
		h = maxPanelHeight
	}
	p.viewport.Width = w
	p.viewport.Height = h
	if p.record != nil {
		p.viewport.SetContent(renderSolution(*p.record, w))
	}
}

func (p *solutionPanel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p solutionPanel) view(width int) string {
	if p.record == nil {
		return ""
	}
	return components.ActiveTitledBox("Solution "+components.SanitizeOneLine(p.record.ID), p.viewport.View(), width)
}

// renderSolution lays out the question, solution text, images and video link.
func renderSolution(rec catalog.Record, width int) string {
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Question"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(NormalStyle.Render(components.SanitizeText(rec.QuestionText))))
	for _, img := range rec.QuestionImages {
		b.WriteString("\n")
		b.WriteString(components.InfoRow("Image", img))
	}

	b.WriteString("\n\n")
	b.WriteString(HeaderStyle.Render("Solution"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(NormalStyle.Render(components.SanitizeText(rec.SolutionText))))
	for _, img := range rec.SolutionImages {
		b.WriteString("\n")
		b.WriteString(components.InfoRow("Image", img))
	}

	if video := videoLink(rec); video != "" {
		b.WriteString("\n\n")
		b.WriteString(components.InfoRow("Video", video))
	}
	return b.String()
}

func videoLink(rec catalog.Record) string {
	if id := rec.YouTubeID(); id != "" {
		return youTubeEmbedBase + id
	}
	return strings.TrimSpace(rec.SolutionVideoURL)
}
