package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/mikado/pkg/outline"
)

// maxReadyRows caps the "next up" list so the view fits small terminals.
const maxReadyRows = 8

// changedMsg is sent when the watcher sees a save, before the re-render.
type changedMsg struct{}

// =============================================================================
// watchModel - Live status of a watched outline
// =============================================================================

// watchModel is the bubbletea model behind "watch --tui".
type watchModel struct {
	input     string
	last      renderMsg // most recent successful render
	lastErr   error     // error of the most recent render, nil on success
	errAt     time.Time
	renders   int
	rendering bool
}

func newWatchModel(input string) watchModel {
	return watchModel{input: input, rendering: true}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case changedMsg:
		m.rendering = true
	case renderMsg:
		m.rendering = false
		m.renders++
		if msg.err != nil {
			m.lastErr = msg.err
			m.errAt = msg.at
			return m, nil
		}
		m.lastErr = nil
		m.last = msg
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("mikado watch"))
	b.WriteString("  ")
	b.WriteString(StyleValue.Render(m.input))
	b.WriteString("\n\n")

	switch {
	case m.rendering && m.renders == 0:
		b.WriteString(StyleDim.Render("rendering..."))
		b.WriteString("\n")
	case m.last.result != nil:
		b.WriteString(m.statsTable())
		b.WriteString("\n")
		b.WriteString(m.readyList())
		b.WriteString(m.warnings())
		b.WriteString(StyleDim.Render(fmt.Sprintf("%s %s at %s",
			iconArrow, m.last.output, m.last.at.Format("15:04:05"))))
		b.WriteString("\n")
	}

	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(StyleError.Render(fmt.Sprintf("%s %s", iconError, describeError(m.lastErr))))
		b.WriteString("\n")
		b.WriteString(StyleDim.Render(fmt.Sprintf("  at %s, showing last good render", m.errAt.Format("15:04:05"))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m watchModel) statsTable() string {
	s := m.last.result.Stats
	cache := iconFresh
	if m.last.result.CacheHit {
		cache = iconCached
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Tasks", "Done", "Goals", "Edges", "Render").
		Row(
			fmt.Sprint(s.Tasks),
			fmt.Sprint(s.Done),
			fmt.Sprint(s.Goals),
			fmt.Sprint(s.Edges),
			cache,
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 1 {
				return StyleSuccess.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})
	return t.Render()
}

// readyList shows the open tasks whose prerequisites are all done.
func (m watchModel) readyList() string {
	g := m.last.result.Graph
	ready := g.Ready()
	if len(ready) == 0 {
		if g.NodeCount() > 0 {
			return StyleSuccess.Render(iconSuccess+" all tasks done") + "\n\n"
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleDim.Render("next up"))
	b.WriteString("\n")
	for i, n := range ready {
		if i == maxReadyRows {
			b.WriteString(StyleDim.Render(fmt.Sprintf("  … %d more", len(ready)-maxReadyRows)))
			b.WriteString("\n")
			break
		}
		b.WriteString("  " + StyleValue.Render(n.ID) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m watchModel) warnings() string {
	var ws []outline.Warning
	if m.last.result.Outline != nil {
		ws = m.last.result.Outline.Warnings
	}
	if len(ws) == 0 {
		return ""
	}

	var b strings.Builder
	for _, w := range ws {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("%s line %d: %s", iconWarning, w.Line, w.Message)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
