// ABOUTME: Interactive TUI for browsing nearest neighbors in the vector table.
// ABOUTME: Textinput for the query word, viewport listing matches ranked by cosine similarity.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/glovebox/internal/embeddings"
)

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ExploreModel is the bubbletea model for the neighbor browser.
type ExploreModel struct {
	table     *embeddings.Table
	input     textinput.Model
	viewport  viewport.Model
	results   []embeddings.SearchResult
	limit     int
	cursor    int
	status    string
	lastQuery string
	ready     bool
}

// NewExploreModel creates an explore model over the given table. limit caps
// the number of neighbors shown per query.
func NewExploreModel(table *embeddings.Table, limit int) ExploreModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type a word and press Enter"
	ti.Focus()

	if limit <= 0 {
		limit = 10
	}

	return ExploreModel{
		table:    table,
		input:    ti,
		viewport: viewport.New(0, 0),
		limit:    limit,
		status:   fmt.Sprintf("%d vectors loaded (dimension %d)", table.Len(), table.Dimension()),
	}
}

// Init implements tea.Model.
func (m ExploreModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header, spacer, query box, status
		vh := msg.Height - reserved - rh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = msg.Width
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderResults())
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			return m, tea.Quit
		}

		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			results, err := m.table.Similar(query, m.limit)
			if err != nil {
				m.status = "Error: " + err.Error()
				m.results = nil
			} else {
				m.status = fmt.Sprintf("Nearest to %q", query)
				m.results = results
				m.cursor = 0
				m.lastQuery = query
			}
			m.viewport.SetContent(m.renderResults())
			return m, nil

		case "down":
			if len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}

		case "up":
			if len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ExploreModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(brandStyle.Render("   GLOVEBOX"))
	b.WriteString(titleStyle.Render(" - Explore"))
	b.WriteString("\n\n")
	b.WriteString(resultBoxStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(queryBoxStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status + "  (enter: search, up/down: select, esc: quit)"))
	return b.String()
}

// renderResults renders the ranked neighbor list with the selected row's
// vector expanded underneath.
func (m ExploreModel) renderResults() string {
	if len(m.results) == 0 {
		return "No results yet."
	}

	var b strings.Builder
	for i, r := range m.results {
		line := fmt.Sprintf("%2d. %-24s %.4f", i+1, r.Word, r.Score)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if vec, ok := m.table.Lookup(m.results[m.cursor].Word); ok {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("vector: " + vectorHead(vec, 6)))
	}

	return b.String()
}

// vectorHead renders the first n components of a vector, with an ellipsis
// when truncated.
func vectorHead(vec []float64, n int) string {
	parts := make([]string, 0, n+1)
	for i, v := range vec {
		if i >= n {
			parts = append(parts, "…")
			break
		}
		parts = append(parts, fmt.Sprintf("%.4f", v))
	}
	return strings.Join(parts, " ")
}
