package browse

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ChenyuHeee/AIOPS/internal/scoring"
)

// Model is the interactive per-sample browser.
type Model struct {
	state   State
	table   table.Model
	noColor bool
}

// Options configures the browser.
type Options struct {
	Title   string
	Filter  Filter
	NoColor bool
}

// NewModel builds a browser over a scoring result.
func NewModel(result scoring.Result, opts Options) Model {
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	m := Model{
		state:   State{Title: opts.Title, Result: result, Filter: opts.Filter},
		table:   t,
		noColor: opts.NoColor,
	}
	return m.refresh()
}

// State returns the current browser state.
func (m Model) State() State {
	return m.state
}

// Init has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles resizing, filter cycling, and quitting; other keys move the
// table cursor.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-5, 1))
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "f":
			m.state.Filter = m.state.Filter.Next()
			return m.refresh(), nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m Model) View() string {
	title := m.state.Title
	if title == "" {
		title = "Submission report"
	}
	visible := len(m.table.Rows())
	header := stylize(title, m.noColor, lipgloss.Color("33"))
	metrics := stylize(formatMetrics(m.state.Result.Metrics), m.noColor, lipgloss.Color("242"))
	filter := fmt.Sprintf("Showing %s (%d of %d)", m.state.Filter, visible, len(m.state.Result.Samples))
	footer := stylize("up/down move  f filter  q quit", m.noColor, lipgloss.Color("244"))
	return lipgloss.JoinVertical(lipgloss.Left, header, metrics, filter, m.table.View(), footer)
}

// refresh rebuilds table rows for the current filter.
func (m Model) refresh() Model {
	m.table.SetRows(rowsForSamples(m.state.Visible(), m.noColor))
	m.table.GotoTop()
	return m
}

// Run starts the browser on the given terminal streams and blocks until the
// user quits.
func Run(result scoring.Result, opts Options, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(
		NewModel(result, opts),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
