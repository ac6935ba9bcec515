package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ringboard/internal/registry"
	"github.com/vovakirdan/ringboard/internal/storage"
)

const maxRuns = 100

// RunLister is the part of storage.Store the runs screen reads from.
type RunLister interface {
	BestRuns(layoutID string, limit int) ([]storage.RunEntry, error)
}

// RunsModel is the Bubble Tea model for the run history screen.
type RunsModel struct {
	layouts  []registry.LayoutInfo
	cursor   int
	store    RunLister
	runs     []storage.RunEntry
	loadErr  error
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunsModel creates a runs screen over every registered layout,
// starting on startID when it is registered.
func NewRunsModel(store RunLister, startID string, width, height int) RunsModel {
	layouts := registry.List()

	m := RunsModel{
		layouts: layouts,
		store:   store,
		keys:    DefaultRunsKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	for i, l := range layouts {
		if l.ID == startID {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	if len(m.layouts) > 0 {
		m.loadRuns(m.layouts[m.cursor].ID)
	}
	return m
}

func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Turns", Width: 6},
		{Title: "Steps", Width: 6},
		{Title: "Result", Width: 16},
		{Title: "Seed", Width: 12},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *RunsModel) loadRuns(layoutID string) {
	m.runs, m.loadErr = nil, nil
	if m.store != nil {
		m.runs, m.loadErr = m.store.BestRuns(layoutID, maxRuns)
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

func runRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d", r.Steps),
			runResult(r),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func runResult(r storage.RunEntry) string {
	if r.Throne {
		return "throne"
	}
	return fmt.Sprintf("%s tile %d", r.FinalRing, r.FinalTile)
}

// Init implements tea.Model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs screen.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLayout):
			if len(m.layouts) > 0 {
				m.cursor = (m.cursor + 1) % len(m.layouts)
				m.loadRuns(m.layouts[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLayout):
			if len(m.layouts) > 0 {
				m.cursor = (m.cursor - 1 + len(m.layouts)) % len(m.layouts)
				m.loadRuns(m.layouts[m.cursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs screen.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "BEST RUNS"
	if len(m.layouts) > 0 {
		title = fmt.Sprintf("BEST RUNS - %s", m.layouts[m.cursor].Title)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RunsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nReach the throne to set a record!")
	}
	return m.table.View()
}

// Runs returns the rows currently shown.
func (m RunsModel) Runs() []storage.RunEntry {
	return m.runs
}

// LayoutID returns the id of the layout being shown, or "" when none is registered.
func (m RunsModel) LayoutID() string {
	if len(m.layouts) == 0 {
		return ""
	}
	return m.layouts[m.cursor].ID
}

// RunRuns runs the run history screen.
func RunRuns(store RunLister, startID string, width, height int) error {
	p := tea.NewProgram(NewRunsModel(store, startID, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
