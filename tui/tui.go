// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Full-screen workbench over the video library and creative briefs
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/lens/search"
	"github.com/harperreed/lens/store"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewLibrary ViewMode = iota
	ViewBrief
	ViewNewBrief
	ViewAddCollaborator
)

// searchCompletedMsg wakes the update loop after the search orchestrator
// publishes results into the store.
type searchCompletedMsg struct{}

// Model is the main bubbletea model
type Model struct {
	store  *store.Store
	search *search.Orchestrator

	viewMode ViewMode

	// Library view state
	selectedRow  int
	searchInput  textinput.Model
	searchActive bool
	spin         spinner.Model

	// Form state (new brief, add collaborator)
	formInputs []textinput.Model
	focusIndex int

	// UI state
	width  int
	height int
	status string
}

// NewModel creates a new TUI model over the store and search orchestrator.
func NewModel(st *store.Store, orch *search.Orchestrator) Model {
	input := textinput.New()
	input.Placeholder = "Search videos..."
	input.CharLimit = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

	return Model{
		store:       st,
		search:      orch,
		viewMode:    ViewLibrary,
		searchInput: input,
		spin:        sp,
		width:       80,
		height:      24,
	}
}

func (m Model) Init() tea.Cmd {
	if m.store.State().Searching {
		return m.spin.Tick
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case searchCompletedMsg:
		m.selectedRow = 0
		return m, nil
	case spinner.TickMsg:
		if !m.store.State().Searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewLibrary:
		return m.renderLibraryView()
	case ViewBrief:
		return m.renderBriefView()
	case ViewNewBrief:
		return m.renderNewBriefView()
	case ViewAddCollaborator:
		return m.renderAddCollaboratorView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search box swallows everything except its own exits.
	if m.viewMode == ViewLibrary && m.searchActive {
		return m.handleSearchKeys(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		// Forms need the letter; everywhere else it quits.
		if m.viewMode == ViewLibrary || m.viewMode == ViewBrief {
			return m, tea.Quit
		}
	}

	switch m.viewMode {
	case ViewLibrary:
		return m.handleLibraryKeys(msg)
	case ViewBrief:
		return m.handleBriefKeys(msg)
	case ViewNewBrief, ViewAddCollaborator:
		return m.handleFormKeys(msg)
	}

	return m, nil
}

// Run starts the full-screen workbench. An initial query kicks off a search
// before the first frame renders; searchDelay <= 0 keeps the default.
func Run(st *store.Store, initialQuery string, searchDelay time.Duration) error {
	var p *tea.Program
	opts := []search.Option{search.WithNotify(func() {
		if p != nil {
			p.Send(searchCompletedMsg{})
		}
	})}
	if searchDelay > 0 {
		opts = append(opts, search.WithDelay(searchDelay))
	}
	orch := search.New(st, opts...)

	m := NewModel(st, orch)
	if initialQuery != "" {
		orch.Search(initialQuery)
		m.searchInput.SetValue(initialQuery)
	}

	p = tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			MarginLeft(2)
)
