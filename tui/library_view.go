// ABOUTME: Library view rendering the searchable video grid
// ABOUTME: Reaction and reference markers are drawn relative to the active brief
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/lens/models"
	"github.com/harperreed/lens/store"
)

func (m Model) renderLibraryView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("LENS"))
	s.WriteString("\n\n")

	s.WriteString(m.renderSearchBar())
	s.WriteString("\n\n")

	state := m.store.State()
	if state.SearchQuery == "" && !m.searchActive {
		s.WriteString(m.renderTrending())
		s.WriteString("\n\n")
	}

	body := m.renderVideoTable()
	if state.SidebarOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderSidebar())
	}
	s.WriteString(body)
	s.WriteString("\n")

	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString(m.renderLibraryHelp())

	return s.String()
}

func (m Model) renderSearchBar() string {
	state := m.store.State()
	if m.searchActive {
		return m.searchInput.View()
	}
	if state.Searching {
		return fmt.Sprintf("%s searching %q...", m.spin.View(), state.SearchQuery)
	}
	if state.SearchQuery != "" {
		return fmt.Sprintf("results for %q (%d)", state.SearchQuery, len(state.SearchResults))
	}
	return dimStyle.Render("press / to search")
}

func (m Model) renderTrending() string {
	var s strings.Builder
	s.WriteString(sectionStyle.Render("Trending"))
	s.WriteString("\n")
	s.WriteString(dimStyle.Render(strings.Join(models.TrendingSearches, "  ·  ")))
	return s.String()
}

// visibleVideos is the grid contents: search results when a query has
// resolved, the full catalog otherwise.
func (m Model) visibleVideos() []models.VideoItem {
	state := m.store.State()
	if state.SearchQuery != "" && state.SearchResults != nil {
		return state.SearchResults
	}
	return state.Videos
}

func (m Model) renderVideoTable() string {
	state := m.store.State()
	videos := m.visibleVideos()
	brief, hasBrief := m.store.ActiveBrief()

	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "Title", Width: 34},
		{Title: "Brand", Width: 16},
		{Title: "Platform", Width: 9},
		{Title: "Tier", Width: 6},
		{Title: "Len", Width: 5},
	}

	var rows []table.Row
	for _, v := range videos {
		marker := " "
		if hasBrief {
			switch {
			case brief.Liked(v.ID):
				marker = "♥"
			case brief.Disliked(v.ID):
				marker = "✗"
			}
			if brief.HasReference(v.ID) {
				marker += "●"
			}
		}
		rows = append(rows, table.Row{
			marker,
			v.Title,
			v.Brand,
			string(v.Platform),
			string(v.PerformanceTier),
			formatDuration(v.Duration),
		})
	}

	height := m.height - 12
	if state.SearchQuery == "" && !m.searchActive {
		height -= 3 // trending block
	}
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderLibraryHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Enter: Open",
		"s: Snip hook",
		"l/d/u: React",
		"r: Reference",
		"/: Search",
		"b: Brief",
		"o: Sidebar",
		"n: New brief",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	videos := m.visibleVideos()
	m.status = ""

	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < len(videos)-1 {
			m.selectedRow++
		}
	case "enter":
		if v, ok := m.selectedVideo(); ok {
			m.store.Dispatch(store.SetActiveVideo{VideoID: v.ID})
			m.status = fmt.Sprintf("now playing %q", v.Title)
		}
	case "s":
		if v, ok := m.selectedVideo(); ok {
			if hook, snipped := m.store.SnipHook(v.ID); snipped {
				m.status = fmt.Sprintf("snipped %s into the brief", hook.Timestamp)
			}
		}
	case "l":
		if v, ok := m.selectedVideo(); ok {
			m.dispatchToActiveBrief(func(briefID string) store.Action {
				return store.LikeVideo{BriefID: briefID, VideoID: v.ID}
			})
		}
	case "d":
		if v, ok := m.selectedVideo(); ok {
			m.dispatchToActiveBrief(func(briefID string) store.Action {
				return store.DislikeVideo{BriefID: briefID, VideoID: v.ID}
			})
		}
	case "u":
		if v, ok := m.selectedVideo(); ok {
			m.dispatchToActiveBrief(func(briefID string) store.Action {
				return store.UnlikeVideo{BriefID: briefID, VideoID: v.ID}
			})
		}
	case "r":
		if v, ok := m.selectedVideo(); ok {
			m.dispatchToActiveBrief(func(briefID string) store.Action {
				return store.AddReferenceVideo{BriefID: briefID, VideoID: v.ID}
			})
		}
	case "R":
		if v, ok := m.selectedVideo(); ok {
			m.dispatchToActiveBrief(func(briefID string) store.Action {
				return store.RemoveReferenceVideo{BriefID: briefID, VideoID: v.ID}
			})
		}
	case "/":
		m.searchActive = true
		m.searchInput.Focus()
		return m, nil
	case "esc":
		if m.store.State().SearchQuery != "" {
			m.search.Clear()
			m.searchInput.SetValue("")
			m.selectedRow = 0
		}
	case "tab":
		m.cycleActiveBrief()
		m.selectedRow = 0
	case "b":
		m.viewMode = ViewBrief
	case "o":
		m.store.Dispatch(store.ToggleSidebar{})
	case "n":
		m.initBriefForm()
		m.viewMode = ViewNewBrief
	}

	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			m.search.Clear()
			return *m, nil
		}
		m.search.Search(query)
		return *m, m.spin.Tick
	case "esc":
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue(m.store.State().SearchQuery)
		return *m, nil
	case "ctrl+c":
		return *m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return *m, cmd
}

func (m Model) selectedVideo() (models.VideoItem, bool) {
	videos := m.visibleVideos()
	if m.selectedRow >= len(videos) {
		return models.VideoItem{}, false
	}
	return videos[m.selectedRow], true
}

func (m *Model) dispatchToActiveBrief(build func(briefID string) store.Action) {
	state := m.store.State()
	if state.ActiveBriefID == "" {
		m.status = "no active brief"
		return
	}
	m.store.Dispatch(build(state.ActiveBriefID))
}

// cycleActiveBrief moves activity to the next non-archived brief in list order.
func (m *Model) cycleActiveBrief() {
	state := m.store.State()
	if len(state.Briefs) == 0 {
		return
	}

	current := -1
	for i, b := range state.Briefs {
		if b.ID == state.ActiveBriefID {
			current = i
			break
		}
	}
	for step := 1; step <= len(state.Briefs); step++ {
		next := state.Briefs[(current+step)%len(state.Briefs)]
		if !next.Archived {
			m.store.Dispatch(store.SetActiveBrief{BriefID: next.ID})
			return
		}
	}
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
