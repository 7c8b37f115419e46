// ABOUTME: Brief detail view plus the library sidebar summary panel
// ABOUTME: Shows the document, hooks, references, reactions, and collaborators
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/harperreed/lens/models"
	"github.com/harperreed/lens/store"
)

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Width(14)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	archivedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)
)

func (m Model) renderBriefView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("BRIEF"))
	s.WriteString("\n\n")

	brief, ok := m.store.ActiveBrief()
	if !ok {
		s.WriteString(dimStyle.Render("No active brief. Press n to create one."))
		s.WriteString("\n\n")
		s.WriteString(m.renderBriefHelp())
		return s.String()
	}

	s.WriteString(m.renderField("Title", brief.Title))
	s.WriteString(m.renderField("Campaign", brief.Campaign))
	if brief.Angle != "" {
		s.WriteString(m.renderField("Angle", brief.Angle))
	}
	s.WriteString(m.renderField("Updated", brief.UpdatedAt.Format("2006-01-02 15:04")))
	if brief.Archived {
		s.WriteString(archivedStyle.Render("ARCHIVED"))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	width := m.width - 4
	if width < 20 {
		width = 20
	}
	s.WriteString(wordwrap.String(brief.Content, width))
	s.WriteString("\n\n")

	s.WriteString(m.renderHooks(brief))
	s.WriteString(m.renderReferences(brief))
	s.WriteString(m.renderReactions(brief))
	s.WriteString(m.renderCollaborators(brief))

	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}
	s.WriteString(m.renderBriefHelp())

	return s.String()
}

func (m Model) renderField(label, value string) string {
	return fieldLabelStyle.Render(label) + fieldValueStyle.Render(value) + "\n"
}

func (m Model) renderHooks(brief models.Brief) string {
	var s strings.Builder
	s.WriteString(sectionStyle.Render(fmt.Sprintf("Hooks (%d)", len(brief.Hooks))))
	s.WriteString("\n")
	if len(brief.Hooks) == 0 {
		s.WriteString(dimStyle.Render("  none snipped yet"))
		s.WriteString("\n")
	}
	for _, h := range brief.Hooks {
		s.WriteString(fmt.Sprintf("  %s  %s\n", h.Timestamp, h.VideoTitle))
	}
	s.WriteString("\n")
	return s.String()
}

func (m Model) renderReferences(brief models.Brief) string {
	var s strings.Builder
	s.WriteString(sectionStyle.Render(fmt.Sprintf("References (%d)", len(brief.ReferenceVideoIDs))))
	s.WriteString("\n")
	state := m.store.State()
	for _, id := range brief.ReferenceVideoIDs {
		if v, ok := store.VideoByID(state, id); ok {
			s.WriteString(fmt.Sprintf("  %s (%s)\n", v.Title, v.Brand))
		}
	}
	s.WriteString("\n")
	return s.String()
}

func (m Model) renderReactions(brief models.Brief) string {
	var s strings.Builder
	s.WriteString(sectionStyle.Render("Reactions"))
	s.WriteString("\n")
	state := m.store.State()
	for _, id := range brief.LikedVideoIDs {
		if v, ok := store.VideoByID(state, id); ok {
			s.WriteString(fmt.Sprintf("  ♥ %s\n", v.Title))
		}
	}
	for _, id := range brief.DislikedVideoIDs {
		if v, ok := store.VideoByID(state, id); ok {
			s.WriteString(fmt.Sprintf("  ✗ %s\n", v.Title))
		}
	}
	s.WriteString("\n")
	return s.String()
}

func (m Model) renderCollaborators(brief models.Brief) string {
	var s strings.Builder
	s.WriteString(sectionStyle.Render(fmt.Sprintf("Collaborators (%d)", len(brief.Collaborators))))
	s.WriteString("\n")
	for i, c := range brief.Collaborators {
		cursor := "  "
		if m.viewMode == ViewBrief && i == m.focusIndex {
			cursor = "> "
		}
		avatar := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Color)).
			Render(c.Initials)
		s.WriteString(fmt.Sprintf("%s%s  %s <%s>\n", cursor, avatar, c.Name, c.Email))
	}
	s.WriteString("\n")
	return s.String()
}

func (m Model) renderBriefHelp() string {
	help := []string{
		"↑/↓: Select person",
		"c: Add person",
		"Backspace: Remove person",
		"x: Archive",
		"X: Unarchive",
		"Tab: Next brief",
		"Esc: Library",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleBriefKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	brief, hasBrief := m.store.ActiveBrief()
	m.status = ""

	switch msg.String() {
	case "esc", "b":
		m.viewMode = ViewLibrary
		m.focusIndex = 0
	case "tab":
		m.cycleActiveBrief()
		m.focusIndex = 0
	case "up", "k":
		if m.focusIndex > 0 {
			m.focusIndex--
		}
	case "down", "j":
		if hasBrief && m.focusIndex < len(brief.Collaborators)-1 {
			m.focusIndex++
		}
	case "c":
		if hasBrief {
			m.initCollaboratorForm()
			m.viewMode = ViewAddCollaborator
		}
	case "backspace":
		if hasBrief && m.focusIndex < len(brief.Collaborators) {
			person := brief.Collaborators[m.focusIndex]
			if person.ID == models.OwnerID {
				m.status = "the owner cannot be removed"
			} else {
				m.store.RemoveCollaborator(brief.ID, person.ID)
				m.focusIndex = 0
			}
		}
	case "x":
		if hasBrief {
			m.store.Dispatch(store.ArchiveBrief{BriefID: brief.ID})
			m.status = fmt.Sprintf("archived %q", brief.Title)
		}
	case "X":
		if hasBrief {
			m.store.Dispatch(store.UnarchiveBrief{BriefID: brief.ID})
		}
	case "n":
		m.initBriefForm()
		m.viewMode = ViewNewBrief
	}

	return m, nil
}

// renderSidebar is the collapsed brief summary shown next to the library.
func (m Model) renderSidebar() string {
	brief, ok := m.store.ActiveBrief()
	if !ok {
		return sidebarStyle.Render(dimStyle.Render("no brief"))
	}

	var s strings.Builder
	s.WriteString(sectionStyle.Render(brief.Title))
	s.WriteString("\n")
	s.WriteString(dimStyle.Render(brief.Campaign))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("hooks  %d\n", len(brief.Hooks)))
	s.WriteString(fmt.Sprintf("refs   %d\n", len(brief.ReferenceVideoIDs)))
	s.WriteString(fmt.Sprintf("♥ %d  ✗ %d\n", len(brief.LikedVideoIDs), len(brief.DislikedVideoIDs)))

	var avatars []string
	for _, c := range brief.Collaborators {
		avatars = append(avatars, lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Color)).
			Render(c.Initials))
	}
	s.WriteString(strings.Join(avatars, " "))

	return sidebarStyle.Render(s.String())
}
