// ABOUTME: Text-input forms for creating briefs and adding collaborators
// ABOUTME: Tab cycles fields, Enter submits, Esc cancels
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) renderNewBriefView() string {
	return m.renderForm("NEW BRIEF")
}

func (m Model) renderAddCollaboratorView() string {
	return m.renderForm("ADD COLLABORATOR")
}

func (m Model) renderForm(title string) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(title))
	s.WriteString("\n\n")

	for i, input := range m.formInputs {
		if i == m.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}
	s.WriteString(m.renderFormHelp())

	return s.String()
}

func (m Model) renderFormHelp() string {
	help := []string{
		"Tab: Next field",
		"Enter: Save",
		"Esc: Cancel",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewLibrary
		m.status = ""
		return m, nil
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewNewBrief:
		title := m.formInputs[0].Value()
		campaign := m.formInputs[1].Value()
		if _, ok := m.store.CreateBrief(title, campaign); !ok {
			m.status = "a brief needs a title"
			return m, nil
		}
		m.viewMode = ViewBrief
		m.focusIndex = 0
		m.status = ""
	case ViewAddCollaborator:
		state := m.store.State()
		name := m.formInputs[0].Value()
		email := m.formInputs[1].Value()
		if _, ok := m.store.AddCollaborator(state.ActiveBriefID, name, email); !ok {
			m.status = "name and email are both required"
			return m, nil
		}
		m.viewMode = ViewBrief
		m.focusIndex = 0
		m.status = ""
	}
	return m, nil
}

func (m *Model) initBriefForm() {
	inputs := make([]textinput.Model, 2)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "Title"
	inputs[0].CharLimit = 100

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "Campaign (optional)"
	inputs[1].CharLimit = 100

	m.formInputs = inputs
	m.focusIndex = 0
	m.status = ""
	m.updateFormFocus()
}

func (m *Model) initCollaboratorForm() {
	inputs := make([]textinput.Model, 2)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "Name"
	inputs[0].CharLimit = 100

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "Email"
	inputs[1].CharLimit = 100

	m.formInputs = inputs
	m.focusIndex = 0
	m.status = ""
	m.updateFormFocus()
}

func (m *Model) updateFormFocus() {
	for i := range m.formInputs {
		if i == m.focusIndex {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}
