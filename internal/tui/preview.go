// Package tui provides Bubble Tea models for terminal UI interactions.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SendPreviewModel is a privacy confirmation model shown before terminal
// context is sent to the AI provider. It displays what will be sent and
// waits for a yes/no keypress.
type SendPreviewModel struct {
	Provider    string
	Model       string
	RedactLevel string
	Context     string
	confirmed   bool
	canceled    bool

	headerStyle  lipgloss.Style
	labelStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	warningStyle lipgloss.Style
	helpStyle    lipgloss.Style
}

// NewSendPreviewModel creates a new send preview model.
func NewSendPreviewModel(provider, model, redactLevel, context string) SendPreviewModel {
	return SendPreviewModel{
		Provider:    provider,
		Model:       model,
		RedactLevel: redactLevel,
		Context:     context,

		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true),
		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")),
		infoStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		warningStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true),
	}
}

// Init implements tea.Model.
func (m SendPreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SendPreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y", "enter":
			m.confirmed = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m SendPreviewModel) View() string {
	var b strings.Builder

	b.WriteString(m.headerStyle.Render("Sending terminal context to AI"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Provider: %s, model: %s\n", m.Provider, m.Model))
	b.WriteString(fmt.Sprintf("Redaction: %s", m.RedactLevel))
	if m.RedactLevel == "none" {
		b.WriteString(m.warningStyle.Render("  (no redaction)"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.labelStyle.Render("Context to be sent:"))
	b.WriteString("\n")
	b.WriteString(m.infoStyle.Render("---"))
	b.WriteString("\n")

	preview := m.Context
	const maxLen = 1000
	if len(preview) > maxLen {
		preview = preview[len(preview)-maxLen:]
		b.WriteString(m.infoStyle.Render("(earlier lines omitted)"))
		b.WriteString("\n")
	}
	b.WriteString(preview)
	b.WriteString("\n")
	b.WriteString(m.infoStyle.Render("---"))
	b.WriteString("\n\n")

	b.WriteString("Send? [y/N] ")
	b.WriteString("\n\n")
	b.WriteString(m.helpStyle.Render("Press 'y' or Enter to send, 'n' or Esc to cancel"))

	return b.String()
}

// Confirmed returns true if the user approved sending.
func (m SendPreviewModel) Confirmed() bool { return m.confirmed }

// Canceled returns true if the user declined.
func (m SendPreviewModel) Canceled() bool { return m.canceled }

// ConfirmSend runs the preview interactively and reports whether the user
// approved sending the context.
func ConfirmSend(provider, model, redactLevel, context string) (bool, error) {
	p := tea.NewProgram(NewSendPreviewModel(provider, model, redactLevel, context))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("preview error: %w", err)
	}
	m, ok := final.(SendPreviewModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Confirmed(), nil
}
