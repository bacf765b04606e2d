package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	vityerrors "github.com/vityhq/vity/internal/errors"
)

// thinkingResultMsg carries the outcome of the background work.
type thinkingResultMsg struct {
	value string
	err   error
}

// ThinkingModel shows a spinner while a provider call is in flight.
type ThinkingModel struct {
	title   string
	spinner spinner.Model
	work    tea.Cmd

	value    string
	err      error
	done     bool
	canceled bool
	cancel   context.CancelFunc
}

// NewThinkingModel creates a spinner model that runs work in the background
// and quits when it completes. cancel is invoked when the user interrupts.
func NewThinkingModel(title string, cancel context.CancelFunc, work func() (string, error)) ThinkingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	return ThinkingModel{
		title:   title,
		spinner: s,
		cancel:  cancel,
		work: func() tea.Msg {
			value, err := work()
			return thinkingResultMsg{value: value, err: err}
		},
	}
}

// Init implements tea.Model.
func (m ThinkingModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

// Update implements tea.Model.
func (m ThinkingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case thinkingResultMsg:
		m.value = msg.value
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.canceled = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

// View implements tea.Model.
func (m ThinkingModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.title)
}

// RunThinking shows the spinner while work runs, returning its result.
// A user interrupt cancels the context passed to work and yields
// ErrCanceled, which the CLI maps to a quiet exit.
func RunThinking(ctx context.Context, title string, work func(context.Context) (string, error)) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewThinkingModel(title, cancel, func() (string, error) {
		return work(ctx)
	})

	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("spinner error: %w", err)
	}
	m, ok := final.(ThinkingModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	if m.canceled {
		return "", vityerrors.ErrCanceled
	}
	return m.value, m.err
}
