package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all Bubbletea update logic for the confirmation model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func handleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Decline):
		m.done = true
		return m, tea.Quit
	}
	// Everything else scrolls the block.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
