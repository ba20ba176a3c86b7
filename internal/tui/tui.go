package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Init initializes the TUI model and returns any initial commands to run.
func (m model) Init() tea.Cmd {
	return nil
}

// Confirm shows block and waits for the user to accept or decline its
// removal. Cancelling ctx ends the program and counts as declining.
func Confirm(ctx context.Context, in io.Reader, out io.Writer, block Block) (bool, error) {
	p := tea.NewProgram(
		&teaModelAdapter{initialModel(block)},
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error running confirmation: %w", err)
	}
	adapter, ok := final.(*teaModelAdapter)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", final)
	}
	return adapter.m.confirmed, nil
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
