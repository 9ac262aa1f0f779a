package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/R1S-dev/LifeQuest/internal/engine"
)

// RunBoard opens the interactive quest board.
func RunBoard(svc *engine.Service, out io.Writer) error {
	m := newBoardModel(svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
