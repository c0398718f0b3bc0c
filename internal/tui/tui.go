package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/remotetodo/internal/model"
)

// Run starts the interactive list and blocks until the user quits.
// The session's edits live only as long as the program.
func Run(opt Options, progOpts ...tea.ProgramOption) error {
	m := New(opt)
	defer m.teardown()

	progOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	p := tea.NewProgram(m, progOpts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	done, pending := model.Stats(m.store.Items())
	m.log.WithField("done", done).WithField("pending", pending).Info("session ended")
	return nil
}
