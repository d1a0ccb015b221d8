package cli

import (
	"github.com/idilsaglam/ttd/internal/model"
	"github.com/idilsaglam/ttd/internal/tui"
)

// Browse opens the interactive list over the current session. The edited
// task list is written back into the store; the final save in Execute
// persists it.
func (a *App) Browse() error {
	name := a.Store.SessionName()
	tasks := a.Store.Sessions[name]

	edited, changed, err := tui.Run(name, tasks, a.Config.TimezoneOffsetHours, a.Now())
	if err != nil {
		return err
	}
	if changed {
		model.SortTasks(edited)
		a.Store.EnsureSession(name)
		a.Store.Sessions[name] = edited
	}
	return nil
}
