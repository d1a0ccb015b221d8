package cli

import (
	"fmt"

	"github.com/idilsaglam/ttd/internal/model"
	"github.com/idilsaglam/ttd/internal/ui"
)

const (
	listMinWidth    = 12
	listAllMinWidth = 5
)

// List renders the current session as an aligned table.
func (a *App) List() error {
	name := a.Store.SessionName()
	fmt.Fprintf(a.Out, "Current session: '%s'\n", name)

	tasks := a.Store.Sessions[name]
	if len(tasks) == 0 {
		fmt.Fprintf(a.Out, "No tasks in session '%s'\n", name)
		return nil
	}

	fmt.Fprintf(a.Out, "Completed: %d/%d\n", model.CompletedCount(tasks), len(tasks))
	width := ui.DescriptionWidth(tasks, listMinWidth)
	ui.RenderTasks(a.Out, tasks, width, a.Config.TimezoneOffsetHours, a.Now(), "")
	return nil
}

// ListAll renders every session, marking the current one. The description
// column width is shared across sessions so the tables line up.
func (a *App) ListAll() error {
	if len(a.Store.Sessions) == 0 {
		fmt.Fprintln(a.Out, "No sessions available")
		return nil
	}

	width := listAllMinWidth
	for _, tasks := range a.Store.Sessions {
		if w := ui.DescriptionWidth(tasks, 0); w > width {
			width = w
		}
	}

	for _, name := range a.Store.SessionNames() {
		tasks := a.Store.Sessions[name]
		marker := ""
		if a.Store.CurrentSession != nil && *a.Store.CurrentSession == name {
			marker = "[CURRENT]"
		}
		fmt.Fprintf(a.Out, "\n\n---> Session: '%s' %s (%d/%d)\n\n",
			name, marker, model.CompletedCount(tasks), len(tasks))

		if len(tasks) == 0 {
			fmt.Fprintln(a.Out, "  (empty)")
			continue
		}
		ui.RenderTasks(a.Out, tasks, width, a.Config.TimezoneOffsetHours, a.Now(), "  ")
	}
	return nil
}
