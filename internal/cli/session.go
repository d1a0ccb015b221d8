package cli

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/ttd/internal/model"
)

// Sessions lists every known session and the current one.
func (a *App) Sessions() error {
	fmt.Fprintf(a.Out, "Available sessions: [%s]\n", strings.Join(a.Store.SessionNames(), ", "))
	if a.Store.CurrentSession != nil {
		fmt.Fprintf(a.Out, "Current session: %s\n", *a.Store.CurrentSession)
	} else {
		fmt.Fprintln(a.Out, "No current session (using 'default')")
	}
	return nil
}

// Switch makes the named session current, creating it if needed. Without a
// name it only reports the current session.
func (a *App) Switch(parts []string) error {
	if len(parts) == 0 {
		if a.Store.CurrentSession != nil {
			fmt.Fprintf(a.Out, "Current session: '%s'\n", *a.Store.CurrentSession)
		} else {
			fmt.Fprintln(a.Out, "No current session (using 'default')")
		}
		return nil
	}
	name := parts[0]
	a.Store.EnsureSession(name)
	a.Store.SetCurrent(name)
	fmt.Fprintf(a.Out, "Switched to session '%s'\n", name)
	return nil
}

// RemoveSession deletes a session. The default session is protected, and a
// session that still holds tasks needs an explicit confirmation, worded
// differently depending on whether any of them are uncompleted.
func (a *App) RemoveSession(parts []string) error {
	if len(parts) == 0 {
		fmt.Fprintln(a.Out, "Usage: rs <session>")
		return nil
	}
	name := parts[0]
	if name == "" {
		fmt.Fprintln(a.Out, "Session name cannot be empty")
		return nil
	}
	if name == model.DefaultSession {
		fmt.Fprintln(a.Out, "Cannot remove default session")
		return nil
	}
	tasks, ok := a.Store.Sessions[name]
	if !ok {
		fmt.Fprintf(a.Out, "Session '%s' not found\n", name)
		return nil
	}

	if len(tasks) > 0 {
		uncompleted := len(tasks) - model.CompletedCount(tasks)
		fmt.Fprintf(a.Out, "Session '%s' contains %d tasks (%d uncompleted)\n", name, len(tasks), uncompleted)

		prompt := "Session contains only completed tasks. Delete anyway? [y/N]"
		if uncompleted > 0 {
			prompt = "Are you sure you want to delete this session with uncompleted tasks? [y/N]"
		}
		if !a.Confirm.Confirm(prompt) {
			fmt.Fprintln(a.Out, "Session deletion cancelled")
			return nil
		}
	}

	delete(a.Store.Sessions, name)
	if a.Store.CurrentSession != nil && *a.Store.CurrentSession == name {
		a.Store.SetCurrent(model.DefaultSession)
		fmt.Fprintln(a.Out, "Switched to default session")
	}
	fmt.Fprintf(a.Out, "Session '%s' deleted successfully\n", name)
	return nil
}
