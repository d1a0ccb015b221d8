package cli

import (
	"fmt"

	"github.com/idilsaglam/ttd/internal/match"
	"github.com/idilsaglam/ttd/internal/model"
	"github.com/idilsaglam/ttd/internal/ui"
)

// Add inserts a task into the current session, creating the session on
// demand. A description colliding with an existing task, exactly or fuzzily,
// either overrides it or aborts depending on the override policy.
func (a *App) Add(parts []string) error {
	if len(parts) == 0 {
		fmt.Fprintln(a.Out, "Usage: a <task> [in|at] <time>")
		return nil
	}
	desc := parts[0]

	if isNumeric(desc) {
		fmt.Fprintf(a.Out, "Task name '%s' looks like index. Use letters!\n", desc)
		fmt.Fprintln(a.Out, "Example: a 'buy milk'")
		return nil
	}

	t, ok, err := a.parseTimeArgs(parts)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	name := a.Store.SessionName()
	sess := a.Store.EnsureSession(name)

	if idx := model.FindExact(sess, desc); idx >= 0 {
		if !a.Config.CanOverride {
			fmt.Fprintf(a.Out, "Task '%s' already exists\n", desc)
			fmt.Fprintln(a.Out, "Set can_override=true in ~/.config/ttd/config.toml to override")
			return nil
		}
		sess[idx].Time = t
		sess[idx].Done = false
		fmt.Fprintf(a.Out, "Overrode existing task '%s'\n", desc)
	} else if s := a.fuzzyCollision(sess, desc); s != nil {
		if a.Config.StrictComparison {
			fmt.Fprintf(a.Out, "No exact match found for '%s'\n", desc)
			fmt.Fprintf(a.Out, "Possible match: \"%s\" (confidence: %.1f%%)\n", s.Description, s.Score*100)
			fmt.Fprintln(a.Out, "To enable fuzzy matching, set strict_comparison=false in config.toml")
			return nil
		}
		fmt.Fprintf(a.Out, "\"%s\" accepted as \"%s\" (confidence: %.1f%%)\n", desc, s.Description, s.Score*100)
		fmt.Fprintln(a.Out, "To enable strict matching, set strict_comparison=true in config.toml")
		if !a.Config.CanOverride {
			fmt.Fprintln(a.Out, "Set can_override=true to override or use different name")
			return nil
		}
		fmt.Fprintln(a.Out, "Overriding due to can_override=true")
		sess[s.Index].Time = t
		sess[s.Index].Done = false
	} else {
		sess = append(sess, model.Task{Description: desc, Time: t})
		fmt.Fprintf(a.Out, "Added new task '%s'\n", desc)
	}

	model.SortTasks(sess)
	a.Store.Sessions[name] = sess
	return nil
}

// fuzzyCollision probes for an approximate duplicate of desc. The probe is
// always strict so an above-threshold candidate is reported rather than
// resolved; what happens to it is up to the override policy.
func (a *App) fuzzyCollision(sess []model.Task, desc string) *match.Candidate {
	res := match.Find(sess, desc, a.Config.ExactMatchThreshold, true)
	return res.Suggestion
}

// Remove deletes the task matching the query from the current session.
func (a *App) Remove(parts []string) error {
	if len(parts) == 0 {
		fmt.Fprintln(a.Out, "Usage: r <index|task_name>")
		return nil
	}
	query := parts[0]
	name := a.Store.SessionName()
	sess := a.sessionTasks()

	res := a.find(sess, query)
	if !res.Found {
		a.reportMatchFailure(query, res)
		return nil
	}
	desc := sess[res.Index].Description
	a.Store.Sessions[name] = append(sess[:res.Index], sess[res.Index+1:]...)
	fmt.Fprintf(a.Out, "Removed task #%d '%s'\n", res.Index, desc)
	return nil
}

// SetDone marks the matching task done or not done, reporting when it was
// already in the requested state.
func (a *App) SetDone(parts []string, done bool) error {
	verb := "d"
	if !done {
		verb = "ud"
	}
	if len(parts) == 0 {
		fmt.Fprintf(a.Out, "Usage: %s <index|task_name>\n", verb)
		return nil
	}
	query := parts[0]
	sess := a.sessionTasks()

	res := a.find(sess, query)
	if !res.Found {
		a.reportMatchFailure(query, res)
		return nil
	}

	state := "done"
	if !done {
		state = "NOT done"
	}
	task := &sess[res.Index]
	if task.Done == done {
		fmt.Fprintf(a.Out, "Task #%d '%s' is already %s\n", res.Index, task.Description, state)
		return nil
	}
	task.Done = done
	fmt.Fprintf(a.Out, "Marked #%d '%s' as %s\n", res.Index, task.Description, state)
	return nil
}

// Reschedule changes or clears the matching task's time. Called without time
// arguments it makes the task open-ended. The session is re-sorted whether
// or not the query resolved.
func (a *App) Reschedule(parts []string) error {
	if len(parts) == 0 {
		fmt.Fprintln(a.Out, "Usage: t <index|task_name> [in|at] <time>")
		return nil
	}
	query := parts[0]
	name := a.Store.SessionName()
	sess := a.sessionTasks()
	defer func() {
		model.SortTasks(sess)
		if _, exists := a.Store.Sessions[name]; exists {
			a.Store.Sessions[name] = sess
		}
	}()

	res := a.find(sess, query)
	if !res.Found {
		a.reportMatchFailure(query, res)
		return nil
	}

	t, ok, err := a.parseTimeArgs(parts)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	task := &sess[res.Index]
	oldTime := ui.FormatTime(task.Time, a.Config.TimezoneOffsetHours)
	task.Time = t
	newTime := ui.FormatTime(task.Time, a.Config.TimezoneOffsetHours)
	fmt.Fprintf(a.Out, "Changed time for '%s': %s -> %s\n", task.Description, oldTime, newTime)
	return nil
}

// isNumeric reports whether s consists only of ASCII digits. The empty
// string counts as numeric, so blank descriptions are rejected by the
// looks-like-index guard and can never become tasks.
func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
