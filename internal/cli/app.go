package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/idilsaglam/ttd/internal/config"
	"github.com/idilsaglam/ttd/internal/match"
	"github.com/idilsaglam/ttd/internal/model"
	"github.com/idilsaglam/ttd/internal/timeparse"
	"github.com/idilsaglam/ttd/internal/ui"
)

// App holds everything one command invocation needs: the loaded config and
// store, the output sink and the confirmation prompt. The store is mutated
// in memory only; persistence happens once, after the command returns.
type App struct {
	Config  config.Config
	Store   *model.Store
	Out     io.Writer
	Confirm ui.Confirmer
	Now     func() time.Time
}

// sessionTasks returns the current session's tasks without creating the
// session. Only mutating adds are allowed to create it on demand.
func (a *App) sessionTasks() []model.Task {
	return a.Store.Sessions[a.Store.SessionName()]
}

func (a *App) find(tasks []model.Task, query string) match.Result {
	return match.Find(tasks, query, a.Config.ExactMatchThreshold, a.Config.StrictComparison)
}

// parseTimeArgs interprets the optional trailing "in <token>" / "at <token>"
// pair of an add/time command line. A missing pair means no time. An unknown
// prefix prints guidance and reports ok=false; parse failures are fatal.
func (a *App) parseTimeArgs(parts []string) (t *time.Time, ok bool, err error) {
	if len(parts) <= 2 {
		return nil, true, nil
	}
	prefix, token := parts[1], parts[2]
	var parsed time.Time
	switch prefix {
	case "in":
		parsed, err = timeparse.Relative(token, a.Now())
	case "at":
		parsed, err = timeparse.Absolute(token, a.Now(), a.Config.TimezoneOffsetHours)
	default:
		fmt.Fprintf(a.Out, "Unknown time prefix '%s'. Use 'in' for relative time or 'at' for absolute time.\n", prefix)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &parsed, true, nil
}

// reportMatchFailure prints the shared not-found messaging: index lookups get
// an index error, name lookups get either the best fuzzy candidate with its
// confidence and a hint on switching matching mode, or a plain not-found.
func (a *App) reportMatchFailure(query string, res match.Result) {
	if res.ByIndex {
		fmt.Fprintf(a.Out, "Index %s not found\n", query)
		return
	}
	if res.Suggestion == nil {
		fmt.Fprintf(a.Out, "Task '%s' not found\n", query)
		return
	}
	s := res.Suggestion
	if a.Config.StrictComparison {
		fmt.Fprintf(a.Out, "No exact match found for '%s'\n", query)
		fmt.Fprintf(a.Out, "Possible match: \"%s\" (confidence: %.1f%%)\n", s.Description, s.Score*100)
		fmt.Fprintln(a.Out, "To enable fuzzy matching, set strict_comparison=false in config.toml")
	} else {
		fmt.Fprintf(a.Out, "No task found matching \"%s\" with confidence > %.0f%%\n", query, a.Config.ExactMatchThreshold*100)
		fmt.Fprintf(a.Out, "Closest match was \"%s\" (confidence: %.1f%%)\n", s.Description, s.Score*100)
		fmt.Fprintln(a.Out, "To enable strict matching, set strict_comparison=true in config.toml")
	}
}
