package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/ttd/internal/model"
)

// OpenEnded is displayed for tasks without a scheduled time.
const OpenEnded = "end of times"

const timeColumnWidth = 16

// FormatTime renders a task time in the configured local zone, or the
// open-ended marker when the task has no time.
func FormatTime(t *time.Time, offsetHours int) string {
	if t == nil {
		return OpenEnded
	}
	local := t.UTC().Add(time.Duration(offsetHours) * time.Hour)
	return local.Format("2006-01-02 15:04")
}

// TimeStyle picks the color for a time cell: overdue, upcoming or
// unscheduled.
func TimeStyle(t *time.Time, now time.Time) lipgloss.Style {
	switch {
	case t == nil:
		return AccentStyle
	case t.Before(now):
		return WarnStyle
	default:
		return PendingStyle
	}
}

// DescriptionWidth returns the widest description length, clamped below by
// min so short lists still get an aligned column.
func DescriptionWidth(tasks []model.Task, min int) int {
	w := min
	for _, t := range tasks {
		if n := len([]rune(t.Description)); n > w {
			w = n
		}
	}
	return w
}

// RenderTasks writes one aligned, colorized table of tasks. Every line is
// prefixed with indent so the all-sessions view can nest its tables.
func RenderTasks(w io.Writer, tasks []model.Task, descWidth, offsetHours int, now time.Time, indent string) {
	fmt.Fprintf(w, "%s%-2s %-7s %-*s | %s\n", indent, "№", "STATUS", descWidth, "DESCRIPTION", "TIME")
	fmt.Fprintf(w, "%s%s %s %s | %s\n", indent,
		strings.Repeat("-", 2),
		strings.Repeat("-", 7),
		strings.Repeat("-", descWidth),
		strings.Repeat("-", timeColumnWidth))

	for i, t := range tasks {
		badge, badgeStyle := "[TODO]", PendingStyle
		if t.Done {
			badge, badgeStyle = "[DONE]", SuccessStyle
		}

		desc := fmt.Sprintf("%-*s", descWidth, t.Description)
		if t.Done {
			desc = DoneStyle.Render(desc)
		}

		timeCell := TimeStyle(t.Time, now).Render(FormatTime(t.Time, offsetHours))

		fmt.Fprintf(w, "%s%-2d %s %s | %s\n", indent, i,
			badgeStyle.Render(fmt.Sprintf("%-7s", badge)), desc, timeCell)
	}
}
