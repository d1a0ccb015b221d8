// Package tui is the interactive browser for one session's tasks.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/ttd/internal/model"
	"github.com/idilsaglam/ttd/internal/ui"
)

const (
	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// listItem adapts a task to bubbles/list.Item.
type listItem struct {
	Task model.Task
}

func (i listItem) Title() string       { return i.Task.Description }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Task.Description }

// itemDelegate renders one task per line: checkbox, description, time.
type itemDelegate struct {
	offsetHours int
	now         time.Time
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := ui.MutedStyle.Render(boxUnchecked)
	text := it.Task.Description
	if it.Task.Done {
		box = ui.SuccessStyle.Render(boxChecked)
		text = ui.DoneStyle.Render(text)
	}
	when := ui.TimeStyle(it.Task.Time, d.now).Render(ui.FormatTime(it.Task.Time, d.offsetHours))

	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s  %s\n", prefix, box, text, when)
}

type browser struct {
	list    list.Model
	changed bool

	// Inline add
	adding bool
	input  textinput.Model
	addErr string

	// Undo support (single-level)
	canUndo   bool
	undoIndex int
	undoItem  *listItem

	width, height int
}

// Run starts the interactive list over tasks and returns the edited list
// plus whether anything changed.
func Run(session string, tasks []model.Task, offsetHours int, now time.Time) ([]model.Task, bool, error) {
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, listItem{Task: t})
	}

	l := list.New(items, itemDelegate{offsetHours: offsetHours, now: now}, 0, 0)
	done := model.CompletedCount(tasks)
	l.Title = fmt.Sprintf("%s   %s %d  %s %d",
		ui.TitleStyle.Render(fmt.Sprintf("Session '%s'", session)),
		ui.SuccessStyle.Render("✔"), done,
		ui.PendingStyle.Render("•"), len(tasks)-done,
	)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	undoBind := key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	extra := func() []key.Binding { return []key.Binding{toggleBind, addBind, delBind, undoBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := browser{list: l, width: 80, height: 24}
	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = "New task description..."
	m.input.CharLimit = 200

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return tasks, false, err
	}
	fm, ok := finalModel.(browser)
	if !ok || !fm.changed {
		return tasks, false, nil
	}

	out := make([]model.Task, 0, len(fm.list.Items()))
	for _, it := range fm.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.Task)
		}
	}
	return out, true, nil
}

func (m browser) Init() tea.Cmd { return nil }

func (m browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}

	if m.adding {
		var cmd tea.Cmd
		if km, ok := msg.(tea.KeyMsg); ok {
			switch km.String() {
			case "enter":
				desc := strings.TrimSpace(m.input.Value())
				if desc == "" {
					m.addErr = "Description cannot be empty"
					return m, nil
				}
				m.list.InsertItem(m.list.Index()+1, listItem{Task: model.Task{Description: desc}})
				m.changed = true
				m.input.SetValue("")
				m.input.Blur()
				m.adding = false
				return m, nil
			case "esc":
				m.adding = false
				m.input.SetValue("")
				m.input.Blur()
				return m, nil
			}
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if km, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch km.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					li.Task.Done = !li.Task.Done
					m.list.SetItem(i, li)
					m.changed = true
				}
			}
			return m, nil
		case "d":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok {
					tmp := li
					m.undoItem = &tmp
					m.undoIndex = i
					m.canUndo = true
				}
				m.list.RemoveItem(i)
				m.changed = true
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.input.SetValue("")
			m.input.Focus()
			return m, nil
		case "u":
			if m.canUndo && m.undoItem != nil {
				idx := m.undoIndex
				if idx < 0 {
					idx = 0
				}
				if idx > len(m.list.Items()) {
					idx = len(m.list.Items())
				}
				m.list.InsertItem(idx, *m.undoItem)
				m.changed = true
				m.canUndo = false
				m.undoItem = nil
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browser) View() string {
	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 6
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()
	if m.adding {
		title := "Add new task"
		if m.addErr != "" {
			title += " — " + ui.ErrorStyle.Render(m.addErr)
		}
		content += "\n" + inputBox.Render(title+"\n"+m.input.View())
	}
	return panel.Render(content)
}

var (
	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	inputBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)
