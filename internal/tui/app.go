// Package tui renders the day view: one date's task list with add, status,
// redate and delete actions, all applied optimistically through the
// dayview controller.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dayfocus/dayfocus/internal/dayview"
	"github.com/dayfocus/dayfocus/internal/suggest"
	"github.com/dayfocus/dayfocus/internal/task"
)

// settledMsg is emitted when a controller call finishes; the model re-reads
// controller state on every render, so the message carries nothing.
type settledMsg struct{}

// suggestionMsg carries a resolved next-action suggestion.
type suggestionMsg struct {
	title string
	res   suggest.Result
}

// App is the Bubble Tea model for the day view.
type App struct {
	ctrl      *dayview.Controller
	suggester suggest.Suggester

	date   string
	filter dayview.Filter
	cursor int

	input  textinput.Model
	adding bool

	suggestion string
	width      int
	height     int
}

// NewApp creates the day view anchored on today.
func NewApp(ctrl *dayview.Controller, suggester suggest.Suggester) *App {
	ti := textinput.New()
	ti.Placeholder = "New task title"
	ti.CharLimit = 200

	return &App{
		ctrl:      ctrl,
		suggester: suggester,
		date:      task.FormatDate(time.Now()),
		filter:    dayview.FilterAll,
		input:     ti,
	}
}

// Init loads the initial date.
func (a *App) Init() tea.Cmd {
	return a.loadCmd(a.date)
}

func (a *App) loadCmd(date string) tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		_ = ctrl.Load(context.Background(), date)
		return settledMsg{}
	}
}

func (a *App) addCmd(title, date string) tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		_ = ctrl.Add(context.Background(), task.CreateParams{Title: title, Date: date})
		return settledMsg{}
	}
}

func (a *App) updateCmd(id string, patch task.Patch) tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		_ = ctrl.Update(context.Background(), id, patch)
		return settledMsg{}
	}
}

func (a *App) deleteCmd(id string) tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		_ = ctrl.Delete(context.Background(), id)
		return settledMsg{}
	}
}

func (a *App) suggestCmd(title string) tea.Cmd {
	s := a.suggester
	return func() tea.Msg {
		res := s.SuggestNextAction(context.Background(), title).Or(suggest.Fallback())
		return suggestionMsg{title: title, res: res}
	}
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case settledMsg:
		a.clampCursor()
		return a, nil

	case suggestionMsg:
		a.suggestion = fmt.Sprintf("%q → %s (%s)", msg.title, msg.res.Suggestion, msg.res.Rationale)
		return a, nil

	case tea.KeyMsg:
		if a.adding {
			return a.updateAdding(msg)
		}
		return a.updateBrowsing(msg)
	}

	return a, nil
}

func (a *App) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(a.input.Value())
		a.input.SetValue("")
		a.input.Blur()
		a.adding = false
		if title == "" {
			return a, nil
		}
		return a, a.addCmd(title, a.date)
	case "esc":
		a.input.SetValue("")
		a.input.Blur()
		a.adding = false
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit

	case "left", "h":
		return a, a.shiftDay(-1)

	case "right", "l":
		return a, a.shiftDay(1)

	case "t":
		a.date = task.FormatDate(time.Now())
		a.cursor = 0
		return a, a.loadCmd(a.date)

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "down", "j":
		if a.cursor < len(a.visible())-1 {
			a.cursor++
		}
		return a, nil

	case "a":
		a.adding = true
		a.suggestion = ""
		a.input.Focus()
		return a, textinput.Blink

	case "f":
		a.filter = dayview.NextFilter(a.filter)
		a.clampCursor()
		return a, nil

	case " ":
		if t, ok := a.selected(); ok {
			status := task.StatusCompleted
			if t.Status == task.StatusCompleted {
				status = task.StatusOpen
			}
			return a, a.updateCmd(t.ID, task.Patch{Status: &status})
		}
		return a, nil

	case "x":
		if t, ok := a.selected(); ok {
			status := task.StatusAbandoned
			if t.Status == task.StatusAbandoned {
				status = task.StatusOpen
			}
			return a, a.updateCmd(t.ID, task.Patch{Status: &status})
		}
		return a, nil

	case "m":
		// Move the selected task to the next day; it leaves this view
		// immediately.
		if t, ok := a.selected(); ok {
			if dest, err := task.AddDays(a.date, 1); err == nil {
				return a, a.updateCmd(t.ID, task.Patch{Date: &dest})
			}
		}
		return a, nil

	case "d":
		if t, ok := a.selected(); ok {
			return a, a.deleteCmd(t.ID)
		}
		return a, nil

	case "s":
		if t, ok := a.selected(); ok {
			return a, a.suggestCmd(t.Title)
		}
		return a, nil

	case "esc":
		a.suggestion = ""
		a.ctrl.ClearError()
		return a, nil
	}

	return a, nil
}

func (a *App) shiftDay(days int) tea.Cmd {
	next, err := task.AddDays(a.date, days)
	if err != nil {
		return nil
	}
	a.date = next
	a.cursor = 0
	a.suggestion = ""
	return a.loadCmd(next)
}

func (a *App) visible() []task.Task {
	return a.ctrl.Visible(a.filter)
}

func (a *App) selected() (task.Task, bool) {
	tasks := a.visible()
	if a.cursor < 0 || a.cursor >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[a.cursor], true
}

func (a *App) clampCursor() {
	if n := len(a.visible()); a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// View renders the day view.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(task.DisplayDate(a.date, time.Now())))
	b.WriteString("  ")
	b.WriteString(filterStyle.Render("[" + string(a.filter) + "]"))
	b.WriteString("\n\n")

	if errMsg := a.ctrl.Err(); errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n\n")
	}

	switch {
	case a.ctrl.Loading():
		b.WriteString(metaStyle.Render("Loading tasks..."))
		b.WriteString("\n")
	default:
		a.renderList(&b)
	}

	if a.adding {
		b.WriteString("\n")
		b.WriteString(a.input.View())
		b.WriteString("\n")
	}

	if a.suggestion != "" {
		b.WriteString("\n")
		b.WriteString(suggestionStyle.Render("Next action: " + a.suggestion))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ day · t today · a add · space done · x abandon · m move +1d · d delete · s suggest · f filter · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (a *App) renderList(b *strings.Builder) {
	tasks := a.visible()
	if len(tasks) == 0 {
		b.WriteString(metaStyle.Render("No tasks for this day. Press 'a' to add one."))
		b.WriteString("\n")
		return
	}

	for i, t := range tasks {
		line := statusGlyph(t.Status) + " " + t.Title
		if t.Project != "" {
			line += metaStyle.Render("  (" + t.Project + ")")
		}
		if t.ScheduleInfo != "" {
			line += metaStyle.Render("  @" + t.ScheduleInfo)
		}

		switch {
		case i == a.cursor:
			line = selectedStyle.Render("› ") + line
		default:
			line = "  " + line
		}
		switch t.Status {
		case task.StatusCompleted:
			line = completedStyle.Render(line)
		case task.StatusAbandoned:
			line = abandonedStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}
}

func statusGlyph(s task.Status) string {
	switch s {
	case task.StatusCompleted:
		return "✓"
	case task.StatusAbandoned:
		return "✗"
	default:
		return "○"
	}
}
