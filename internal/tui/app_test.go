package tui

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dayfocus/dayfocus/internal/dayview"
	"github.com/dayfocus/dayfocus/internal/repo"
	"github.com/dayfocus/dayfocus/internal/store"
	"github.com/dayfocus/dayfocus/internal/suggest"
	"github.com/dayfocus/dayfocus/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	mem := store.NewMemory()
	mem.SetClock(func() time.Time {
		return time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	})
	ctrl := dayview.NewController(repo.New(mem), "tui-user")
	return NewApp(ctrl, suggest.Rules{})
}

// drive feeds a message through Update and synchronously runs any command
// it returns, feeding resulting messages back in until none remain.
func drive(t *testing.T, a *App, msg tea.Msg) {
	t.Helper()
	model, cmd := a.Update(msg)
	require.Same(t, a, model)
	for cmd != nil {
		next := cmd()
		if next == nil {
			return
		}
		// Cursor blink messages would schedule ticks forever; the view
		// state under test never depends on them.
		if _, ok := next.(cursor.BlinkMsg); ok {
			return
		}
		model, cmd = a.Update(next)
		require.Same(t, a, model)
	}
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeTitle(t *testing.T, a *App, title string) {
	t.Helper()
	for _, r := range title {
		drive(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	drive(t, a, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestAddFlow(t *testing.T) {
	a := newTestApp(t)
	if cmd := a.Init(); cmd != nil {
		drive(t, a, cmd())
	}

	drive(t, a, key("a"))
	assert.True(t, a.adding)

	typeTitle(t, a, "Water the plants")

	assert.False(t, a.adding)
	tasks := a.visible()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Water the plants", tasks[0].Title)
	assert.Equal(t, task.StatusOpen, tasks[0].Status)
}

func TestToggleAndDelete(t *testing.T) {
	a := newTestApp(t)
	if cmd := a.Init(); cmd != nil {
		drive(t, a, cmd())
	}
	drive(t, a, key("a"))
	typeTitle(t, a, "Short lived")

	drive(t, a, key(" "))
	require.Len(t, a.visible(), 1)
	assert.Equal(t, task.StatusCompleted, a.visible()[0].Status)

	drive(t, a, key("d"))
	assert.Empty(t, a.visible())
}

func TestDayNavigationReloads(t *testing.T) {
	a := newTestApp(t)
	if cmd := a.Init(); cmd != nil {
		drive(t, a, cmd())
	}
	start := a.date

	drive(t, a, tea.KeyMsg{Type: tea.KeyRight})
	next, err := task.AddDays(start, 1)
	require.NoError(t, err)
	assert.Equal(t, next, a.date)
	assert.Equal(t, next, a.ctrl.Date())

	drive(t, a, key("t"))
	assert.Equal(t, start, a.date)
}

func TestMoveToTomorrowLeavesView(t *testing.T) {
	a := newTestApp(t)
	if cmd := a.Init(); cmd != nil {
		drive(t, a, cmd())
	}
	drive(t, a, key("a"))
	typeTitle(t, a, "Do it tomorrow")
	require.Len(t, a.visible(), 1)

	drive(t, a, key("m"))
	assert.Empty(t, a.visible())

	drive(t, a, tea.KeyMsg{Type: tea.KeyRight})
	tasks := a.visible()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Do it tomorrow", tasks[0].Title)
}

func TestFilterCycling(t *testing.T) {
	a := newTestApp(t)
	if cmd := a.Init(); cmd != nil {
		drive(t, a, cmd())
	}
	drive(t, a, key("a"))
	typeTitle(t, a, "open task")
	drive(t, a, key("a"))
	typeTitle(t, a, "done task")
	drive(t, a, tea.KeyMsg{Type: tea.KeyDown})
	drive(t, a, key(" "))

	require.Len(t, a.visible(), 2)

	drive(t, a, key("f")) // all -> open
	require.Len(t, a.visible(), 1)
	assert.Equal(t, "open task", a.visible()[0].Title)

	drive(t, a, key("f")) // open -> completed
	require.Len(t, a.visible(), 1)
	assert.Equal(t, "done task", a.visible()[0].Title)
}

func TestSuggestShowsNextAction(t *testing.T) {
	a := newTestApp(t)
	if cmd := a.Init(); cmd != nil {
		drive(t, a, cmd())
	}
	drive(t, a, key("a"))
	typeTitle(t, a, "Draft weekly report")

	drive(t, a, key("s"))
	assert.Contains(t, a.suggestion, "Compile data from sources A and B.")

	res := suggest.Rules{}.SuggestNextAction(context.Background(), "Draft weekly report")
	assert.Contains(t, a.suggestion, res.Rationale)
}
