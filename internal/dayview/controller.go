package dayview

import (
	"context"
	"sync"
	"time"

	"github.com/dayfocus/dayfocus/internal/logger"
	"github.com/dayfocus/dayfocus/internal/repo"
	"github.com/dayfocus/dayfocus/internal/task"
)

// Controller drives repository calls for one user's day view and feeds the
// outcomes through the reducer. Optimistic transforms are applied before
// the repository call is issued, so readers see mutations immediately; a
// failed call restores the snapshot taken at staging time.
//
// Methods are safe to call from multiple goroutines (the TUI issues them
// from command goroutines), but only one mutation per task id should be in
// flight at a time; concurrent mutations on different ids may settle in
// any order.
type Controller struct {
	repo   *repo.Repository
	userID string
	now    func() time.Time

	mu    sync.Mutex
	state State
}

// NewController creates a controller for the given user.
func NewController(r *repo.Repository, userID string) *Controller {
	return &Controller{repo: r, userID: userID, now: time.Now}
}

// Load fetches the list for a date. On failure the previously loaded list
// stays visible and the error is recorded.
func (c *Controller) Load(ctx context.Context, date string) error {
	c.apply(LoadStarted{Date: date})

	tasks, err := c.repo.List(ctx, c.userID, date)
	if err != nil {
		logger.Warn("Day view load failed for %s: %v", date, err)
		c.apply(LoadFailed{Reason: "Failed to fetch tasks."})
		return err
	}
	c.apply(LoadSucceeded{Tasks: tasks})
	return nil
}

// Add creates a task and shows it only when it lands on the displayed
// date. There is no optimistic insert, so failure needs no rollback.
func (c *Controller) Add(ctx context.Context, params task.CreateParams) error {
	created, err := c.repo.Create(ctx, c.userID, params)
	if err != nil {
		logger.Warn("Add task failed: %v", err)
		c.apply(AddFailed{Reason: "Failed to add task."})
		return err
	}
	c.apply(AddCommitted{Task: created})
	return nil
}

// Update stages the patch optimistically, then persists it. A patch that
// moves the task to another date removes it from the current view right
// away.
func (c *Controller) Update(ctx context.Context, id string, patch task.Patch) error {
	c.apply(MutationStaged{ID: id, Patch: patch, Now: c.now()})

	if _, err := c.repo.Update(ctx, id, c.userID, patch); err != nil {
		logger.Warn("Update task %s failed, rolling back: %v", id, err)
		c.apply(MutationRolledBack{Reason: "Failed to update task. Reverting changes."})
		return err
	}
	c.apply(MutationCommitted{})
	return nil
}

// Delete removes the task from view immediately, then persists the
// removal.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.apply(MutationStaged{ID: id, Delete: true})

	if _, err := c.repo.Delete(ctx, id, c.userID); err != nil {
		logger.Warn("Delete task %s failed, rolling back: %v", id, err)
		c.apply(MutationRolledBack{Reason: "Failed to delete task."})
		return err
	}
	c.apply(MutationCommitted{})
	return nil
}

// Tasks returns a copy of the currently displayed list.
func (c *Controller) Tasks() []task.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return task.CloneAll(c.state.Tasks)
}

// Visible returns a copy of the displayed list narrowed by filter.
func (c *Controller) Visible(f Filter) []task.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Visible(f)
}

// Date returns the currently displayed date.
func (c *Controller) Date() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Date
}

// Loading reports whether a load is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Loading
}

// Err returns the current user-visible error message, if any.
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Err
}

// ClearError dismisses the error banner.
func (c *Controller) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Err = ""
}

func (c *Controller) apply(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Apply(e)
}
