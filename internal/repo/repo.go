// Package repo implements date-scoped CRUD over a per-user task store. It
// owns id generation, sortIndex assignment and timestamping; callers never
// supply any of those.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayfocus/dayfocus/internal/logger"
	"github.com/dayfocus/dayfocus/internal/store"
	"github.com/dayfocus/dayfocus/internal/task"
	"github.com/rs/xid"
)

// ErrNotFound is returned by Update and Delete when the id is absent from
// the user's collection.
var ErrNotFound = errors.New("task not found")

// Repository exposes CRUD operations over a Store. Every mutating operation
// rewrites the user's whole collection; last write wins.
type Repository struct {
	store store.Store
	now   func() time.Time
	newID func() string
}

// New creates a Repository over the given store.
func New(s store.Store) *Repository {
	return &Repository{
		store: s,
		now:   time.Now,
		newID: func() string { return xid.New().String() },
	}
}

// List returns the user's tasks for an exact calendar date, ordered by
// ascending sortIndex. The result is independent of store state.
func (r *Repository) List(ctx context.Context, userID, date string) ([]task.Task, error) {
	all, err := r.store.LoadAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	out := make([]task.Task, 0)
	for _, t := range all {
		if t.Date == date {
			out = append(out, t.Clone())
		}
	}
	task.SortByIndex(out)

	logger.Debug("Listed %d tasks for user=%s date=%s", len(out), userID, date)
	return out, nil
}

// Create appends a new task to the user's collection. The new task gets a
// fresh id, open status, the next sortIndex for its date, and identical
// created/updated timestamps.
func (r *Repository) Create(ctx context.Context, userID string, params task.CreateParams) (task.Task, error) {
	if params.Title == "" {
		return task.Task{}, fmt.Errorf("title is required")
	}
	if _, err := task.ParseDate(params.Date); err != nil {
		return task.Task{}, err
	}

	all, err := r.store.LoadAll(ctx, userID)
	if err != nil {
		return task.Task{}, fmt.Errorf("loading tasks: %w", err)
	}

	now := r.now()
	t := task.Task{
		ID:                  r.newID(),
		Title:               params.Title,
		Date:                params.Date,
		Status:              task.StatusOpen,
		SortIndex:           task.MaxSortIndex(all, params.Date) + 1,
		Assignee:            params.Assignee,
		Difficulty:          params.Difficulty,
		NextAction:          params.NextAction,
		Plan:                params.Plan,
		Project:             params.Project,
		ScheduleInfo:        params.ScheduleInfo,
		MultiSession:        params.MultiSession,
		SpecialRequirements: params.SpecialRequirements,
		Attachments:         append([]string(nil), params.Attachments...),
		Prerequisites:       append([]string(nil), params.Prerequisites...),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	all = append(all, t)
	if err := r.store.SaveAll(ctx, userID, all); err != nil {
		return task.Task{}, fmt.Errorf("saving tasks: %w", err)
	}

	logger.Debug("Created task id=%s user=%s date=%s sortIndex=%d", t.ID, userID, t.Date, t.SortIndex)
	return t.Clone(), nil
}

// Update merges a partial patch into an existing task and refreshes
// updatedAt. A patch that moves the task to another date also moves it to
// the end of that date's ordering, keeping sortIndex unique per date.
func (r *Repository) Update(ctx context.Context, id, userID string, patch task.Patch) (task.Task, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return task.Task{}, fmt.Errorf("invalid status: %s (must be open, completed, or abandoned)", *patch.Status)
	}
	if patch.Date != nil {
		if _, err := task.ParseDate(*patch.Date); err != nil {
			return task.Task{}, err
		}
	}

	all, err := r.store.LoadAll(ctx, userID)
	if err != nil {
		return task.Task{}, fmt.Errorf("loading tasks: %w", err)
	}

	idx := indexOf(all, id)
	if idx < 0 {
		return task.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}

	t := &all[idx]
	redated := patch.Redates(t.Date)
	patch.Apply(t)
	if redated {
		// Append to the destination day rather than carrying the old
		// index over, which could collide there.
		others := append(all[:idx:idx], all[idx+1:]...)
		t.SortIndex = task.MaxSortIndex(others, t.Date) + 1
	}
	t.UpdatedAt = r.now()

	if err := r.store.SaveAll(ctx, userID, all); err != nil {
		return task.Task{}, fmt.Errorf("saving tasks: %w", err)
	}

	logger.Debug("Updated task id=%s user=%s", id, userID)
	return t.Clone(), nil
}

// Delete removes a task from the user's collection and returns its id.
// Removal is hard; the freed sortIndex is never reused.
func (r *Repository) Delete(ctx context.Context, id, userID string) (string, error) {
	all, err := r.store.LoadAll(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("loading tasks: %w", err)
	}

	idx := indexOf(all, id)
	if idx < 0 {
		return "", fmt.Errorf("task %s: %w", id, ErrNotFound)
	}

	all = append(all[:idx], all[idx+1:]...)
	if err := r.store.SaveAll(ctx, userID, all); err != nil {
		return "", fmt.Errorf("saving tasks: %w", err)
	}

	logger.Debug("Deleted task id=%s user=%s", id, userID)
	return id, nil
}

// Get returns a single task by id.
func (r *Repository) Get(ctx context.Context, id, userID string) (task.Task, error) {
	all, err := r.store.LoadAll(ctx, userID)
	if err != nil {
		return task.Task{}, fmt.Errorf("loading tasks: %w", err)
	}

	idx := indexOf(all, id)
	if idx < 0 {
		return task.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return all[idx].Clone(), nil
}

func indexOf(tasks []task.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
