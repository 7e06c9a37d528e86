// Package task defines the task model shared by the store, repository and
// view layers.
package task

import (
	"fmt"
	"sort"
	"time"
)

// Status is the explicit lifecycle state of a task. Transitions between
// statuses are unconstrained in direction but never inferred.
type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusCompleted, StatusAbandoned:
		return true
	default:
		return false
	}
}

// ParseStatus parses a status string.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("invalid status: %s (must be open, completed, or abandoned)", s)
	}
	return st, nil
}

// Task is a single to-do item scoped to one calendar date and one owning
// user. The JSON field names are the persisted wire format.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"` // YYYY-MM-DD
	Status    Status `json:"status"`
	SortIndex int    `json:"sortIndex"`

	Assignee            string   `json:"assignee,omitempty"`
	Difficulty          int      `json:"difficulty,omitempty"` // 1-5
	NextAction          string   `json:"nextAction,omitempty"`
	Plan                string   `json:"plan,omitempty"`
	Project             string   `json:"project,omitempty"`
	ScheduleInfo        string   `json:"scheduleInfo,omitempty"`
	MultiSession        bool     `json:"isMultiSession,omitempty"`
	SpecialRequirements string   `json:"specialRequirements,omitempty"`
	Attachments         []string `json:"attachmentUrls,omitempty"`
	Prerequisites       []string `json:"prerequisites,omitempty"` // task IDs

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns an independent copy of the task. Mutating the copy never
// affects the original, including the slice-valued fields.
func (t Task) Clone() Task {
	c := t
	if t.Attachments != nil {
		c.Attachments = append([]string(nil), t.Attachments...)
	}
	if t.Prerequisites != nil {
		c.Prerequisites = append([]string(nil), t.Prerequisites...)
	}
	return c
}

// CloneAll deep-copies a task slice.
func CloneAll(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// SortByIndex orders tasks by ascending sortIndex in place.
func SortByIndex(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].SortIndex < tasks[j].SortIndex
	})
}

// MaxSortIndex returns the highest sortIndex among tasks on the given date,
// or 0 when the date has no tasks.
func MaxSortIndex(tasks []Task, date string) int {
	max := 0
	for _, t := range tasks {
		if t.Date == date && t.SortIndex > max {
			max = t.SortIndex
		}
	}
	return max
}

// CreateParams carries the caller-supplied fields for a new task. Status,
// sortIndex and timestamps are assigned by the repository, never by callers.
type CreateParams struct {
	Title string `json:"title"`
	Date  string `json:"date"`

	Assignee            string   `json:"assignee,omitempty"`
	Difficulty          int      `json:"difficulty,omitempty"`
	NextAction          string   `json:"nextAction,omitempty"`
	Plan                string   `json:"plan,omitempty"`
	Project             string   `json:"project,omitempty"`
	ScheduleInfo        string   `json:"scheduleInfo,omitempty"`
	MultiSession        bool     `json:"isMultiSession,omitempty"`
	SpecialRequirements string   `json:"specialRequirements,omitempty"`
	Attachments         []string `json:"attachmentUrls,omitempty"`
	Prerequisites       []string `json:"prerequisites,omitempty"`
}

// Patch is a partial update. Nil fields are left untouched; id and
// createdAt are immutable and have no patch fields.
type Patch struct {
	Title               *string   `json:"title,omitempty"`
	Date                *string   `json:"date,omitempty"`
	Status              *Status   `json:"status,omitempty"`
	SortIndex           *int      `json:"sortIndex,omitempty"`
	Assignee            *string   `json:"assignee,omitempty"`
	Difficulty          *int      `json:"difficulty,omitempty"`
	NextAction          *string   `json:"nextAction,omitempty"`
	Plan                *string   `json:"plan,omitempty"`
	Project             *string   `json:"project,omitempty"`
	ScheduleInfo        *string   `json:"scheduleInfo,omitempty"`
	MultiSession        *bool     `json:"isMultiSession,omitempty"`
	SpecialRequirements *string   `json:"specialRequirements,omitempty"`
	Attachments         *[]string `json:"attachmentUrls,omitempty"`
	Prerequisites       *[]string `json:"prerequisites,omitempty"`
}

// Apply merges the non-nil patch fields into t.
func (p Patch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.SortIndex != nil {
		t.SortIndex = *p.SortIndex
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.Difficulty != nil {
		t.Difficulty = *p.Difficulty
	}
	if p.NextAction != nil {
		t.NextAction = *p.NextAction
	}
	if p.Plan != nil {
		t.Plan = *p.Plan
	}
	if p.Project != nil {
		t.Project = *p.Project
	}
	if p.ScheduleInfo != nil {
		t.ScheduleInfo = *p.ScheduleInfo
	}
	if p.MultiSession != nil {
		t.MultiSession = *p.MultiSession
	}
	if p.SpecialRequirements != nil {
		t.SpecialRequirements = *p.SpecialRequirements
	}
	if p.Attachments != nil {
		t.Attachments = append([]string(nil), *p.Attachments...)
	}
	if p.Prerequisites != nil {
		t.Prerequisites = append([]string(nil), *p.Prerequisites...)
	}
}

// Redates reports whether the patch moves the task off the given date.
func (p Patch) Redates(from string) bool {
	return p.Date != nil && *p.Date != from
}
