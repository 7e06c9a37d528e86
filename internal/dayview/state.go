// Package dayview reconciles the task list shown for one calendar day with
// the repository's durable operations. Mutations apply optimistically and
// roll back when persistence fails, so the list always settles to either
// the confirmed state or the last known-good snapshot.
package dayview

import (
	"time"

	"github.com/dayfocus/dayfocus/internal/task"
)

// Filter narrows the visible list by status without touching the
// underlying collection.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterOpen      Filter = Filter(task.StatusOpen)
	FilterCompleted Filter = Filter(task.StatusCompleted)
	FilterAbandoned Filter = Filter(task.StatusAbandoned)
)

// NextFilter cycles all → open → completed → abandoned → all.
func NextFilter(f Filter) Filter {
	switch f {
	case FilterAll:
		return FilterOpen
	case FilterOpen:
		return FilterCompleted
	case FilterCompleted:
		return FilterAbandoned
	default:
		return FilterAll
	}
}

// Event is a state transition input. The reducer is pure: every input it
// needs, including the clock, rides on the event.
type Event interface{ isEvent() }

// LoadStarted begins loading the list for a date.
type LoadStarted struct{ Date string }

// LoadSucceeded replaces the list with freshly loaded tasks.
type LoadSucceeded struct{ Tasks []task.Task }

// LoadFailed records a load error. The previously loaded list stays
// visible, stale but consistent.
type LoadFailed struct{ Reason string }

// AddCommitted folds a repository-confirmed task into the list, but only
// when its date matches the displayed one.
type AddCommitted struct{ Task task.Task }

// AddFailed records a create error. Nothing was shown optimistically, so
// there is nothing to revert.
type AddFailed struct{ Reason string }

// MutationStaged applies an optimistic update or delete ahead of the
// repository call, snapshotting the list for rollback. A patch that moves
// the task off the displayed date removes it from view immediately.
type MutationStaged struct {
	ID     string
	Patch  task.Patch
	Delete bool
	Now    time.Time
}

// MutationCommitted confirms the staged mutation; the optimistic state
// already reflects reality and the snapshot is dropped.
type MutationCommitted struct{}

// MutationRolledBack restores the pre-mutation snapshot.
type MutationRolledBack struct{ Reason string }

func (LoadStarted) isEvent()        {}
func (LoadSucceeded) isEvent()      {}
func (LoadFailed) isEvent()         {}
func (AddCommitted) isEvent()       {}
func (AddFailed) isEvent()          {}
func (MutationStaged) isEvent()     {}
func (MutationCommitted) isEvent()  {}
func (MutationRolledBack) isEvent() {}

// State is the view-facing list state for the current date. It is mutated
// only through Apply.
type State struct {
	Date    string
	Tasks   []task.Task
	Loading bool
	Err     string

	// snapshot holds the pre-mutation list while a mutation is pending.
	snapshot []task.Task
}

// Apply reduces an event into the state.
func (s *State) Apply(e Event) {
	switch e := e.(type) {
	case LoadStarted:
		s.Date = e.Date
		s.Loading = true
		s.Err = ""

	case LoadSucceeded:
		s.Tasks = e.Tasks
		s.Loading = false

	case LoadFailed:
		// Keep whatever was last successfully loaded.
		s.Err = e.Reason
		s.Loading = false

	case AddCommitted:
		if e.Task.Date != s.Date {
			return
		}
		s.Tasks = append(s.Tasks, e.Task)
		task.SortByIndex(s.Tasks)

	case AddFailed:
		s.Err = e.Reason

	case MutationStaged:
		s.snapshot = task.CloneAll(s.Tasks)
		s.stage(e)

	case MutationCommitted:
		s.snapshot = nil

	case MutationRolledBack:
		if s.snapshot != nil {
			s.Tasks = s.snapshot
			s.snapshot = nil
		}
		s.Err = e.Reason
	}
}

func (s *State) stage(e MutationStaged) {
	if e.Delete || e.Patch.Redates(s.Date) {
		for i, t := range s.Tasks {
			if t.ID == e.ID {
				s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
				return
			}
		}
		return
	}

	for i := range s.Tasks {
		if s.Tasks[i].ID == e.ID {
			e.Patch.Apply(&s.Tasks[i])
			s.Tasks[i].UpdatedAt = e.Now
			return
		}
	}
}

// Visible returns the tasks matching the filter, in display order.
func (s *State) Visible(f Filter) []task.Task {
	if f == FilterAll {
		return task.CloneAll(s.Tasks)
	}
	out := make([]task.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if Filter(t.Status) == f {
			out = append(out, t.Clone())
		}
	}
	return out
}
