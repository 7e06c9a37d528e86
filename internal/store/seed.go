package store

import (
	"time"

	"github.com/dayfocus/dayfocus/internal/task"
)

// Seed returns the example collection a user starts with: three tasks for
// today, two for yesterday and one for tomorrow, exercising every status.
// The ids are fixed so repeated fresh loads produce the same set.
func Seed(now time.Time) []task.Task {
	today := task.FormatDate(now)
	yesterday := task.FormatDate(now.AddDate(0, 0, -1))
	tomorrow := task.FormatDate(now.AddDate(0, 0, 1))

	return []task.Task{
		{
			ID: "1", Title: "Review PR for feature X", Date: today,
			Status: task.StatusOpen, SortIndex: 1,
			Difficulty: 3, Project: "Project Phoenix",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "2", Title: "Draft weekly report", Date: today,
			Status: task.StatusOpen, SortIndex: 2,
			Assignee: "Me", NextAction: "Gather metrics",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "3", Title: "Call the vet for appointment", Date: today,
			Status: task.StatusCompleted, SortIndex: 3,
			ScheduleInfo: "After 3 PM",
			CreatedAt:    now, UpdatedAt: now,
		},
		{
			ID: "4", Title: "Plan Q3 roadmap", Date: yesterday,
			Status: task.StatusCompleted, SortIndex: 1,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "5", Title: "Fix bug #1234", Date: yesterday,
			Status: task.StatusAbandoned, SortIndex: 2,
			Plan:      "Was not a bug, user error.",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "6", Title: "Prepare for sprint planning", Date: tomorrow,
			Status: task.StatusOpen, SortIndex: 1,
			CreatedAt: now, UpdatedAt: now,
		},
	}
}
