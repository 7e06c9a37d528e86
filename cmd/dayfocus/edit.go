package main

import (
	"fmt"

	"github.com/dayfocus/dayfocus/internal/task"
	"github.com/spf13/cobra"
)

var editFlags struct {
	title        string
	date         string
	status       string
	assignee     string
	plan         string
	project      string
	scheduleInfo string
	nextAction   string
}

var editCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Edit fields of a task",
	Long: `Apply a partial update to a task. Only the flags you pass are
changed. Moving a task to another day re-appends it at the end of that
day's ordering.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editFlags.title, "title", "", "New title")
	editCmd.Flags().StringVarP(&editFlags.date, "date", "d", "", "Move to this day (YYYY-MM-DD)")
	editCmd.Flags().StringVarP(&editFlags.status, "status", "s", "", "New status (open, completed, abandoned)")
	editCmd.Flags().StringVar(&editFlags.assignee, "assignee", "", "New assignee")
	editCmd.Flags().StringVar(&editFlags.plan, "plan", "", "New plan notes")
	editCmd.Flags().StringVar(&editFlags.project, "project", "", "New project label")
	editCmd.Flags().StringVar(&editFlags.scheduleInfo, "schedule", "", "New scheduling hint")
	editCmd.Flags().StringVar(&editFlags.nextAction, "next-action", "", "New next action")
}

func runEdit(cmd *cobra.Command, args []string) error {
	var patch task.Patch
	changed := false

	set := func(flag string, dst **string, val string) {
		if cmd.Flags().Changed(flag) {
			v := val
			*dst = &v
			changed = true
		}
	}
	set("title", &patch.Title, editFlags.title)
	set("date", &patch.Date, editFlags.date)
	set("assignee", &patch.Assignee, editFlags.assignee)
	set("plan", &patch.Plan, editFlags.plan)
	set("project", &patch.Project, editFlags.project)
	set("schedule", &patch.ScheduleInfo, editFlags.scheduleInfo)
	set("next-action", &patch.NextAction, editFlags.nextAction)

	if cmd.Flags().Changed("status") {
		st, err := task.ParseStatus(editFlags.status)
		if err != nil {
			return err
		}
		patch.Status = &st
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to change: pass at least one field flag")
	}

	rt, err := openRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.Close()

	updated, err := rt.repo.Update(cmd.Context(), args[0], rt.userID, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated %s (%s %s, position %d)\n", updated.ID, updated.Date, updated.Status, updated.SortIndex)
	return nil
}
