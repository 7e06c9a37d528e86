package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dayfocus/dayfocus/internal/task"
	"github.com/spf13/cobra"
)

var addFlags struct {
	date         string
	assignee     string
	difficulty   int
	plan         string
	project      string
	scheduleInfo string
	multiSession bool
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Long: `Add a task to a calendar day (default: today). The task starts open
and is appended to the end of that day's ordering.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFlags.date, "date", "d", "", "Day for the task (YYYY-MM-DD, default: today)")
	addCmd.Flags().StringVar(&addFlags.assignee, "assignee", "", "Assignee")
	addCmd.Flags().IntVar(&addFlags.difficulty, "difficulty", 0, "Difficulty 1-5")
	addCmd.Flags().StringVar(&addFlags.plan, "plan", "", "Free-form plan notes")
	addCmd.Flags().StringVar(&addFlags.project, "project", "", "Project label")
	addCmd.Flags().StringVar(&addFlags.scheduleInfo, "schedule", "", "Scheduling hint, e.g. 'After 3 PM'")
	addCmd.Flags().BoolVar(&addFlags.multiSession, "multi-session", false, "Mark as spanning multiple work sessions")
}

func runAdd(cmd *cobra.Command, args []string) error {
	date := addFlags.date
	if date == "" {
		date = task.FormatDate(time.Now())
	}
	if addFlags.difficulty < 0 || addFlags.difficulty > 5 {
		return fmt.Errorf("difficulty must be between 1 and 5")
	}

	rt, err := openRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.Close()

	created, err := rt.repo.Create(cmd.Context(), rt.userID, task.CreateParams{
		Title:        strings.Join(args, " "),
		Date:         date,
		Assignee:     addFlags.assignee,
		Difficulty:   addFlags.difficulty,
		Plan:         addFlags.plan,
		Project:      addFlags.project,
		ScheduleInfo: addFlags.scheduleInfo,
		MultiSession: addFlags.multiSession,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s (%s, position %d)\n", created.ID, created.Date, created.SortIndex)
	return nil
}
