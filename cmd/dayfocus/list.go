package main

import (
	"fmt"
	"time"

	"github.com/dayfocus/dayfocus/internal/task"
	"github.com/spf13/cobra"
)

var listFlags struct {
	date   string
	status string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks for a calendar day",
	Long: `List the acting user's tasks for one calendar day, ordered the way
the day view shows them. Defaults to today.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFlags.date, "date", "d", "", "Day to list (YYYY-MM-DD, default: today)")
	listCmd.Flags().StringVarP(&listFlags.status, "status", "s", "", "Only show tasks with this status (open, completed, abandoned)")
}

func runList(cmd *cobra.Command, args []string) error {
	date := listFlags.date
	if date == "" {
		date = task.FormatDate(time.Now())
	}
	if _, err := task.ParseDate(date); err != nil {
		return err
	}

	var statusFilter task.Status
	if listFlags.status != "" {
		st, err := task.ParseStatus(listFlags.status)
		if err != nil {
			return err
		}
		statusFilter = st
	}

	rt, err := openRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.Close()

	tasks, err := rt.repo.List(cmd.Context(), rt.userID, date)
	if err != nil {
		return err
	}

	fmt.Printf("%s — %s\n", task.DisplayDate(date, time.Now()), rt.userID)
	shown := 0
	for _, t := range tasks {
		if statusFilter != "" && t.Status != statusFilter {
			continue
		}
		shown++
		fmt.Printf("  %s %-40s  %s", glyph(t.Status), t.Title, t.ID)
		if t.Project != "" {
			fmt.Printf("  (%s)", t.Project)
		}
		if t.NextAction != "" {
			fmt.Printf("  → %s", t.NextAction)
		}
		fmt.Println()
	}
	if shown == 0 {
		fmt.Println("  no tasks")
	}
	return nil
}

func glyph(s task.Status) string {
	switch s {
	case task.StatusCompleted:
		return "✓"
	case task.StatusAbandoned:
		return "✗"
	default:
		return "○"
	}
}
