package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayfocus/dayfocus/internal/suggest"
	"github.com/dayfocus/dayfocus/internal/task"
)

var flagSuggestApply bool

var suggestCmd = &cobra.Command{
	Use:   "suggest <task-id>",
	Short: "Suggest a next action for a task",
	Long: `Propose a concrete next action for a task based on its title.
With --apply the suggestion is saved as the task's next action.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		t, err := rt.repo.Get(cmd.Context(), args[0], rt.userID)
		if err != nil {
			return err
		}

		res := suggest.Rules{}.SuggestNextAction(cmd.Context(), t.Title).Or(suggest.Fallback())
		fmt.Printf("Task:       %s\n", t.Title)
		fmt.Printf("Suggestion: %s\n", res.Suggestion)
		fmt.Printf("Rationale:  %s\n", res.Rationale)

		if !flagSuggestApply {
			return nil
		}
		next := res.Suggestion
		if _, err := rt.repo.Update(cmd.Context(), t.ID, rt.userID, task.Patch{NextAction: &next}); err != nil {
			return err
		}
		fmt.Printf("Applied as next action for %s\n", t.ID)
		return nil
	},
}

func init() {
	suggestCmd.Flags().BoolVar(&flagSuggestApply, "apply", false, "save the suggestion as the task's next action")
}
