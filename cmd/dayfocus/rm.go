package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Delete a task",
	Long:  `Delete a task permanently. There is no undo.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		id, err := rt.repo.Delete(cmd.Context(), args[0], rt.userID)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", id)
		return nil
	},
}
