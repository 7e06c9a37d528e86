package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/dayfocus/dayfocus/internal/logger"
	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

var flagUser string

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dayfocus",
	Short: "Single-user daily task tracker with embedded persistence",
	Long: `dayfocus tracks tasks one calendar day at a time. Tasks live in an
embedded NATS JetStream key/value store partitioned per user, so nothing
leaves your machine. Run with no arguments to open the day view TUI, or use
the subcommands for scripting.`,
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "User id (overrides the configured user)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
