package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dayfocus/dayfocus/internal/dayview"
	"github.com/dayfocus/dayfocus/internal/suggest"
	"github.com/dayfocus/dayfocus/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.Close()

	ctrl := dayview.NewController(rt.repo, rt.userID)
	app := tui.NewApp(ctrl, suggest.Rules{})

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
