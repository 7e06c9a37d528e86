package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayfocus/dayfocus/internal/config"
	"github.com/dayfocus/dayfocus/internal/identity"
)

var flagIDToken string

var loginCmd = &cobra.Command{
	Use:   "login [user-id]",
	Short: "Set the active user",
	Long: `Record the user id that task storage is partitioned by. Pass the id
directly, or pass --id-token with a verified OpenID Connect ID token to
take the id from its subject claim.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var userID, name string
		switch {
		case flagIDToken != "":
			claims, err := identity.DecodeIDToken(flagIDToken)
			if err != nil {
				return err
			}
			userID, name = claims.Sub, claims.Name
		case len(args) == 1 && args[0] != "":
			userID = args[0]
		default:
			return fmt.Errorf("pass a user id or --id-token")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.User = userID
		if err := config.WriteGlobal(cfg); err != nil {
			return err
		}

		if name != "" {
			fmt.Printf("Logged in as %s (%s)\n", name, userID)
		} else {
			fmt.Printf("Logged in as %s\n", userID)
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the active user",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.User == "" {
			fmt.Println("No user set")
			return nil
		}
		cfg.User = ""
		if err := config.WriteGlobal(cfg); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&flagIDToken, "id-token", "", "verified ID token to take the user id from")
}
