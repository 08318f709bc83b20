package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/authx"
	"github.com/authx-dev/authx/internal/cli/auth"
)

func newAppsCreateCmd() *cobra.Command {
	var envName string
	var jwtExpiryMinutes int

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Register a new application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppsCreate(args[0], jwtExpiryMinutes, envName)
		},
	}

	cmd.Flags().IntVar(&jwtExpiryMinutes, "jwt-expiry", 60, "Token lifetime in minutes for end users of this application")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runAppsCreate(name string, jwtExpiryMinutes int, envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	if err := requireToken(env, auth.Default); err != nil {
		return err
	}

	api := newAPIClient(env, auth.Default)
	creds, err := api.CreateApplication(context.Background(), authx.CreateApplicationRequest{
		AppName:          name,
		JWTExpiryMinutes: jwtExpiryMinutes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Application %q created\n\n", creds.AppName)
	fmt.Printf("  Client ID:     %s\n", creds.ClientID)
	fmt.Printf("  Client secret: %s\n\n", creds.ClientSecret)
	fmt.Println("Store the client secret now - it will not be shown again.")
	return nil
}
