package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/auth"
)

func newAppsGetCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show an application's settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppsGet(args[0], envName)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runAppsGet(id, envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	if err := requireToken(env, auth.Default); err != nil {
		return err
	}

	api := newAPIClient(env, auth.Default)
	app, err := api.Application(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Printf("Name:              %s\n", app.AppName)
	fmt.Printf("ID:                %s\n", app.ID)
	fmt.Printf("Client ID:         %s\n", app.ClientID)
	fmt.Printf("Active:            %t\n", app.IsActive)
	fmt.Printf("JWT expiry:        %dm\n", app.JWTExpiryMinutes)
	fmt.Printf("Reset strategy:    %s\n", app.PasswordResetStrategy)
	fmt.Printf("OTP:               %d digits, %s, expires %dm\n", app.OTPLength, app.OTPType, app.OTPExpiryMinutes)
	fmt.Printf("Magic link expiry: %dm\n", app.MagicLinkExpiryMinutes)
	fmt.Printf("Created:           %s\n", formatTime(app.CreatedAt))
	return nil
}
