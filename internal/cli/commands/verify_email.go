package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/auth"
)

// NewVerifyEmailCmd creates the verify-email command
func NewVerifyEmailCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "verify-email <token>",
		Short: "Confirm an admin email address with a verification token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerifyEmail(args[0], envName)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runVerifyEmail(token, envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	api := newAPIClient(env, auth.Default)
	msg, err := api.VerifyEmail(context.Background(), token)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s\n", msg.Message)
	return nil
}
