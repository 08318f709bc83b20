package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/auth"
)

// NewForgotPasswordCmd creates the forgot-password command
func NewForgotPasswordCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "forgot-password <email>",
		Short: "Request a password reset email for an admin account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForgotPassword(args[0], envName)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runForgotPassword(email, envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	api := newAPIClient(env, auth.Default)
	msg, err := api.ForgotPassword(context.Background(), email)
	if err != nil {
		return err
	}

	// The API answers identically whether or not the account exists.
	fmt.Println(msg.Message)
	return nil
}
