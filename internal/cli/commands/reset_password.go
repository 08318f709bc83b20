package commands

import (
	"context"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/authx-dev/authx/internal/cli/auth"
)

// NewResetPasswordCmd creates the reset-password command
func NewResetPasswordCmd() *cobra.Command {
	var envName, newPassword string

	cmd := &cobra.Command{
		Use:   "reset-password <magic-link-token>",
		Short: "Complete an admin password reset with a magic-link token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResetPassword(args[0], newPassword, envName)
		},
	}

	cmd.Flags().StringVar(&newPassword, "new-password", "", "New password (will prompt if not provided)")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runResetPassword(token, newPassword, envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	if newPassword == "" {
		if !term.IsTerminal(int(syscall.Stdin)) {
			return fmt.Errorf("new password is required in non-interactive mode (use --new-password)")
		}
		fmt.Print("New password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		newPassword = string(bytePassword)
		fmt.Println()
	}

	api := newAPIClient(env, auth.Default)
	msg, err := api.ResetPasswordMagicLink(context.Background(), token, newPassword)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s\n", msg.Message)
	return nil
}
