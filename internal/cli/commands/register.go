package commands

import (
	"context"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/authx-dev/authx/internal/authx"
	"github.com/authx-dev/authx/internal/cli/auth"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var username, email, password, envName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(username, email, password, envName)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username for the new account")
	cmd.Flags().StringVar(&email, "email", "", "Email address for the new account")
	cmd.Flags().StringVar(&password, "password", "", "Password (will prompt if not provided)")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runRegister(username, email, password, envName string) error {
	if username == "" {
		return fmt.Errorf("username is required (use --username)")
	}
	if email == "" {
		return fmt.Errorf("email is required (use --email)")
	}

	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	if password == "" {
		if !term.IsTerminal(int(syscall.Stdin)) {
			return fmt.Errorf("password is required in non-interactive mode (use --password)")
		}
		fmt.Print("Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(bytePassword)
		fmt.Println()
	}

	api := newAPIClient(env, auth.Default)
	msg, err := api.Register(context.Background(), authx.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s\n", msg.Message)
	fmt.Println("Check your inbox for a verification email, then run 'authx login'.")
	return nil
}
