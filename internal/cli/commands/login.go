package commands

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/authx-dev/authx/internal/cli/auth"
	"github.com/authx-dev/authx/internal/cli/config"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password, envName string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with an AuthX environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, password, envName)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set AUTHX_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set AUTHX_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runLogin(email, password, envName string) error {
	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("AUTHX_EMAIL")
	}
	if password == "" {
		password = os.Getenv("AUTHX_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or AUTHX_EMAIL env var)")
	}

	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or AUTHX_PASSWORD env var)")
		}
	}

	fmt.Printf("Logging in to %s (%s)...\n", env.Name, env.APIURL)

	return loginToEnvironment(env, auth.Default, email, password)
}

// loginToEnvironment performs the credential exchange and persists the
// returned token. Split out so tests can inject a token store and a test
// server URL.
func loginToEnvironment(env *config.Environment, store auth.TokenStore, email, password string) error {
	api := newAPIClient(env, store)

	token, err := api.Login(context.Background(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := store.SaveToken(env.APIURL, token.AccessToken); err != nil {
		return fmt.Errorf("failed to save authentication token: %w", err)
	}

	me, err := api.Me(context.Background())
	if err != nil {
		return fmt.Errorf("login succeeded but fetching the account failed: %w", err)
	}

	fmt.Println("✓ Login successful!")
	fmt.Printf("  Account: %s (%s)\n", me.Username, me.Email)
	if !me.IsEmailVerified {
		fmt.Println("  Note: email not verified yet - run 'authx verify-email <token>' once you receive it")
	}

	return nil
}
