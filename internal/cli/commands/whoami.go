package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/auth"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently authenticated admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(envName)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runWhoami(envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	if err := requireToken(env, auth.Default); err != nil {
		return err
	}

	api := newAPIClient(env, auth.Default)
	me, err := api.Me(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Username: %s\n", me.Username)
	fmt.Printf("Email:    %s\n", me.Email)
	fmt.Printf("Verified: %t\n", me.IsEmailVerified)
	fmt.Printf("Since:    %s\n", formatTime(me.CreatedAt))
	return nil
}
