package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/auth"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token for an environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(envName)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runLogout(envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	if err := auth.Default.DeleteToken(env.APIURL); err != nil {
		return err
	}

	fmt.Printf("Logged out of %s\n", env.Name)
	return nil
}
