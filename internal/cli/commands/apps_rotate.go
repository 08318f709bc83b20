package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/auth"
)

func newAppsRotateSecretCmd() *cobra.Command {
	var envName string
	var force bool

	cmd := &cobra.Command{
		Use:   "rotate-secret <client-id>",
		Short: "Rotate an application's client secret",
		Long: `Rotate an application's client secret. The old secret stops working
immediately and the new one is printed exactly once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppsRotateSecret(args[0], force, envName)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runAppsRotateSecret(clientID string, force bool, envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	if err := requireToken(env, auth.Default); err != nil {
		return err
	}

	if !force {
		fmt.Println("Rotating invalidates the current secret; every backend using it must be updated.")
		fmt.Print("Continue? (y/N): ")
		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "y" && confirmation != "Y" {
			return fmt.Errorf("aborted")
		}
	}

	api := newAPIClient(env, auth.Default)
	creds, err := api.RotateSecret(context.Background(), clientID)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Secret rotated for %s\n\n", creds.ClientID)
	fmt.Printf("  New client secret: %s\n\n", creds.ClientSecret)
	fmt.Println("Store it now - it will not be shown again.")
	return nil
}
