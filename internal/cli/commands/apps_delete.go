package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/auth"
)

func newAppsDeleteCmd() *cobra.Command {
	var envName string
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an application and all of its users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppsDelete(args[0], force, envName)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runAppsDelete(id string, force bool, envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	if err := requireToken(env, auth.Default); err != nil {
		return err
	}

	if !force {
		fmt.Printf("This permanently deletes the application and every user registered under it.\n")
		fmt.Printf("Type the application id (%s) to confirm: ", id)
		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != id {
			return fmt.Errorf("confirmation did not match, aborting")
		}
	}

	api := newAPIClient(env, auth.Default)
	msg, err := api.DeleteApplication(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s\n", msg.Message)
	return nil
}
