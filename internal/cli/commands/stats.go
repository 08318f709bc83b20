package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/auth"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(envName)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runStats(envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	if err := requireToken(env, auth.Default); err != nil {
		return err
	}

	api := newAPIClient(env, auth.Default)
	stats, err := api.DashboardStats(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Applications: %d (%d active, %d inactive)\n",
		stats.TotalApps, stats.ActiveApps, stats.InactiveApps)
	fmt.Printf("Total users:  %d\n", stats.TotalUsers)
	return nil
}
