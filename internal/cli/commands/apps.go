package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/auth"
)

// NewAppsCmd creates the apps command group
func NewAppsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apps",
		Short: "Manage client applications",
	}

	cmd.AddCommand(newAppsListCmd())
	cmd.AddCommand(newAppsCreateCmd())
	cmd.AddCommand(newAppsGetCmd())
	cmd.AddCommand(newAppsUpdateCmd())
	cmd.AddCommand(newAppsDeleteCmd())
	cmd.AddCommand(newAppsRotateSecretCmd())
	cmd.AddCommand(newAppsUsersCmd())

	return cmd
}

func newAppsListCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List all applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppsList(envName)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runAppsList(envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	if err := requireToken(env, auth.Default); err != nil {
		return err
	}

	api := newAPIClient(env, auth.Default)
	apps, err := api.Applications(context.Background())
	if err != nil {
		return err
	}

	if len(apps) == 0 {
		fmt.Println("No applications found.")
		fmt.Println("\nCreate one with: authx apps create <name>")
		return nil
	}

	fmt.Printf("Applications on %s (%s):\n\n", env.Name, env.APIURL)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCLIENT ID\tACTIVE\tJWT EXPIRY\tCREATED")
	fmt.Fprintln(w, "────\t─────────\t──────\t──────────\t───────")

	for _, app := range apps {
		fmt.Fprintf(w, "%s\t%s\t%t\t%dm\t%s\n",
			app.AppName,
			app.ClientID,
			app.IsActive,
			app.JWTExpiryMinutes,
			formatTime(app.CreatedAt),
		)
	}

	return w.Flush()
}
