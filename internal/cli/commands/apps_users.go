package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/auth"
)

func newAppsUsersCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "users <id>",
		Short: "List the end users registered under an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppsUsers(args[0], envName)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runAppsUsers(id, envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	if err := requireToken(env, auth.Default); err != nil {
		return err
	}

	api := newAPIClient(env, auth.Default)
	users, err := api.ApplicationUsers(context.Background(), id)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users registered under this application yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "USERNAME\tEMAIL\tVERIFIED\tJOINED")
	fmt.Fprintln(w, "────────\t─────\t────────\t──────")

	for _, user := range users {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n",
			user.Username,
			user.Email,
			user.IsEmailVerified,
			formatTime(user.CreatedAt),
		)
	}

	return w.Flush()
}
