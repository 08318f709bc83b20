package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/commands"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "authx",
	Short: "AuthX - Authentication as a service",
	Long: `AuthX CLI - Manage your AuthX applications from the terminal.

AuthX handles signup, login, password reset, and email verification for
your applications; this CLI drives the same admin API the dashboard uses.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("authx version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewAppsCmd())
	rootCmd.AddCommand(commands.NewStatsCmd())
	rootCmd.AddCommand(commands.NewForgotPasswordCmd())
	rootCmd.AddCommand(commands.NewResetPasswordCmd())
	rootCmd.AddCommand(commands.NewVerifyEmailCmd())
	rootCmd.AddCommand(commands.NewIntrospectCmd())
	rootCmd.AddCommand(commands.NewSelectEnvCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
