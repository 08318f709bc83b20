package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/authx"
	"github.com/authx-dev/authx/internal/cli/auth"
)

func newAppsUpdateCmd() *cobra.Command {
	var envName string
	var name, otpType, resetStrategy string
	var jwtExpiry, otpLength, otpExpiry, magicLinkExpiry int
	var active bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an application's settings",
		Long: `Update an application's settings. Only flags you pass are changed;
everything else keeps its current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only send fields whose flags were actually set, so the API
			// leaves the rest untouched.
			var update authx.ApplicationUpdate
			if cmd.Flags().Changed("name") {
				update.AppName = &name
			}
			if cmd.Flags().Changed("jwt-expiry") {
				update.JWTExpiryMinutes = &jwtExpiry
			}
			if cmd.Flags().Changed("active") {
				update.IsActive = &active
			}
			if cmd.Flags().Changed("otp-length") {
				update.OTPLength = &otpLength
			}
			if cmd.Flags().Changed("otp-type") {
				update.OTPType = &otpType
			}
			if cmd.Flags().Changed("otp-expiry") {
				update.OTPExpiryMinutes = &otpExpiry
			}
			if cmd.Flags().Changed("magic-link-expiry") {
				update.MagicLinkExpiryMinutes = &magicLinkExpiry
			}
			if cmd.Flags().Changed("reset-strategy") {
				update.PasswordResetStrategy = &resetStrategy
			}
			return runAppsUpdate(args[0], update, envName)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Application name")
	cmd.Flags().IntVar(&jwtExpiry, "jwt-expiry", 0, "Token lifetime in minutes")
	cmd.Flags().BoolVar(&active, "active", true, "Whether the application accepts logins")
	cmd.Flags().IntVar(&otpLength, "otp-length", 0, "OTP code length")
	cmd.Flags().StringVar(&otpType, "otp-type", "", "OTP alphabet: NUMERIC or ALPHANUMERIC")
	cmd.Flags().IntVar(&otpExpiry, "otp-expiry", 0, "OTP lifetime in minutes")
	cmd.Flags().IntVar(&magicLinkExpiry, "magic-link-expiry", 0, "Magic link lifetime in minutes")
	cmd.Flags().StringVar(&resetStrategy, "reset-strategy", "", "Password reset strategy: OTP or MAGIC_LINK")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runAppsUpdate(id string, update authx.ApplicationUpdate, envName string) error {
	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	if err := requireToken(env, auth.Default); err != nil {
		return err
	}

	api := newAPIClient(env, auth.Default)
	app, err := api.UpdateApplication(context.Background(), id, update)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Application %q updated\n", app.AppName)
	return nil
}
