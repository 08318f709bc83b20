package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/authx"
	"github.com/authx-dev/authx/internal/cli/auth"
)

// NewIntrospectCmd creates the introspect command
func NewIntrospectCmd() *cobra.Command {
	var envName, clientID, clientSecret string
	var local bool

	cmd := &cobra.Command{
		Use:   "introspect <token>",
		Short: "Check whether an end-user token is active",
		Long: `Check whether an end-user token is active, using the application's
client credentials. Intended for backend integrators debugging their
AuthX setup.

With --local the token's claims are additionally decoded on the client,
WITHOUT signature verification, for quick inspection. Only the API's
answer says anything about validity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntrospect(args[0], clientID, clientSecret, local, envName)
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "Application client ID (or set AUTHX_CLIENT_ID)")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "Application client secret (or set AUTHX_CLIENT_SECRET)")
	cmd.Flags().BoolVar(&local, "local", false, "Also decode claims locally without verification")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runIntrospect(token, clientID, clientSecret string, local bool, envName string) error {
	if clientID == "" {
		clientID = os.Getenv("AUTHX_CLIENT_ID")
	}
	if clientSecret == "" {
		clientSecret = os.Getenv("AUTHX_CLIENT_SECRET")
	}
	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("client credentials are required (use --client-id/--client-secret or AUTHX_CLIENT_ID/AUTHX_CLIENT_SECRET)")
	}

	env, err := getSelectedEnvironment(envName)
	if err != nil {
		return err
	}

	api := newAPIClient(env, auth.Default)
	result, err := api.Introspect(context.Background(), authx.ClientCredentials{
		ID:     clientID,
		Secret: clientSecret,
	}, token)
	if err != nil {
		return err
	}

	fmt.Printf("Active:  %t\n", result.Active)
	if result.Active {
		fmt.Printf("Subject: %s\n", result.Subject)
		fmt.Printf("Email:   %s\n", result.Email)
		fmt.Printf("Expires: %s\n", time.Unix(result.ExpiresAt, 0).Local().Format(time.RFC3339))
	}

	if local {
		printUnverifiedClaims(token)
	}

	return nil
}

// printUnverifiedClaims decodes the token payload without checking the
// signature. Display-only; the introspection response above is the
// authoritative answer.
func printUnverifiedClaims(token string) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		fmt.Printf("\nCould not decode token locally: %v\n", err)
		return
	}

	fmt.Println("\nLocal claims (NOT verified):")
	for key, value := range claims {
		fmt.Printf("  %s: %v\n", key, value)
	}
}
