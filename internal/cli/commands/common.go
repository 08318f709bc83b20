package commands

import (
	"fmt"
	"time"

	"github.com/authx-dev/authx/internal/authx"
	"github.com/authx-dev/authx/internal/cli/auth"
	"github.com/authx-dev/authx/internal/cli/config"
	"github.com/authx-dev/authx/internal/cli/envselect"
)

// getSelectedEnvironment loads the config and resolves which environment
// to talk to. This is common logic used by most commands.
func getSelectedEnvironment(nameFlag string) (*config.Environment, error) {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w\nRun 'authx init' to create a configuration file", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return envselect.ResolveEnvironment(cfg, nameFlag)
}

// newAPIClient builds an SDK client for the environment whose bearer token
// comes from the token store.
func newAPIClient(env *config.Environment, store auth.TokenStore) *authx.Client {
	return authx.New(env.APIURL, authx.WithTokenSource(authx.TokenFunc(func() (string, bool) {
		token, err := store.LoadToken(env.APIURL)
		if err != nil || token == "" {
			return "", false
		}
		return token, true
	})))
}

// requireToken fails fast with a login hint when no token is stored,
// instead of letting the API answer 401.
func requireToken(env *config.Environment, store auth.TokenStore) error {
	_, err := store.LoadToken(env.APIURL)
	return err
}

// formatTime renders API timestamps for table output.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
