package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/config"
	"github.com/authx-dev/authx/internal/cli/envselect"
)

// NewSelectEnvCmd creates the select-env command
func NewSelectEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select-env",
		Short: "Choose which environment subsequent commands talk to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelectEnv()
		},
	}
}

func runSelectEnv() error {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'authx init' to create a configuration file", err)
	}

	env, err := envselect.PromptEnvironment(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Selected %s (%s)\n", env.Name, env.APIURL)
	return nil
}
