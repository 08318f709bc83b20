package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/authx-dev/authx/internal/cli/config"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a starter authx.json configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}
}

func runInit() error {
	if _, err := os.Stat(config.ConfigFileName); err == nil {
		return fmt.Errorf("%s already exists in the current directory", config.ConfigFileName)
	}

	if err := config.Save(config.ConfigFileName, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", config.ConfigFileName)
	fmt.Println("Edit it to point at your AuthX deployments, then run 'authx login'.")
	return nil
}
