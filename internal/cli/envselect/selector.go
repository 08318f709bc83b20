package envselect

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/authx-dev/authx/internal/cli/config"
	"github.com/authx-dev/authx/internal/cli/userconfig"
)

// ResolveEnvironment determines which environment to use based on the
// following priority:
// 1. If nameFlag is provided, use that environment
// 2. If the user has a selected environment in their local config, use that
// 3. If only one environment exists in the project config, use that
// 4. Otherwise, prompt the user to select interactively
func ResolveEnvironment(projectConfig *config.Config, nameFlag string) (*config.Environment, error) {
	if nameFlag != "" {
		return projectConfig.GetEnvironmentByName(nameFlag)
	}

	selected, err := userconfig.GetSelectedEnvironment()
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if selected != "" {
		env, err := projectConfig.GetEnvironmentByName(selected)
		if err != nil {
			// Selected environment no longer exists, clear it and continue
			_ = userconfig.SetSelectedEnvironment("")
		} else {
			return env, nil
		}
	}

	if len(projectConfig.Environments) == 1 {
		env := &projectConfig.Environments[0]
		if err := userconfig.SetSelectedEnvironment(env.Name); err != nil {
			fmt.Printf("Warning: failed to save selected environment: %v\n", err)
		}
		return env, nil
	}

	return PromptEnvironment(projectConfig)
}

// PromptEnvironment asks the user to pick an environment interactively and
// remembers the choice.
func PromptEnvironment(projectConfig *config.Config) (*config.Environment, error) {
	if len(projectConfig.Environments) == 0 {
		return nil, fmt.Errorf("no environments configured in %s", config.ConfigFileName)
	}

	items := make([]string, len(projectConfig.Environments))
	for i, env := range projectConfig.Environments {
		items[i] = fmt.Sprintf("%s (%s)", env.Name, env.APIURL)
	}

	prompt := promptui.Select{
		Label: "Select environment",
		Items: items,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("environment selection cancelled: %w", err)
	}

	env := &projectConfig.Environments[index]
	if err := userconfig.SetSelectedEnvironment(env.Name); err != nil {
		fmt.Printf("Warning: failed to save selected environment: %v\n", err)
	}

	return env, nil
}
