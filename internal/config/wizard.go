package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .talentbot.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to talentbot! Let's configure your bot.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Bot credentials.
	appIDPrompt := promptui.Prompt{
		Label:   "Bot Framework app ID (blank for local emulator)",
		Default: "",
	}
	appID, err := appIDPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("app id: %w", err)
	}

	appPassword := ""
	if appID != "" {
		passwordPrompt := promptui.Prompt{
			Label: "Bot Framework app password",
			Mask:  '*',
		}
		appPassword, err = passwordPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("app password: %w", err)
		}
	}

	// 2. Public base URL for card image links.
	baseURLPrompt := promptui.Prompt{
		Label:   "Public base URL",
		Default: defaults.BaseURL,
	}
	baseURL, err := baseURLPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	// 3. Listen port.
	portPrompt := promptui.Prompt{
		Label:   "Listen port",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			if _, err := strconv.Atoi(s); err != nil {
				return fmt.Errorf("port must be a number")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 4. Data directory.
	dataDirPrompt := promptui.Prompt{
		Label:   "Data directory for the conversation store",
		Default: defaults.DataDir,
	}
	dataDir, err := dataDirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	cfg := DefaultConfig()
	cfg.AppID = appID
	cfg.AppPassword = appPassword
	cfg.BaseURL = baseURL
	cfg.Port = port
	cfg.DataDir = dataDir

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	configPath := ".talentbot.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
