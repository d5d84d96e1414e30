package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"n8nctl/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/n8nctl"
	configFileName = "config.yaml"
)

// Config holds the per-user settings for the setup workflow. All fields have
// working defaults; the config file only needs to override what differs.
type Config struct {
	// Domain is the public domain used for HTTPS access URLs when traefik
	// is part of the selection.
	Domain string `yaml:"domain,omitempty"`
	// N8NPort is the local port n8n listens on when no reverse proxy is
	// selected.
	N8NPort int `yaml:"n8nPort,omitempty"`
	// Backend is the deployment backend binary to invoke.
	Backend string `yaml:"backend,omitempty"`
	// ComposeArgs are the leading arguments passed to the backend before
	// the subcommand (for example ["compose"] to run "docker compose ps").
	ComposeArgs []string `yaml:"composeArgs,omitempty"`
	// DefaultServices is the preselection offered by the interactive
	// prompt and the fallback in non-interactive environments.
	DefaultServices []string `yaml:"defaultServices,omitempty"`
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() Config {
	return Config{
		Domain:          "your-domain.com",
		N8NPort:         5678,
		Backend:         "docker",
		ComposeArgs:     []string{"compose"},
		DefaultServices: []string{"traefik"},
	}
}

// GetDefaultConfigPathOrPanic returns the per-user configuration directory.
func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from the specified directory. A missing
// config.yaml is not an error: defaults are returned unchanged.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig() // Start with default config

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		logging.Info("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		// config malformed
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	logging.Debug("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}
