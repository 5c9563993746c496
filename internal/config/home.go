package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable overriding the config location
const HomeEnv = "MICENOTES_HOME"

// GetHome returns the micenotes home directory
// Priority order:
//  1. MICENOTES_HOME environment variable (if set)
//  2. .micenotes in the current working directory
//
// The directory is not created; a missing home simply means default settings.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	return filepath.Join(cwd, ".micenotes"), nil
}

// DefaultConfigPath returns $MICENOTES_HOME/config.yaml or ./.micenotes/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}
