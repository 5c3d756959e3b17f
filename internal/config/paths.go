package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDir returns the XDG configuration directory for searchlight.
// Uses $XDG_CONFIG_HOME/searchlight or ~/.config/searchlight on Unix.
// On macOS, uses ~/Library/Application Support/searchlight.
func ConfigDir() (string, error) {
	if homeOverride := os.Getenv("SEARCHLIGHT_HOME"); homeOverride != "" {
		return filepath.Join(homeOverride, "config"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "searchlight"), nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "searchlight"), nil
	}

	return filepath.Join(home, ".config", "searchlight"), nil
}
