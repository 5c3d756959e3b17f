package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Environment variables controlling the documentation service base URL,
// checked in order. DOCUSAURUS_SEARCH_BASE_URL is kept as a legacy alias.
const (
	EnvBaseURL       = "DCS_BASE_URL"
	EnvBaseURLLegacy = "DOCUSAURUS_SEARCH_BASE_URL"
)

// Config represents the application configuration.
type Config struct {
	Service ServiceConfig `toml:"service"`
	Search  SearchConfig  `toml:"search"`
	Display DisplayConfig `toml:"display"`
}

// ServiceConfig holds settings for the remote documentation service.
type ServiceConfig struct {
	BaseURL string `toml:"base_url"` // Base URL of the documentation search service
}

// SearchConfig holds search-related settings.
type SearchConfig struct {
	MaxResults int `toml:"max_results"` // Upper bound accepted for maxResults
}

// DisplayConfig holds display-related settings.
type DisplayConfig struct {
	Width          int  `toml:"width"`           // Default render width
	RenderMarkdown bool `toml:"render_markdown"` // Render markdown by default
}

// Load reads the configuration from the XDG config path or uses defaults.
func Load() (*Config, error) {
	configPath, err := configFilePath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the XDG config path.
func (cfg *Config) Save() error {
	configPath, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// ResolveBaseURL determines the documentation service base URL from the
// environment, the config file, or the built-in default, in that order.
// The resolved value must be an absolute http(s) URL; every tool depends on
// it, so callers treat a failure here as fatal.
func ResolveBaseURL(cfg *Config) (string, error) {
	raw, source := baseURLValue(cfg)

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf(
			"invalid base URL %q (from %s): expected an absolute http(s) URL; set %s or %s to override",
			raw, source, EnvBaseURL, EnvBaseURLLegacy,
		)
	}

	return u.String(), nil
}

// BaseURLSource reports where the effective base URL comes from, for
// diagnostics and the config command.
func BaseURLSource(cfg *Config) string {
	_, source := baseURLValue(cfg)
	return source
}

func baseURLValue(cfg *Config) (value, source string) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		return v, "$" + EnvBaseURL
	}
	if v := os.Getenv(EnvBaseURLLegacy); v != "" {
		return v, "$" + EnvBaseURLLegacy
	}
	if cfg != nil && cfg.Service.BaseURL != "" {
		return cfg.Service.BaseURL, "config file"
	}
	return DefaultBaseURL, "default"
}

func configFilePath() (string, error) {
	if path := os.Getenv("SEARCHLIGHT_CONFIG"); path != "" {
		return path, nil
	}

	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.toml"), nil
}
