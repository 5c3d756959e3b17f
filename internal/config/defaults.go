package config

// DefaultBaseURL is the public documentation search endpoint used when no
// override is configured.
const DefaultBaseURL = "https://dcs.stormlightlabs.org"

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{BaseURL: ""},
		Search:  SearchConfig{MaxResults: 100},
		Display: DisplayConfig{Width: 80, RenderMarkdown: false},
	}
}
