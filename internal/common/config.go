package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/places/pkg/places"
)

// Config represents the application configuration
type Config struct {
	PlacesAPI PlacesAPIConfig `toml:"places_api"`
	Logging   LoggingConfig   `toml:"logging"`
}

// PlacesAPIConfig contains Google Places API configuration
type PlacesAPIConfig struct {
	APIKey         string `toml:"api_key"`         // Google Places API key, sent as the "key" parameter
	AccessToken    string `toml:"access_token"`    // OAuth2 bearer token; empty = API key only
	BaseURL        string `toml:"base_url"`        // Override for testing against a stub server
	Language       string `toml:"language"`        // Default result language (e.g., "en", "da")
	RequestTimeout string `toml:"request_timeout"` // Duration string (default: "30s")
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		PlacesAPI: PlacesAPIConfig{
			APIKey:         "", // User must provide API key or access token
			BaseURL:        places.DefaultBaseURL,
			RequestTimeout: "30s",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority: default -> file1 -> file2 -> ... -> env
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		// Unmarshal into config (merges with existing values, later values override)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if _, err := time.ParseDuration(config.PlacesAPI.RequestTimeout); err != nil {
		return nil, fmt.Errorf("invalid places_api.request_timeout %q: %w", config.PlacesAPI.RequestTimeout, err)
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if apiKey := os.Getenv("PLACES_API_KEY"); apiKey != "" {
		config.PlacesAPI.APIKey = apiKey
	}
	if token := os.Getenv("PLACES_ACCESS_TOKEN"); token != "" {
		config.PlacesAPI.AccessToken = token
	}
	if baseURL := os.Getenv("PLACES_BASE_URL"); baseURL != "" {
		config.PlacesAPI.BaseURL = baseURL
	}
	if language := os.Getenv("PLACES_LANGUAGE"); language != "" {
		config.PlacesAPI.Language = language
	}
	if timeout := os.Getenv("PLACES_REQUEST_TIMEOUT"); timeout != "" {
		config.PlacesAPI.RequestTimeout = timeout
	}

	if level := os.Getenv("PLACES_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("PLACES_LOG_OUTPUT"); output != "" {
		// Split comma-separated output types
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
}

// Timeout returns the parsed request timeout, falling back to places.DefaultTimeout.
func (c *PlacesAPIConfig) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return places.DefaultTimeout
	}
	return d
}

// ClientOptions converts the configuration into places client options. The
// transport is left to the caller.
func (c *PlacesAPIConfig) ClientOptions(logger arbor.ILogger) []places.ClientOption {
	opts := []places.ClientOption{}
	if c.BaseURL != "" {
		opts = append(opts, places.WithBaseURL(c.BaseURL))
	}
	if c.APIKey != "" {
		opts = append(opts, places.WithAPIKey(c.APIKey))
	}
	if c.Language != "" {
		opts = append(opts, places.WithLanguage(c.Language))
	}
	if logger != nil {
		opts = append(opts, places.WithLogger(logger))
	}
	return opts
}

// HasCredentials reports whether an API key or access token is configured.
func (c *PlacesAPIConfig) HasCredentials() bool {
	return c.APIKey != "" || c.AccessToken != ""
}
