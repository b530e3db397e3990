package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds application configuration
type Config struct {
	Provider            string  `json:"provider"` // "openai", "vertexai", or "mock"
	Model               string  `json:"model"`
	Temperature         float64 `json:"temperature"`
	OpenAIAPIKey        string  `json:"openai_api_key"`
	OpenAIBaseURL       string  `json:"openai_base_url"`
	GoogleCloudProject  string  `json:"google_cloud_project"`
	GoogleCloudLocation string  `json:"google_cloud_location"`
	ListenAddr          string  `json:"listen_addr"`
	AssetsDir           string  `json:"assets_dir"`
	TenantName          string  `json:"tenant_name"`
	ClientLogoURL       string  `json:"client_logo_url"`
}

// DefaultConfig returns a new config with default values
func DefaultConfig() *Config {
	return &Config{
		Provider:            "openai",
		Model:               "gpt-4.1-mini",
		Temperature:         0.3,
		GoogleCloudLocation: "us-central1",
		ListenAddr:          ":8080",
		AssetsDir:           "assets",
	}
}

// GetConfigPath returns the path to the configuration file
// On Windows: %APPDATA%/iqpack/config.json
// On Unix: ~/.config/iqpack/config.json
func GetConfigPath() (string, error) {
	var configDir string

	if os.Getenv("APPDATA") != "" {
		// Windows
		configDir = filepath.Join(os.Getenv("APPDATA"), "iqpack")
	} else {
		// Unix-like systems
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "iqpack")
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load loads configuration from the default config path
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadFrom(configPath)
}

// LoadFrom loads configuration from a specific path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			cfg := DefaultConfig()
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnv()
	return config, nil
}

// applyEnv fills unset secrets and addresses from the environment
func (c *Config) applyEnv() {
	if c.OpenAIAPIKey == "" {
		c.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.GoogleCloudProject == "" {
		c.GoogleCloudProject = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	if loc := os.Getenv("GOOGLE_CLOUD_LOCATION"); loc != "" && c.GoogleCloudLocation == "us-central1" {
		c.GoogleCloudLocation = loc
	}
	if port := os.Getenv("PORT"); port != "" {
		c.ListenAddr = ":" + port
	}
}

// Save saves the configuration to the default config path
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("openai provider requires openai_api_key (or OPENAI_API_KEY)")
		}
	case "vertexai":
		if c.GoogleCloudProject == "" {
			return fmt.Errorf("vertexai provider requires google_cloud_project (or GOOGLE_CLOUD_PROJECT)")
		}
		if c.GoogleCloudLocation == "" {
			return fmt.Errorf("vertexai provider requires google_cloud_location")
		}
	case "mock":
		// no credentials needed
	default:
		return fmt.Errorf("unknown provider: %s", c.Provider)
	}

	if c.Model == "" {
		return fmt.Errorf("model is required")
	}

	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("temperature must be between 0 and 1, got %v", c.Temperature)
	}

	return nil
}

// FooterLogoPath returns the expected location of the local footer brand
// mark. The file is optional; renderers tolerate its absence.
func (c *Config) FooterLogoPath() string {
	return filepath.Join(c.AssetsDir, "powerdash-logo.png")
}
