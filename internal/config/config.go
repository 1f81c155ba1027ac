package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	configDir      = ".linkmark"
	configFileName = "config.json"
)

// Config is the CLI's durable local state (~/.linkmark/config.json). The
// API key itself lives in the keyring; only its owner is recorded here.
type Config struct {
	APIBaseURL string    `json:"api_base_url,omitempty"`
	UserID     uuid.UUID `json:"user_id,omitempty"`
	Email      string    `json:"email,omitempty"`
	Theme      string    `json:"theme,omitempty"`
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir, configFileName), nil
}

// LoadConfig reads the config file, returning an empty config when none
// exists yet.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadTheme returns the persisted theme name, or "" when unset.
func (c *Config) LoadTheme() string {
	return c.Theme
}

// SaveTheme persists the theme name alongside the rest of the config.
func (c *Config) SaveTheme(theme string) error {
	c.Theme = theme
	return SaveConfig(c)
}
