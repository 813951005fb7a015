// Package config handles the flat .bpos/config.json configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat bpos configuration.
type Config struct {
	Version    string `json:"version"`
	DBPath     string `json:"db_path,omitempty"`     // empty means ~/.bpos/bpos.db
	ListenAddr string `json:"listen_addr,omitempty"` // empty means :8080

	// AuthTokens maps bearer tokens to actor IDs for the HTTP API. An
	// empty map disables the API's write routes.
	AuthTokens map[string]string `json:"auth_tokens,omitempty"`

	// Assistant settings for the drafting endpoint.
	AssistantAPIKey  string `json:"assistant_api_key,omitempty"`
	AssistantBaseURL string `json:"assistant_base_url,omitempty"`
	AssistantModel   string `json:"assistant_model,omitempty"`
}

// DefaultListenAddr is used when listen_addr is not configured.
const DefaultListenAddr = ":8080"

// LoadConfig reads .bpos/config.json from the specified directory.
// Returns an error if no config is found; callers decide whether a missing
// config is fatal.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".bpos", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the .bpos directory under dir.
func SaveConfig(dir string, cfg *Config) error {
	bposDir := filepath.Join(dir, ".bpos")
	if err := os.MkdirAll(bposDir, 0755); err != nil {
		return fmt.Errorf("failed to create .bpos dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(bposDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Addr returns the configured listen address or the default.
func (c *Config) Addr() string {
	if c.ListenAddr == "" {
		return DefaultListenAddr
	}
	return c.ListenAddr
}
