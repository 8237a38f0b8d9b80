package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig represents user preferences stored in ~/.stowagemaster/config.json
// This file stores ONLY preferences, never credentials.
type UserConfig struct {
	// DefaultShipProfileID is the ship profile used when a command omits --ship.
	DefaultShipProfileID string `json:"default_ship_profile_id,omitempty"`

	// RecentPlanPaths is a most-recently-used list of saved plan files, newest first.
	RecentPlanPaths []string `json:"recent_plan_paths,omitempty"`
}

// UserConfigHandler manages loading and saving user configuration
type UserConfigHandler struct {
	configPath string
}

// NewUserConfigHandler creates a new user config handler
func NewUserConfigHandler() (*UserConfigHandler, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".stowagemaster")
	configPath := filepath.Join(configDir, "config.json")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	return &UserConfigHandler{
		configPath: configPath,
	}, nil
}

// Load reads the user config from disk
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	if _, err := os.Stat(h.configPath); os.IsNotExist(err) {
		return &UserConfig{}, nil
	}

	data, err := os.ReadFile(h.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	var config UserConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	return &config, nil
}

// Save writes the user config to disk
func (h *UserConfigHandler) Save(config *UserConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}

	if err := os.WriteFile(h.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}

	return nil
}

// SetDefaultShipProfile sets the default ship profile id
func (h *UserConfigHandler) SetDefaultShipProfile(shipProfileID string) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultShipProfileID = shipProfileID
	return h.Save(config)
}

// ClearDefaultShipProfile removes the default ship profile setting
func (h *UserConfigHandler) ClearDefaultShipProfile() error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	config.DefaultShipProfileID = ""
	return h.Save(config)
}

// PushRecentPlan records a saved plan path as most-recently-used, capped at 5 entries.
func (h *UserConfigHandler) PushRecentPlan(path string) error {
	config, err := h.Load()
	if err != nil {
		return err
	}

	filtered := []string{path}
	for _, p := range config.RecentPlanPaths {
		if p != path {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) > 5 {
		filtered = filtered[:5]
	}
	config.RecentPlanPaths = filtered
	return h.Save(config)
}

// GetConfigPath returns the path to the user config file
func (h *UserConfigHandler) GetConfigPath() string {
	return h.configPath
}
