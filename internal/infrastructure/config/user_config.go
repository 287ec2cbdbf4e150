package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig holds CLI preferences stored in ~/.craftsolver/config.json
type UserConfig struct {
	// Daemon socket to use when --socket is not given
	DefaultSocket string `json:"default_socket,omitempty"`

	// Preset used by "solver create" when no action lists are given
	DefaultPreset string `json:"default_preset,omitempty"`
}

// UserConfigHandler manages loading and saving user configuration
type UserConfigHandler struct {
	configPath string
}

// NewUserConfigHandler creates a handler for the file in the user's home directory
func NewUserConfigHandler() (*UserConfigHandler, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewUserConfigHandlerAt(filepath.Join(homeDir, ".craftsolver"))
}

// NewUserConfigHandlerAt creates a handler for config.json inside dir
func NewUserConfigHandlerAt(dir string) (*UserConfigHandler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return &UserConfigHandler{configPath: filepath.Join(dir, "config.json")}, nil
}

// Load reads the user config from disk
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	data, err := os.ReadFile(h.configPath)
	if os.IsNotExist(err) {
		return &UserConfig{}, nil
	}
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

// SetDefaultSocket stores the default daemon socket
func (h *UserConfigHandler) SetDefaultSocket(socket string) error {
	config, err := h.Load()
	if err != nil {
		return err
	}
	config.DefaultSocket = socket
	return h.Save(config)
}

// SetDefaultPreset stores the default action preset
func (h *UserConfigHandler) SetDefaultPreset(preset string) error {
	config, err := h.Load()
	if err != nil {
		return err
	}
	config.DefaultPreset = preset
	return h.Save(config)
}

// GetConfigPath returns the path to the user config file
func (h *UserConfigHandler) GetConfigPath() string {
	return h.configPath
}
