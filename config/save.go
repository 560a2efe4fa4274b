package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveConfig provides methods to save configuration values.
type SaveConfig struct {
	// GlobalConfigDir is the directory under ~/.config/ for global config.
	GlobalConfigDir string

	// GlobalConfigFile is the filename. Defaults to "config.yaml".
	GlobalConfigFile string

	// LocalConfigName is the filename for local config in git root.
	LocalConfigName string

	// ValidKeys lists keys that can be saved. If nil, all keys are valid.
	ValidKeys []string
}

func (c SaveConfig) globalConfigFile() string {
	if c.GlobalConfigFile != "" {
		return c.GlobalConfigFile
	}
	return "config.yaml"
}

func (c SaveConfig) validateKey(key string) error {
	if len(c.ValidKeys) > 0 && !contains(c.ValidKeys, key) {
		return fmt.Errorf("unknown config key: %s\n\nValid keys: %s",
			key, strings.Join(c.ValidKeys, ", "))
	}
	return nil
}

// SaveGlobal saves a key-value pair to the global config file.
func (c SaveConfig) SaveGlobal(key, value string) error {
	if c.GlobalConfigDir == "" {
		return fmt.Errorf("global config directory not configured")
	}
	if err := c.validateKey(key); err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", c.GlobalConfigDir, c.globalConfigFile())
	return saveKey(configPath, key, value, 0o600, true)
}

// SaveLocal saves a key-value pair to the local config file in the git root.
func (c SaveConfig) SaveLocal(gitRoot, key, value string) error {
	if gitRoot == "" {
		return fmt.Errorf("git root not found")
	}
	if c.LocalConfigName == "" {
		return fmt.Errorf("local config name not configured")
	}
	if err := c.validateKey(key); err != nil {
		return err
	}

	configPath := filepath.Join(gitRoot, c.LocalConfigName)
	// Local config is shared and should be readable
	return saveKey(configPath, key, value, 0o644, false)
}

// DeleteGlobalKey removes a key from the global config.
func (c SaveConfig) DeleteGlobalKey(key string) error {
	if c.GlobalConfigDir == "" {
		return fmt.Errorf("global config directory not configured")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", c.GlobalConfigDir, c.globalConfigFile())
	return deleteKey(configPath, key, 0o600)
}

// DeleteLocalKey removes a key from the local config file in the git root.
func (c SaveConfig) DeleteLocalKey(gitRoot, key string) error {
	if gitRoot == "" {
		return fmt.Errorf("git root not found")
	}
	if c.LocalConfigName == "" {
		return fmt.Errorf("local config name not configured")
	}

	return deleteKey(filepath.Join(gitRoot, c.LocalConfigName), key, 0o644)
}

func deleteKey(configPath, key string, perm os.FileMode) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil // Nothing to delete
	}

	var existing map[string]any
	if err := yaml.Unmarshal(data, &existing); err != nil {
		return nil
	}

	deleteNested(existing, strings.Split(key, "."))

	data, err = yaml.Marshal(existing)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, perm)
}

func saveKey(configPath, key, value string, perm os.FileMode, mkdir bool) error {
	var existing map[string]any
	if data, readErr := os.ReadFile(configPath); readErr == nil {
		_ = yaml.Unmarshal(data, &existing)
	}
	if existing == nil {
		existing = make(map[string]any)
	}

	setNested(existing, strings.Split(key, "."), parseValue(value))

	if mkdir {
		if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(existing)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, perm)
}

// setNested writes a value under a dotted key path, creating
// intermediate maps as needed.
func setNested(m map[string]any, path []string, value any) {
	if len(path) == 1 {
		m[path[0]] = value
		return
	}

	child, ok := m[path[0]].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[path[0]] = child
	}
	setNested(child, path[1:], value)
}

// deleteNested removes a value under a dotted key path.
func deleteNested(m map[string]any, path []string) {
	if len(path) == 1 {
		delete(m, path[0])
		return
	}

	child, ok := m[path[0]].(map[string]any)
	if !ok {
		return
	}
	deleteNested(child, path[1:])
	if len(child) == 0 {
		delete(m, path[0])
	}
}

// parseValue converts string values to appropriate types for YAML.
func parseValue(value string) any {
	lower := strings.ToLower(value)
	if lower == "true" {
		return true
	}
	if lower == "false" {
		return false
	}
	return value
}
