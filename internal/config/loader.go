package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file name looked up in the search directories.
const FileName = "worm.yaml"

// Load loads worm settings.
// Search order: customPath -> ~/.worm/worm.yaml -> ./configs/worm.yaml -> embedded default
//
// Files only need the keys they override; everything else keeps its default.
// A custom path that cannot be read or parsed is an error, while broken files
// in the search directories are skipped.
func Load(customPath string) (Settings, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultWormYAML)
	if err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Resolve returns the file Load would read, or "" when Load falls back to
// the embedded defaults.
func Resolve(customPath string) string {
	if customPath != "" {
		return customPath
	}
	candidates := []string{userConfigPath(FileName), filepath.Join("configs", FileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := LoadFile(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadFile reads and validates one settings file.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// Marshal encodes settings as YAML.
func Marshal(cfg Settings) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return data, nil
}

// UserConfigPath returns ~/.worm/worm.yaml, or empty if home is unavailable.
func UserConfigPath() string {
	return userConfigPath(FileName)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".worm", filename)
}
