/*
Package config manages TOML config for wordcrack tools.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Model  ModelConfig  `toml:"model"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// ModelConfig holds language model options.
type ModelConfig struct {
	// DefaultProbability is the score unseen words get during
	// segmentation. Zero collapses unknown stretches into one span.
	DefaultProbability float64 `toml:"default_probability"`
	NgramOrder         int     `toml:"ngram_order"`
	GenerateLength     int     `toml:"generate_length"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxTextLen int `toml:"max_text_len"`
	MaxLimit   int `toml:"max_limit"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit          int `toml:"default_limit"`
	DefaultGenerateLength int `toml:"default_generate_length"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			DefaultProbability: 0,
			NgramOrder:         2,
			GenerateLength:     20,
		},
		Server: ServerConfig{
			MaxTextLen: 4096,
			MaxLimit:   64,
		},
		CLI: CliConfig{
			DefaultLimit:          24,
			DefaultGenerateLength: 20,
		},
	}
}

// LoadConfig loads from a TOML file, on top of built-in defaults so
// missing keys keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	return config, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using builtin defaults...", configPath, err)
			return config, nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using builtin defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
