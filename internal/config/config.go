package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type LogConfig struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	Console *bool  `yaml:"console,omitempty"`
}

type ProjectConfig struct {
	SourceDir string    `yaml:"source_dir"`
	Store     string    `yaml:"store"`
	Table     string    `yaml:"table"`
	Timeout   string    `yaml:"timeout"`
	Log       LogConfig `yaml:"log"`
}

const ConfigFileName = "salesetl.yaml"

func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", configPath, err, salesetl.ErrInvalidConfig)
	}
	return &cfg, nil
}
