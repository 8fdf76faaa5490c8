package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/raysh454/phishscope/internal/history"
)

// Config holds the service settings.
type Config struct {
	ListenAddr      string `yaml:"listen_addr"`
	HistoryCapacity int    `yaml:"history_capacity"`
	ModelPath       string `yaml:"model_path"`

	// DefaultUseML decides whether assessments consult the model when a
	// request does not say either way.
	DefaultUseML bool `yaml:"default_use_ml"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:      ":8000",
		HistoryCapacity: history.DefaultCapacity,
	}
}

// LoadConfig overlays a YAML file on the defaults. Keys missing from
// the file keep their default value.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
