// Package config provides configuration loading for the go2vec command.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the command.
type Config struct {
	Debug bool        `yaml:"debug"`
	Model ModelConfig `yaml:"model"`
	Query QueryConfig `yaml:"query"`
}

// ModelConfig describes the embeddings file.
type ModelConfig struct {
	Path string `yaml:"path"`
	// Binary selects the binary word2vec format; nil means true.
	Binary    *bool `yaml:"binary"`
	Normalize bool  `yaml:"normalize"`
}

// BinaryOrDefault returns whether the model is in the binary format;
// defaults to true when unset.
func (m *ModelConfig) BinaryOrDefault() bool {
	if m.Binary != nil {
		return *m.Binary
	}
	return true
}

// QueryConfig holds the defaults for combination queries.
type QueryConfig struct {
	Method string `yaml:"method"`
	TopN   int    `yaml:"top_n"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// Load reads and parses the config file at path and applies defaults.
// A relative model path is resolved against the directory of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	ApplyDefaults(&cfg)

	if !filepath.IsAbs(cfg.Model.Path) {
		cfg.Model.Path = filepath.Join(filepath.Dir(path), cfg.Model.Path)
	}

	return &cfg, nil
}
