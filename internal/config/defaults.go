package config

import "github.com/danieldk/go2vec/v3"

// DefaultModelPath is the pre-trained Google News model.
const DefaultModelPath = "GoogleNews-vectors-negative300.bin"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Model.Path == "" {
		cfg.Model.Path = DefaultModelPath
	}
	if cfg.Query.Method == "" {
		cfg.Query.Method = string(go2vec.MethodAverage)
	}
	if cfg.Query.TopN == 0 {
		cfg.Query.TopN = go2vec.DefaultTopN
	}
}
