package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenePath string // a single .hcl file or a directory of .hcl files

	LogFormat string
	LogLevel  string
}

// NewConfig validates and returns an application configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenePath == "" {
		return nil, errors.New("ScenePath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
