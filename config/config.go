package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

type DecodeConfig struct {
	// SenderID is used when a payload is decoded without a frame, e.g. "7E8"
	SenderID string `yaml:"sender_id"`
}

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Decode DecodeConfig `yaml:"decode"`
}

func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Console: true},
		Decode: DecodeConfig{SenderID: "7E8"},
	}
}

// Load reads path over the defaults. An empty path skips reading, a path that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = Default().Log.Level
	}
	return cfg, nil
}
