package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// EnvConfigPath names the variable holding the YAML config path.
	EnvConfigPath = "CONFIG_PATH"
	// DefaultConfigPath is read when present and no path was given.
	DefaultConfigPath = "./config.yaml"
)

// Load reads configuration from the file named by CONFIG_PATH, falling back
// to ./config.yaml, plus environment variables. See LoadFrom.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(EnvConfigPath))
}

// LoadFrom reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (env-default tags).
// An empty path means DefaultConfigPath, which may be missing; in that case
// the server and the passage CLI run from ENV + defaults alone. An explicit
// path must exist.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = DefaultConfigPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicitPath:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
