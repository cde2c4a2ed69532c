// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSeed             = "WASTELAND_SEED"
	EnvScript           = "WASTELAND_SCRIPT"
	EnvHoneycombAPIKey  = "HONEYCOMB_WASTELAND_API_KEY"
	EnvHoneycombDataset = "HONEYCOMB_WASTELAND_DATASET"

	defaultDataset = "wasteland"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible runs.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// ScriptPath points at a YAML script. When set the game runs headless.
	ScriptPath string

	HoneycombAPIKey  string
	HoneycombDataset string
}

// Load reads the given .env files (".env" when none are named), then the
// environment. A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		ScriptPath:       os.Getenv(EnvScript),
		HoneycombAPIKey:  os.Getenv(EnvHoneycombAPIKey),
		HoneycombDataset: GetEnvDefault(EnvHoneycombDataset, defaultDataset),
	}

	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvSeed, raw, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

// GetEnvDefault returns the value of key, or defaultValue when it is unset or empty.
func GetEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
