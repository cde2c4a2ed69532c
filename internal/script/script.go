// Package script loads scripted play sessions from YAML.
//
// A script names an optional seed and the commands to feed to the engine:
//
//	seed: 42
//	actions:
//	  - north
//	  - scavenge
//	  - rest
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a recorded list of player commands.
type Script struct {
	Seed    int64    `yaml:"seed,omitempty"`
	Actions []string `yaml:"actions"`
}

// Parse decodes a script from YAML.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if len(s.Actions) == 0 {
		return nil, errors.New("script has no actions")
	}
	return &s, nil
}

// Load reads and decodes a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return Parse(data)
}
