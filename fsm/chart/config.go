// Package chart builds fsm machines from declarative definitions: a YAML
// (or programmatic) table of named states and event-keyed transitions,
// instead of hand-written state types. Unmatched events resolve to Stay and
// terminal states stop the machine on entry.
package chart

import (
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"

	"github.com/zeebo/xxh3"
	"gopkg.in/yaml.v3"
)

// Config defines the structure of a machine definition.
type Config struct {
	Name        string             `json:"name"        yaml:"name"`
	Initial     string             `json:"initial"     yaml:"initial"`
	States      []StateConfig      `json:"states"      yaml:"states"`
	Transitions []TransitionConfig `json:"transitions" yaml:"transitions"`
}

// StateConfig defines one named state. Terminal states stop the machine as
// soon as they are entered.
type StateConfig struct {
	Name     string `json:"name"     yaml:"name"`
	Terminal bool   `json:"terminal" yaml:"terminal"`
}

// TransitionConfig defines one event-keyed transition.
type TransitionConfig struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to"   yaml:"to"`
	On   string `json:"on"   yaml:"on"`
}

// LoadConfig loads a machine definition from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Intentional path-based loading
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes loads a machine definition from YAML bytes.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var config Config

	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigFromFS loads a machine definition from an embedded filesystem.
// This is a convenience function for loading from embed.FS.
func LoadConfigFromFS(fsys fs.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from FS: %w", err)
	}

	return LoadConfigFromBytes(data)
}

// Validate checks if the definition is valid.
func (c *Config) Validate() error {
	if c.Name == "" {
		return ErrNameRequired
	}

	if c.Initial == "" {
		return ErrInitialRequired
	}

	if len(c.States) == 0 {
		return ErrStateRequired
	}

	terminal := make(map[string]bool)
	names := make(map[string]bool)

	for _, state := range c.States {
		if state.Name == "" {
			return ErrStateNameRequired
		}

		if names[state.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateState, state.Name)
		}

		names[state.Name] = true
		terminal[state.Name] = state.Terminal
	}

	if !names[c.Initial] {
		return fmt.Errorf("%w: %s", ErrInitialNotFound, c.Initial)
	}

	seen := make(map[string]bool)

	for i, transition := range c.Transitions {
		if transition.From == "" {
			return fmt.Errorf("transition %d: %w", i, ErrTransitionFromRequired)
		}

		if transition.To == "" {
			return fmt.Errorf("transition %d: %w", i, ErrTransitionToRequired)
		}

		if transition.On == "" {
			return fmt.Errorf("transition %d: %w", i, ErrTransitionEventRequired)
		}

		if !names[transition.From] {
			return fmt.Errorf("transition %d: %w: %s", i, ErrTransitionFromNotFound, transition.From)
		}

		if !names[transition.To] {
			return fmt.Errorf("transition %d: %w: %s", i, ErrTransitionToNotFound, transition.To)
		}

		if terminal[transition.From] {
			return fmt.Errorf("transition %d: %w: %s", i, ErrTerminalOutgoing, transition.From)
		}

		key := transition.From + "\x00" + transition.On
		if seen[key] {
			return fmt.Errorf("transition %d: %w: %s on %s", i, ErrDuplicateTransition, transition.From, transition.On)
		}

		seen[key] = true
	}

	return nil
}

// Fingerprint returns a stable content hash of the definition, useful for
// detecting when a stored definition has changed.
func (c *Config) Fingerprint() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	sum := xxh3.Hash128(data).Bytes()

	return hex.EncodeToString(sum[:]), nil
}
