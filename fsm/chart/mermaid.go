package chart

import (
	"fmt"
	"strings"
)

// Options controls Mermaid diagram rendering.
type Options struct {
	// Direction is the stateDiagram directive suffix, normally "v2".
	Direction string
	// ShowEvents labels transition arrows with their event names.
	ShowEvents bool
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		Direction:  "v2",
		ShowEvents: true,
	}
}

// Mermaid converts a definition to a Mermaid state diagram.
func Mermaid(config *Config) (string, error) {
	return MermaidWithOptions(config, DefaultOptions())
}

// MermaidWithOptions generates a Mermaid diagram with custom options.
func MermaidWithOptions(config *Config, opts Options) (string, error) {
	if config == nil {
		return "", ErrConfigNil
	}

	if config.Initial == "" {
		return "", ErrInitialRequired
	}

	var sb strings.Builder

	sb.WriteString("```mermaid\n")
	sb.WriteString(fmt.Sprintf("stateDiagram-%s\n", opts.Direction))

	// Initial state marker
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", config.Initial))

	for _, transition := range config.Transitions {
		if opts.ShowEvents {
			sb.WriteString(fmt.Sprintf("    %s --> %s: %s\n", transition.From, transition.To, transition.On))
		} else {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", transition.From, transition.To))
		}
	}

	// Terminal markers
	for _, state := range config.States {
		if state.Terminal {
			sb.WriteString(fmt.Sprintf("    %s --> [*]\n", state.Name))
		}
	}

	sb.WriteString("```\n")

	return sb.String(), nil
}
