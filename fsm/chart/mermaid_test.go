package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMermaid(t *testing.T) {
	t.Parallel()

	config, err := LoadConfigFromBytes([]byte(jobYAML))
	require.NoError(t, err)

	diagram, err := Mermaid(config)
	require.NoError(t, err)

	assert.Equal(t, "```mermaid\n"+
		"stateDiagram-v2\n"+
		"    [*] --> pending\n"+
		"    pending --> running: start\n"+
		"    running --> done: finish\n"+
		"    done --> [*]\n"+
		"```\n", diagram)
}

func TestMermaidWithoutEvents(t *testing.T) {
	t.Parallel()

	config, err := LoadConfigFromBytes([]byte(jobYAML))
	require.NoError(t, err)

	diagram, err := MermaidWithOptions(config, Options{Direction: "v2"})
	require.NoError(t, err)

	assert.Contains(t, diagram, "    pending --> running\n")
	assert.NotContains(t, diagram, ": start")
}

func TestMermaidErrors(t *testing.T) {
	t.Parallel()

	_, err := Mermaid(nil)
	require.ErrorIs(t, err, ErrConfigNil)

	_, err = Mermaid(&Config{Name: "empty"})
	require.ErrorIs(t, err, ErrInitialRequired)
}
