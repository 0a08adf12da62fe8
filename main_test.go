package main

import (
	"bytes"
	"testing"

	"github.com/helmcode/leadscore/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	root := newRootCmd(&config.Config{Output: config.OutputJSON, LogLevel: "warn"})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "leadscore version "+version+"\n", out.String())
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd(&config.Config{Output: config.OutputJSON})

	for _, name := range []string{"bio", "qualify", "vision", "lead", "version"} {
		c, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
}
