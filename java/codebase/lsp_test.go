package codebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteSliceCommand(t *testing.T) {
	var gotSeed string
	ls := NewLSPServer("test", func(c *Codebase, seed string) (any, error) {
		gotSeed = seed
		return []string{"p.A"}, nil
	})
	c, err := New("/src")
	require.NoError(t, err)
	ls.codebase = c

	res, err := ls.execute(SliceCommand, []any{"p.A#run"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p.A"}, res)
	assert.Equal(t, "p.A#run", gotSeed)

	_, err = ls.execute("other.command", nil)
	assert.ErrorContains(t, err, "unknown command")

	_, err = ls.execute(SliceCommand, nil)
	assert.ErrorContains(t, err, "want 1 argument")

	_, err = ls.execute(SliceCommand, []any{42.0})
	assert.ErrorContains(t, err, "seed must be a string")
}
