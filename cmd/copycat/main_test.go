package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveCmdRequiresAllThreeStrings(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"solve", "--initial", "abc", "--iterations", "5"})
	root.SilenceErrors = true
	err := root.Execute()
	require.Error(t, err)
}

func TestSolveCmdRequiresPositiveIterations(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"solve", "--initial", "abc", "--modified", "abd", "--target", "ijk", "--iterations", "0"})
	root.SilenceErrors = true
	err := root.Execute()
	require.Error(t, err)
}

func TestSolveCmdPrintsTable(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{
		"solve",
		"--initial", "abc", "--modified", "abd", "--target", "ijk",
		"--iterations", "3", "--max-steps", "500", "--seed", "1",
	})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Answer")
}
