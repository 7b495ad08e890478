package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGrammars(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	// Reset flags for test
	grammarsPath = ""
	grammarsFormat = "table"

	err := runGrammars(cmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "cell.full")
	assert.Contains(t, output, "axis.column")
	assert.Contains(t, output, "axis.row")
}

func TestRunGrammarsJSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	grammarsPath = ""
	grammarsFormat = "json"

	err := runGrammars(cmd, []string{})
	require.NoError(t, err)

	var patterns []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &patterns))
	assert.Len(t, patterns, 3)
}

func TestRunGrammars_Errors(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	grammarsPath = "/does/not/exist.yml"
	grammarsFormat = "table"
	err := runGrammars(cmd, []string{})
	assert.ErrorContains(t, err, "loading grammar")

	grammarsPath = ""
	grammarsFormat = "yaml"
	err = runGrammars(cmd, []string{})
	assert.ErrorContains(t, err, "unknown output format")
}
