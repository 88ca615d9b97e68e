package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopLevelCmdName(t *testing.T) {
	root := &cobra.Command{Use: "mcpext"}
	manifest := &cobra.Command{Use: "manifest"}
	validate := &cobra.Command{Use: "validate"}
	root.AddCommand(manifest)
	manifest.AddCommand(validate)

	assert.Equal(t, "manifest", topLevelCmdName(manifest))
	assert.Equal(t, "manifest", topLevelCmdName(validate))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOut(&buf)
	defer SetOut(os.Stdout)

	t.Run("skipped when output is not json", func(t *testing.T) {
		buf.Reset()
		output = ""
		require.NoError(t, PrintJSON(map[string]string{"k": "v"}))
		assert.Empty(t, buf.String())
	})

	t.Run("written when output is json", func(t *testing.T) {
		buf.Reset()
		output = "json"
		defer func() { output = "" }()

		require.NoError(t, PrintJSON(map[string]string{"k": "v"}))
		assert.JSONEq(t, `{"k":"v"}`, buf.String())
	})
}

func TestPrintJSONError(t *testing.T) {
	var buf bytes.Buffer
	SetOut(&buf)
	defer SetOut(os.Stdout)

	t.Run("passthrough without json", func(t *testing.T) {
		output = ""
		err := assert.AnError
		assert.Equal(t, err, PrintJSONError(err))
	})

	t.Run("suppressed with json", func(t *testing.T) {
		buf.Reset()
		output = "json"
		defer func() { output = "" }()

		assert.NoError(t, PrintJSONError(assert.AnError))
		assert.Contains(t, buf.String(), "error")
	})
}

func TestManifestPath(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		manifestPath = ""
		assert.Equal(t, "extension.yaml", ManifestPath())
	})

	t.Run("env var", func(t *testing.T) {
		manifestPath = ""
		t.Setenv("MCPEXT_MANIFEST", "custom.yaml")
		assert.Equal(t, "custom.yaml", ManifestPath())
	})

	t.Run("flag wins over env", func(t *testing.T) {
		manifestPath = "flagged.yaml"
		defer func() { manifestPath = "" }()
		t.Setenv("MCPEXT_MANIFEST", "custom.yaml")
		assert.Equal(t, "flagged.yaml", ManifestPath())
	})
}
