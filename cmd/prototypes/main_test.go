package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/prototypes/config"
	"github.com/spektr-org/prototypes/engine"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"PROTOTYPES_FIXTURES", "PROTOTYPES_FORMAT", "PROTOTYPES_PARALLELISM"} {
		t.Setenv(k, "")
	}
	t.Setenv("PROTOTYPES_LOG_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestRun_Text(t *testing.T) {
	out, err := runCLI(t, "run", "cakes.totalInventory", "kitties.orangeKittyNames", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "cakes.totalInventory = 59\nkitties.orangeKittyNames = [\"Tiger\",\"Snickers\"]\n", out)
}

func TestRun_Dataset(t *testing.T) {
	out, err := runCLI(t, "run", "--dataset", "kitties", "--format", "json")
	require.NoError(t, err)

	var results []struct {
		Query   string `json:"query"`
		Dataset string `json:"dataset"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "orangeKittyNames", results[0].Query)
	assert.Equal(t, "kitties", results[0].Dataset)
}

func TestRun_All(t *testing.T) {
	out, err := runCLI(t, "run", "--all", "--format", "text", "--parallelism", "4")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 38)
}

func TestRun_Errors(t *testing.T) {
	_, err := runCLI(t, "run", "cakes.nope")
	assert.ErrorIs(t, err, engine.ErrUnknownQuery)

	_, err = runCLI(t, "run", "--dataset", "aquarium")
	assert.ErrorIs(t, err, engine.ErrUnknownQuery)

	_, err = runCLI(t, "run")
	assert.Error(t, err)

	_, err = runCLI(t, "run", "cakes.totalInventory", "--format", "csv")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestList(t *testing.T) {
	out, err := runCLI(t, "list", "--dataset", "kitties")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "kitties.orangeKittyNames"))
	assert.Contains(t, lines[0], "names of the orange kitties")
}

func TestDescribe(t *testing.T) {
	out, err := runCLI(t, "describe", "--format", "json")
	require.NoError(t, err)

	var schemas []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &schemas))
	assert.Len(t, schemas, 14)
}

func TestFixturesOverride(t *testing.T) {
	dir := t.TempDir()
	kitties := "kitties:\n  - name: Marmalade\n    age: 3\n    color: orange\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kitties.yaml"), []byte(kitties), 0o644))

	out, err := runCLI(t, "run", "kitties.orangeKittyNames", "cakes.totalInventory", "--format", "text", "--fixtures", dir)
	require.NoError(t, err)
	assert.Equal(t, "kitties.orangeKittyNames = [\"Marmalade\"]\ncakes.totalInventory = 59\n", out)
}

func TestFixturesOverride_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kitties.yaml"), []byte("kitties:\n  - name: Nameless\n"), 0o644))

	_, err := runCLI(t, "list", "--fixtures", dir)
	assert.Error(t, err)
}
