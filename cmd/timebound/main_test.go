package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timebound"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestValvesCmd(t *testing.T) {
	out, _, err := run(t, "valves", "testdata/valves.yaml")
	require.NoError(t, err)
	assert.Equal(t, "1651\n", out)

	out, _, err = run(t, "valves", "testdata/valves.yaml", "--minutes", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, stderr, err := run(t, "valves", "testdata/valves.yaml", "--pair", "--log-level", "info", "--pruning", "bound")
	require.NoError(t, err)
	assert.Equal(t, "1707\n", out)
	assert.Contains(t, stderr, "pair split")
	assert.Contains(t, stderr, "pruning=bound")
}

func TestValvesCmd_Errors(t *testing.T) {
	_, _, err := run(t, "valves", "testdata/valves.yaml", "--start", "QQ")
	assert.ErrorContains(t, err, "start node not found")

	_, _, err = run(t, "valves", "testdata/valves.yaml", "--pruning", "fast")
	assert.ErrorContains(t, err, "unknown pruning")

	_, _, err = run(t, "valves", "testdata/valves.yaml", "--log-level", "loud")
	assert.ErrorContains(t, err, "unknown level")

	_, _, err = run(t, "valves")
	assert.Error(t, err)
}

func TestRecipesCmd(t *testing.T) {
	out, _, err := run(t, "recipes", "testdata/recipes.yaml")
	require.NoError(t, err)
	assert.Equal(t, "1 9\n2 12\n", out)

	out, _, err = run(t, "recipes", "testdata/recipes.yaml", "--quality", "--workers", "1")
	require.NoError(t, err)
	assert.Equal(t, "33\n", out)

	_, _, err = run(t, "recipes", "testdata/recipes.yaml", "--quality", "--product", "3")
	assert.ErrorIs(t, err, errConflictingModes)

	out, _, err = run(t, "recipes", "testdata/recipes.yaml", "--product", "-2")
	assert.ErrorIs(t, err, errNegativeProduct)
	assert.Empty(t, out)
}

func TestRecipesCmd_Product(t *testing.T) {
	if testing.Short() {
		t.Skip("32-minute searches")
	}
	out, _, err := run(t, "recipes", "testdata/recipes.yaml", "--product", "3")
	require.NoError(t, err)
	assert.Equal(t, "3472\n", out)
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.prom")
	_, _, err := run(t, "recipes", "testdata/recipes.yaml", "--quality", "--metrics-file", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, `timebound_best_value{variant="recipes_quality"} 33`)
	assert.Contains(t, text, `timebound_solves_total{variant="recipes"} 2`)
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "timebound version "+timebound.Version))
}
