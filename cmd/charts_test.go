package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/shelfsim/shelfsim/sim"
)

func TestWriteCharts(t *testing.T) {
	config := sim.DefaultConfig()
	results := sim.NewRunner(config, 42).Run(200, 50)

	dir := filepath.Join(t.TempDir(), "charts")
	require.NoError(t, WriteCharts(results, dir))

	for _, name := range []string{"total_estimation.html", "kalman_uncertainty.html", "estimation_error.html"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected chart file %s", name)
		assert.Greater(t, info.Size(), int64(0), "chart file %s must not be empty", name)
	}
}

func TestWriteCharts_UnwritableDirectory(t *testing.T) {
	config := sim.DefaultConfig()
	results := sim.NewRunner(config, 42).Run(10, 10)

	// A file standing where the directory should go makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := WriteCharts(results, blocker)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create charts directory")
}
