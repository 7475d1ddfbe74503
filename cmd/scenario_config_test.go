package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/shelfsim/shelfsim/sim"
)

const repoScenariosPath = "../scenarios.yaml"

func TestLoadScenarios_RepoFile(t *testing.T) {
	if _, err := os.Stat(repoScenariosPath); os.IsNotExist(err) {
		t.Skipf("Skipping test: %s not found", repoScenariosPath)
	}

	scenarios, err := loadScenarios(repoScenariosPath)
	require.NoError(t, err)
	assert.Equal(t, "1", scenarios.Version)
	assert.NotEmpty(t, scenarios.Scenarios)

	for _, name := range []string{"baseline", "static", "volatile", "crowded", "leak-then-trap"} {
		_, ok := scenarios.Scenarios[name]
		assert.True(t, ok, "expected preset %q in %s", name, repoScenariosPath)
	}
}

func TestLoadScenarios_EveryRepoPresetIsValid(t *testing.T) {
	if _, err := os.Stat(repoScenariosPath); os.IsNotExist(err) {
		t.Skipf("Skipping test: %s not found", repoScenariosPath)
	}

	scenarios, err := loadScenarios(repoScenariosPath)
	require.NoError(t, err)

	for name, scenario := range scenarios.Scenarios {
		config := scenario.toConfig()
		assert.NoError(t, config.Validate(), "preset %q must pass validation", name)
	}
}

func TestLoadScenarios_MissingFile(t *testing.T) {
	_, err := loadScenarios(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenarios file")
}

func TestLoadScenarios_UnknownFieldRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	content := `version: "1"
scenarios:
  typo:
    description: "a preset with a misspelled field"
    num_shelves: 5
    shelf_capcty: 10
    total_items: 20
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := loadScenarios(path)
	require.Error(t, err, "strict decoding must reject unknown fields")
	assert.Contains(t, err.Error(), "failed to parse scenarios YAML")
}

func TestScenario_ToConfigDefaultsMode(t *testing.T) {
	scenario := Scenario{
		NumShelves:          5,
		ShelfCapacity:       10,
		TotalItems:          20,
		MovementProbability: 0.1,
		ProcessNoiseQ:       0.1,
	}
	config := scenario.toConfig()
	assert.Equal(t, sim.ModeNormal, config.Mode)
}

func TestScenario_ToConfigPreservesExplicitMode(t *testing.T) {
	scenario := Scenario{
		NumShelves:          5,
		ShelfCapacity:       10,
		TotalItems:          20,
		MovementProbability: 0.1,
		Mode:                sim.ModeLeakThenTrap,
		TrapStartTick:       25,
		ProcessNoiseQ:       0.1,
	}
	config := scenario.toConfig()
	assert.Equal(t, sim.ModeLeakThenTrap, config.Mode)
	assert.Equal(t, int64(25), config.TrapStartTick)
}
