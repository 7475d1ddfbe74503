package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/shelfsim/shelfsim/sim"
)

// Scenario describes one named preset in scenarios.yaml.
type Scenario struct {
	Description         string  `yaml:"description"`
	NumShelves          int     `yaml:"num_shelves"`
	ShelfCapacity       int     `yaml:"shelf_capacity"`
	TotalItems          int     `yaml:"total_items"`
	HiddenShelf         int     `yaml:"hidden_shelf"`
	MovementProbability float64 `yaml:"movement_probability"`
	Mode                string  `yaml:"mode"`
	TrapStartTick       int64   `yaml:"trap_start_tick"`
	ProcessNoiseQ       float64 `yaml:"process_noise_q"`
}

// ScenariosFile represents the full scenarios.yaml structure.
type ScenariosFile struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// toConfig maps a preset onto a simulation configuration. An empty mode
// defaults to normal so presets only need to name the fields they change.
func (s Scenario) toConfig() sim.Config {
	config := sim.Config{
		NumShelves:          s.NumShelves,
		ShelfCapacity:       s.ShelfCapacity,
		TotalItems:          s.TotalItems,
		HiddenShelf:         s.HiddenShelf,
		MovementProbability: s.MovementProbability,
		Mode:                s.Mode,
		TrapStartTick:       s.TrapStartTick,
		ProcessNoiseQ:       s.ProcessNoiseQ,
	}
	if config.Mode == "" {
		config.Mode = sim.ModeNormal
	}
	return config
}

// loadScenarios parses a scenarios YAML file. Strict field checking: typos in
// a preset must cause errors rather than silently fall back to zero values.
func loadScenarios(path string) (ScenariosFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScenariosFile{}, fmt.Errorf("failed to read scenarios file: %w", err)
	}

	var scenarios ScenariosFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenarios); err != nil {
		return ScenariosFile{}, fmt.Errorf("failed to parse scenarios YAML: %w", err)
	}
	return scenarios, nil
}
