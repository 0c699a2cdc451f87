// Package config carries the file locations and comparison tolerances
// of a validation run. Every path is explicit configuration; nothing
// is resolved against the process working directory implicitly.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Tolerances defines when a simulated figure counts as deviating from
// the reported one.
type Tolerances struct {
	// AbsoluteTWh flags per-category differences above this many TWh
	// (GW for capacity).
	AbsoluteTWh float64 `yaml:"absolute_twh"`
	// Relative flags differences above this fraction of the reported
	// value.
	Relative float64 `yaml:"relative"`
}

// Config defines a validation run.
type Config struct {
	// DataDir holds the published statistics tables.
	DataDir string `yaml:"data_dir"`
	// EmberFile is the long-format Ember release, relative to DataDir.
	EmberFile string `yaml:"ember_file"`
	// EIACapacityFile and EIAGenerationFile are the wide EIA reference
	// tables, relative to DataDir.
	EIACapacityFile   string `yaml:"eia_capacity_file"`
	EIAGenerationFile string `yaml:"eia_generation_file"`
	// ResultsRoot holds the scenario folders with solved networks.
	ResultsRoot string `yaml:"results_root"`
	// OutputDir receives rendered comparison reports under <dir>/plots.
	OutputDir string `yaml:"output_dir"`
	// StrictNetworkLocate fails instead of warning when a scenario
	// holds more than one network file.
	StrictNetworkLocate bool `yaml:"strict_network_locate"`

	Tolerances Tolerances `yaml:"tolerances"`
}

// Load builds the configuration from defaults, an optional yaml file
// and environment overrides, in that order. An empty path falls back
// to the VALIDATION_CONFIG environment variable.
func Load(path string) (Config, error) {
	cfg := Config{
		DataDir:           "data",
		EmberFile:         "ember_yearly_full_release_long_format.csv",
		EIACapacityFile:   "eia_installed_capacity.csv",
		EIAGenerationFile: "eia_generation.csv",
		ResultsRoot:       filepath.FromSlash("submodules/pypsa-earth/results"),
		OutputDir:         "results",
		Tolerances: Tolerances{
			AbsoluteTWh: 1,
			Relative:    0.1,
		},
	}

	if path == "" {
		path = os.Getenv("VALIDATION_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.DataDir = getenvDefault("VALIDATION_DATA_DIR", cfg.DataDir)
	cfg.ResultsRoot = getenvDefault("VALIDATION_RESULTS_ROOT", cfg.ResultsRoot)
	cfg.OutputDir = getenvDefault("VALIDATION_OUTPUT_DIR", cfg.OutputDir)
	cfg.Tolerances.AbsoluteTWh = getenvFloatDefault("VALIDATION_TOLERANCE_ABS", cfg.Tolerances.AbsoluteTWh)
	cfg.Tolerances.Relative = getenvFloatDefault("VALIDATION_TOLERANCE_REL", cfg.Tolerances.Relative)

	if cfg.DataDir == "" {
		return cfg, errors.New("config: data dir required")
	}
	if cfg.ResultsRoot == "" {
		return cfg, errors.New("config: results root required")
	}
	if cfg.OutputDir == "" {
		return cfg, errors.New("config: output dir required")
	}
	return cfg, nil
}

// EmberPath returns the resolved Ember table path.
func (c Config) EmberPath() string { return filepath.Join(c.DataDir, c.EmberFile) }

// EIACapacityPath returns the resolved EIA capacity table path.
func (c Config) EIACapacityPath() string { return filepath.Join(c.DataDir, c.EIACapacityFile) }

// EIAGenerationPath returns the resolved EIA generation table path.
func (c Config) EIAGenerationPath() string { return filepath.Join(c.DataDir, c.EIAGenerationFile) }

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvFloatDefault(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
