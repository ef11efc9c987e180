// Package config loads the YAML solver configuration the CLI reads at
// startup, following the shape of ehrlich-b-wingthing's WingConfig:
// a plain struct, yaml.v3 tags, a best-effort loader that tolerates a
// missing file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SolverConfig carries every per-run tunable the pipeline stages read:
// SAT search budgets, retiming/sequential-simplification pass caps,
// fast-extract parameters, and the simulation engine's word count.
type SolverConfig struct {
	// SAT.MaxConflicts is a per-Solve conflict limit (0 is unbounded). It is
	// loaded and saved but read by no caller in this module; the driver's
	// SAT budget comes from ModelCheck.ConflictBudget.
	SAT struct {
		MaxConflicts int `yaml:"max_conflicts,omitempty"`
	} `yaml:"sat,omitempty"`

	// ModelCheck holds the model-checking driver's per-run budgets.
	ModelCheck struct {
		FramesMax        int `yaml:"frames_max,omitempty"`
		DeepFramesMax    int `yaml:"deep_frames_max,omitempty"`
		RegisterLimit    int `yaml:"register_limit,omitempty"`
		SeqSimplifyIters int `yaml:"seq_simplify_iters,omitempty"`
		ConflictBudget   int `yaml:"conflict_budget,omitempty"`
		DeadlineSeconds  int `yaml:"deadline_seconds,omitempty"`
	} `yaml:"model_check,omitempty"`

	// Extract holds fast-extract's candidate-search caps.
	Extract struct {
		NNodesExt int `yaml:"n_nodes_ext,omitempty"`
		NPairsMax int `yaml:"n_pairs_max,omitempty"`
	} `yaml:"extract,omitempty"`

	// SimulationWords is the packed-word count W for simulate.NewEngine. It
	// is loaded and saved but read by no caller in this module.
	SimulationWords int `yaml:"simulation_words,omitempty"`

	// Retime holds the retiming pass's optional secondary objective.
	Retime struct {
		// MinimizeArea, when true, runs retime.MinimizeArea's greedy lag
		// redistribution on each minimum-period retiming round's lag vector
		// before it is realized. Off by
		// default: minimum clock period is the only property callers require.
		MinimizeArea bool `yaml:"minimize_area,omitempty"`
	} `yaml:"retime,omitempty"`
}

// Default returns the configuration used when no config file is found,
// mirroring each package's own DefaultOptions constants.
func Default() *SolverConfig {
	c := &SolverConfig{}
	c.ModelCheck.FramesMax = 10
	c.ModelCheck.DeepFramesMax = 30
	c.ModelCheck.RegisterLimit = 150
	c.ModelCheck.SeqSimplifyIters = 4
	c.Extract.NNodesExt = 64
	c.Extract.NPairsMax = 4096
	c.SimulationWords = 8

	return c
}

// defaultConfigPath returns "~/.logicsynth/config.yaml".
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".logicsynth", "config.yaml")
}

// Load reads path (or, if path is empty, the default
// "~/.logicsynth/config.yaml" location). A missing file is not an
// error: Default() is returned instead, so a first run needs no setup.
func Load(path string) (*SolverConfig, error) {
	if path == "" {
		path = defaultConfigPath()
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories as needed.
func Save(path string, cfg *SolverConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
