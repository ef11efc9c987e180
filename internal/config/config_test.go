package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverlaysOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extract:\n  n_nodes_ext: 128\nsimulation_words: 16\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 128, cfg.Extract.NNodesExt)
	require.Equal(t, 16, cfg.SimulationWords)
	require.Equal(t, 4096, cfg.Extract.NPairsMax) // untouched default survives
	require.Equal(t, 10, cfg.ModelCheck.FramesMax)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := Default()
	cfg.SAT.MaxConflicts = 5000

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}
