package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/internal/config"
)

func TestCheckFileUnsatOnConstantFalsePO(t *testing.T) {
	m := aig.NewManager()
	x1 := m.CreatePI()
	m.CreatePO(m.And(x1, x1.Not())) // structurally constant-0

	var buf bytes.Buffer
	code, err := checkFileOnManager(m, nil, "", config.Default(), &buf)
	require.NoError(t, err)
	require.Equal(t, exitUNSAT, code)
	require.Equal(t, "0\n", buf.String())
}

func TestCheckFileSatOnConstantTruePO(t *testing.T) {
	m := aig.NewManager()
	x1 := m.CreatePI()
	m.CreatePO(m.Or(x1, x1.Not())) // structurally constant-1

	var buf bytes.Buffer
	code, err := checkFileOnManager(m, nil, "", config.Default(), &buf)
	require.NoError(t, err)
	require.Equal(t, exitSAT, code)
	require.Equal(t, "1\n\n", buf.String())
}

func TestOptionsFromConfigAppliesOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.ModelCheck.FramesMax = 3
	cfg.ModelCheck.DeadlineSeconds = 5

	opts := optionsFromConfig(cfg)
	require.Equal(t, 3, opts.FramesMax)
	require.False(t, opts.Deadline.IsZero())
}
