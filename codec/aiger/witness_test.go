package aiger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteWitnessFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWitness(&buf, [][]bool{{true, false}, {false, false, true}})
	require.NoError(t, err)
	require.Equal(t, "1\n1 0\n0 0 1\n", buf.String())
}

func TestWriteWitnessEmptyFrame(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWitness(&buf, [][]bool{{}})
	require.NoError(t, err)
	require.Equal(t, "1\n\n", buf.String())
}

func TestWriteUnsatFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteUnsat(&buf))
	require.Equal(t, "0\n", buf.String())
}
