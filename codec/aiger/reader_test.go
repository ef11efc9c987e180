package aiger

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/logicsynth/aig"
	"github.com/stretchr/testify/require"
)

// buildSimpleAnd builds the byte stream for "aig 3 2 0 1 1": two PIs,
// one AND gate computing x1&x2, one PO driven by it. The AND gate's
// fanins are delta-encoded with lhs=lit(x2)=4 (the larger literal) and
// rhs=lit(x1)=2: n=6, d0=n-lhs=2, d1=lhs-rhs=2.
func buildSimpleAnd() []byte {
	var buf bytes.Buffer
	buf.WriteString("aig 3 2 0 1 1\n")
	buf.WriteString("6\n")
	buf.WriteByte(2)
	buf.WriteByte(2)
	return buf.Bytes()
}

func TestReadSimpleAndGate(t *testing.T) {
	m, init, err := Read(bytes.NewReader(buildSimpleAnd()))
	require.NoError(t, err)
	require.Empty(t, init)
	require.Equal(t, 2, m.NumPIs())
	require.Equal(t, 1, len(m.POs()))
	require.Equal(t, 0, m.NumLatches)

	pis := m.PIs()
	x1, x2 := pis[0], pis[1]

	sim := func(a, b bool) bool {
		lit := m.POs()[0]
		vals := map[int]bool{x1.Var(): a, x2.Var(): b}
		return evalLit(m, lit, vals)
	}

	require.True(t, sim(true, true))
	require.False(t, sim(false, true))
	require.False(t, sim(true, false))
	require.False(t, sim(false, false))
}

// evalLit recursively evaluates lit over an explicit variable assignment,
// for test purposes only (the package itself has no evaluator — that is
// simulate.Engine's job).
func evalLit(m *aig.Manager, lit aig.Lit, vals map[int]bool) bool {
	v := lit.Var()
	var val bool
	if v == 0 {
		val = false
	} else if bv, ok := vals[v]; ok {
		val = bv
	} else {
		n, _ := m.Node(v)
		val = evalLit(m, n.Fanin0, vals) && evalLit(m, n.Fanin1, vals)
	}
	if lit.Sign() {
		return !val
	}
	return val
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, _, err := Read(bytes.NewReader([]byte("not-aig 1 1 0 1 0\n")))
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestReadRejectsInconsistentHeader(t *testing.T) {
	_, _, err := Read(bytes.NewReader([]byte("aig 5 2 0 1 1\n0\n")))
	require.ErrorIs(t, err, ErrBadHeader)
}

func TestReadRejectsShortAndGateStream(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("aig 3 2 0 1 1\n6\n")
	// Missing the two delta bytes entirely.
	_, _, err := Read(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
}
