package retime

import (
	"testing"

	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/seqaig"
	"github.com/stretchr/testify/require"
)

// buildFanoutThree builds a single AND node v with two unregistered PI
// fanins and three latch-input POs (one register each) driven by v, so v
// has more fanout edges than fanin edges and a positive lag (moving its
// latches backward onto the fanins) is strictly profitable.
func buildFanoutThree(t *testing.T) (*seqaig.Graph, aig.Lit) {
	t.Helper()
	m := aig.NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	v := m.And(a, b)
	m.CreatePO(v)
	m.CreatePO(v)
	m.CreatePO(v)
	m.NumLatches = 3

	g := seqaig.NewGraph(m, []seqaig.LatchValue{seqaig.LVZero, seqaig.LVZero, seqaig.LVZero})
	return g, v
}

func TestMinimizeAreaRedistributesLagWhenFanoutDominates(t *testing.T) {
	g, v := buildFanoutThree(t)

	lags := map[int]int{v.Var(): 0}
	out := MinimizeArea(g, lags)

	require.Equal(t, 1, out[v.Var()], "moving latches backward trades 3 fanout latches for 2 fanin latches, a net win")
	require.Equal(t, 0, lags[v.Var()], "MinimizeArea must not mutate its input map")
}

func TestMinimizeAreaNeverLeavesANegativeEdge(t *testing.T) {
	g, v := buildFanoutThree(t)

	out := MinimizeArea(g, map[int]int{v.Var(): 0})

	fanins := []seqaig.EdgeRef{{Index: v.Var(), Slot: 0}, {Index: v.Var(), Slot: 1}}
	for _, fe := range fanins {
		w := g.K(fe) + out[v.Var()]
		require.GreaterOrEqual(t, w, 0)
	}
	for _, fe := range g.FanoutsOf(v.Var()) {
		w := g.K(fe) - out[v.Var()]
		require.GreaterOrEqual(t, w, 0)
	}
}

func TestMinimizeAreaIsStableOnceOptimal(t *testing.T) {
	g, v := buildFanoutThree(t)

	first := MinimizeArea(g, map[int]int{v.Var(): 0})
	second := MinimizeArea(g, first)
	require.Equal(t, first[v.Var()], second[v.Var()], "re-running on an already-optimal lag vector must be a no-op")
}
