package aig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManager_StrashingUniqueness(t *testing.T) {
	m := NewManager()
	a := m.CreatePI()
	b := m.CreatePI()

	l1 := m.And(a, b)
	l2 := m.And(a, b)
	require.Equal(t, l1, l2, "And(a,b) must return the same literal on repeat calls")

	l3 := m.And(b, a) // commuted order must still hash to the same node
	require.Equal(t, l1, l3)
}

func TestManager_ShortCircuits(t *testing.T) {
	m := NewManager()
	a := m.CreatePI()
	require.Equal(t, ConstFalse, m.And(ConstFalse, a))
	require.Equal(t, a, m.And(ConstTrue, a))
	require.Equal(t, a, m.And(a, a))
	require.Equal(t, ConstFalse, m.And(a, a.Not()))
}

func TestManager_TopologicalIDsInvariant(t *testing.T) {
	m := NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	c := m.CreatePI()
	n1 := m.And(a, b)
	n2 := m.And(n1, c)
	m.CreatePO(n2)

	require.True(t, CheckTopologicalIDs(m))
	for v := 1; v < m.NumVars(); v++ {
		n, err := m.Node(v)
		require.NoError(t, err)
		if n.Kind == KindAnd {
			require.Less(t, n.Fanin0.Var(), v)
			require.Less(t, n.Fanin1.Var(), v)
			require.LessOrEqual(t, n.Fanin0, n.Fanin1)
		}
	}
}

func TestManager_OrXorMux(t *testing.T) {
	m := NewManager()
	a := m.CreatePI()
	b := m.CreatePI()

	orLit := m.Or(a, b)
	m.CreatePO(orLit)
	require.Equal(t, []bool{false}, Eval(m, []bool{false, false})[:1])
	require.True(t, Eval(m, []bool{true, false})[0])
	require.True(t, Eval(m, []bool{false, true})[0])
	require.False(t, Eval(m, []bool{false, false})[0])

	m2 := NewManager()
	x := m2.CreatePI()
	y := m2.CreatePI()
	m2.CreatePO(m2.Xor(x, y))
	require.True(t, Eval(m2, []bool{true, false})[0])
	require.False(t, Eval(m2, []bool{true, true})[0])

	m3 := NewManager()
	c := m3.CreatePI()
	th := m3.CreatePI()
	el := m3.CreatePI()
	m3.CreatePO(m3.Mux(c, th, el))
	require.True(t, Eval(m3, []bool{true, true, false})[0])
	require.False(t, Eval(m3, []bool{true, false, true})[0])
	require.True(t, Eval(m3, []bool{false, false, true})[0])
}

func TestRecognizeMuxAndXor(t *testing.T) {
	m := NewManager()
	c := m.CreatePI()
	th := m.CreatePI()
	el := m.CreatePI()
	muxLit := m.Mux(c, th, el)

	gotC, gotT, gotE, ok := RecognizeMux(m, muxLit.Var())
	require.True(t, ok)
	require.Equal(t, c, gotC)
	require.Equal(t, th, gotT)
	require.Equal(t, el, gotE)

	m2 := NewManager()
	a := m2.CreatePI()
	b := m2.CreatePI()
	xorLit := m2.Xor(a, b)
	gotA, gotB, ok2 := RecognizeXor(m2, xorLit.Var())
	require.True(t, ok2)
	require.True(t, (gotA == a && gotB == b) || (gotA == b && gotB == a))
}

func TestDuplicateVariantsPreserveSimulation(t *testing.T) {
	m := NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	c := m.CreatePI()
	m.CreatePO(m.And(m.And(a, b), c))

	patterns := [][]bool{{true, true, true}, {true, false, true}, {false, true, true}}

	for name, dup := range map[string]func(*Manager) (*Manager, error){
		"simple":  DuplicateSimple,
		"dfs":     DuplicateDFS,
		"ordered": DuplicateOrdered,
	} {
		t.Run(name, func(t *testing.T) {
			out, err := dup(m)
			require.NoError(t, err)
			for _, p := range patterns {
				require.Equal(t, Eval(m, p), Eval(out, p))
			}
			require.True(t, CheckTopologicalIDs(out))
		})
	}
}

func TestCofactor(t *testing.T) {
	m := NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	m.CreatePO(m.And(a, b))

	out, err := Cofactor(m, 0, true) // a := 1, so PO reduces to b
	require.NoError(t, err)
	require.True(t, Eval(out, []bool{true})[0])
	require.False(t, Eval(out, []bool{false})[0])
}

func TestTrimDropsDeadPI(t *testing.T) {
	m := NewManager()
	a := m.CreatePI()
	_ = m.CreatePI() // dead, unused PI
	m.CreatePO(a)

	out, err := Trim(m)
	require.NoError(t, err)
	require.Equal(t, 1, len(out.piVars))
}

func TestMiterXorDetectsDifference(t *testing.T) {
	andM := NewManager()
	a1 := andM.CreatePI()
	b1 := andM.CreatePI()
	andM.CreatePO(andM.And(a1, b1))

	orM := NewManager()
	a2 := orM.CreatePI()
	b2 := orM.CreatePI()
	orM.CreatePO(orM.Or(a2, b2))

	miter, err := Miter(andM, orM, OperXor)
	require.NoError(t, err)
	// AND(1,0)=0, OR(1,0)=1 -> XOR miter output must be true (a mismatch).
	require.True(t, Eval(miter, []bool{true, false})[0])
	// AND(1,1)=1, OR(1,1)=1 -> miter output false (match).
	require.False(t, Eval(miter, []bool{true, true})[0])
}

func TestOrOfPOs(t *testing.T) {
	m := NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	m.CreatePO(a)
	m.CreatePO(b)

	out, err := OrOfPOs(m, false)
	require.NoError(t, err)
	require.Equal(t, 1, len(out.POs()))
	require.True(t, Eval(out, []bool{true, false})[0])
	require.False(t, Eval(out, []bool{false, false})[0])
}

func TestResimulate_AigerScenario(t *testing.T) {
	// aig 3 2 0 1 1: AND of x1,x2, PO = that AND.
	m := NewManager()
	x1 := m.CreatePI()
	x2 := m.CreatePI()
	m.CreatePO(m.And(x1, x2))

	cexTrue := &CounterExample{Frame: 0, PoIndex: 0, Bits: []bool{true, true}}
	require.True(t, Resimulate(m, cexTrue))

	cexFalse := &CounterExample{Frame: 0, PoIndex: 0, Bits: []bool{false, true}}
	require.False(t, Resimulate(m, cexFalse))
}

func TestManager_MarkIsScopedToOneTraversalGeneration(t *testing.T) {
	m := NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	n := m.And(a, b)

	m.IncrementTraversal()
	require.NoError(t, m.Mark(n.Var()))
	require.True(t, m.IsMarked(n.Var()))
	require.False(t, m.IsMarked(a.Var()))

	m.IncrementTraversal()
	require.False(t, m.IsMarked(n.Var()), "stamp from the previous generation must not carry over")
}

func TestManager_StatsSnapshot(t *testing.T) {
	m := NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	c := m.CreatePI()
	n1 := m.And(a, b)
	n2 := m.And(n1, c)
	m.CreatePO(n2)
	m.NumLatches = 0

	stats := m.Stats()
	require.Equal(t, 3, stats.NumPIs)
	require.Equal(t, 1, stats.NumPOs)
	require.Equal(t, 0, stats.NumLatches)
	require.Equal(t, 2, stats.NumAnds)
	require.Equal(t, 2, stats.MaxLevel)
}

func TestManager_FanoutCountTracksCreatePOAndAnd(t *testing.T) {
	m := NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	n := m.And(a, b)
	m.CreatePO(n)
	m.CreatePO(a) // a now fans out to both the AND node and this PO

	node, err := m.Node(a.Var())
	require.NoError(t, err)
	require.Equal(t, 2, node.fanoutCount)
}
