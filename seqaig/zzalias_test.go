package seqaig

import (
	"testing"

	"github.com/katalvlaran/logicsynth/aig"
)

func TestAliasBugDemo(t *testing.T) {
	m := aig.NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	c := m.CreatePI()
	// n is shared fanin of m1 and m2
	n := m.And(a, b)
	m1 := m.And(n, c)
	m2 := m.And(n, c)
	m.CreatePO(m1)
	m.CreatePO(m2)

	g := NewGraph(m, nil)
	// give both m1's slot0 (from n) and m2's slot0 (from n) one matching latch
	e1 := EdgeRef{Index: m1.Var(), Slot: 0}
	e2 := EdgeRef{Index: m2.Var(), Slot: 0}
	g.latchesOf(e1).InsertFirst(LVOne)
	g.latchesOf(e2).InsertFirst(LVOne)

	removed := g.RealizeShareableLatchGroups(n.Var())
	t.Logf("removed=%d", removed)

	// give m1 another latch on its other fanin so forward step is possible
	e1b := EdgeRef{Index: m1.Var(), Slot: 1}
	g.latchesOf(e1b).InsertFirst(LVOne)

	if err := g.TryForwardStep(m1.Var()); err != nil {
		t.Fatalf("forward step err: %v", err)
	}

	// e2 (m2's slot0) should be untouched by m1's forward step
	if g.K(e2) != 1 {
		t.Fatalf("BUG: m2's independent latch edge was mutated by m1's step; K(e2)=%d", g.K(e2))
	}
}
