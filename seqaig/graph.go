package seqaig

import "github.com/katalvlaran/logicsynth/aig"

// NewGraph builds a Graph over m, placing the physical registers exactly
// at the latch-input POs' fanin edges (one latch each), per the §9
// decision that latch outputs/inputs are the trailing NumLatches
// PIs/POs. initValues, if non-nil, supplies the initial value for each
// latch in order; missing or nil entries default to Unknown.
func NewGraph(m *aig.Manager, initValues []LatchValue) *Graph {
	g := &Graph{
		M:       m,
		edges:   make(map[EdgeRef]*Latches),
		fanouts: make(map[int][]EdgeRef),
	}

	for v := 1; v < m.NumVars(); v++ {
		n, _ := m.Node(v)
		if n.Kind != aig.KindAnd {
			continue
		}
		g.fanouts[n.Fanin0.Var()] = append(g.fanouts[n.Fanin0.Var()], EdgeRef{Index: v, Slot: 0})
		g.fanouts[n.Fanin1.Var()] = append(g.fanouts[n.Fanin1.Var()], EdgeRef{Index: v, Slot: 1})
	}
	pos := m.POs()
	for i, p := range pos {
		g.fanouts[p.Var()] = append(g.fanouts[p.Var()], EdgeRef{IsPO: true, Index: i})
	}

	numRealPOs := len(pos) - m.NumLatches
	for i := 0; i < m.NumLatches; i++ {
		v := LVUnknown
		if initValues != nil && i < len(initValues) {
			v = initValues[i]
		}
		ref := EdgeRef{IsPO: true, Index: numRealPOs + i}
		g.edges[ref] = &Latches{Init: []LatchValue{v}}
	}

	return g
}

// edgeFanin returns the literal driving edge e.
func (g *Graph) edgeFanin(e EdgeRef) (aig.Lit, error) {
	if e.IsPO {
		pos := g.M.POs()
		if e.Index < 0 || e.Index >= len(pos) {
			return 0, ErrEdgeNotFound
		}
		return pos[e.Index], nil
	}
	n, err := g.M.Node(e.Index)
	if err != nil || n.Kind != aig.KindAnd {
		return 0, ErrEdgeNotFound
	}
	if e.Slot == 0 {
		return n.Fanin0, nil
	}
	return n.Fanin1, nil
}

func (g *Graph) latchesOf(e EdgeRef) *Latches {
	l, ok := g.edges[e]
	if !ok {
		l = &Latches{}
		g.edges[e] = l
	}
	return l
}

// FanoutsOf returns the fanout EdgeRefs of source variable n (edges whose
// driving literal has variable id n).
func (g *Graph) FanoutsOf(n int) []EdgeRef {
	return g.fanouts[n]
}

// ForEachEdge visits every currently annotated edge (K() > 0 at some
// point in its history; callers should not assume K()>0 now).
func (g *Graph) ForEachEdge(fn func(EdgeRef, *Latches)) {
	for ref, l := range g.edges {
		fn(ref, l)
	}
}

// K returns the current latch count on edge e (0 if never annotated).
func (g *Graph) K(e EdgeRef) int {
	if l, ok := g.edges[e]; ok {
		return l.K()
	}
	return 0
}

// FaninHead returns edge e's current head (index 0) latch value and
// whether e currently carries at least one latch; ok is false for an
// edge with K()==0, the same "no latch here" case K reports as 0.
func (g *Graph) FaninHead(e EdgeRef) (v LatchValue, ok bool) {
	l, present := g.edges[e]
	if !present || l.K() == 0 {
		return 0, false
	}
	return l.Init[0], true
}

// faninsOf returns the (up to two) fanin EdgeRefs of AND-node n.
func faninsOf(n int) []EdgeRef {
	return []EdgeRef{{Index: n, Slot: 0}, {Index: n, Slot: 1}}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// TryForwardStep performs a tentative (latch-count-only) forward retiming
// step over AND-node n: it requires both fanin edges to carry at least
// one latch, deletes one from each, and inserts one (Unknown) latch onto
// every fanout edge of n.
func (g *Graph) TryForwardStep(n int) error {
	node, err := g.M.Node(n)
	if err != nil || node.Kind != aig.KindAnd {
		return ErrNotAnd
	}
	fanins := faninsOf(n)
	kMin := minInt(g.K(fanins[0]), g.K(fanins[1]))
	if kMin < 1 {
		return ErrNothingToRetime
	}
	for _, fe := range fanins {
		if _, err := g.latchesOf(fe).DeleteFirst(); err != nil {
			return err
		}
	}
	for _, fe := range g.fanouts[n] {
		if err := g.latchesOf(fe).InsertLast(LVUnknown); err != nil {
			return err
		}
	}

	return nil
}

// TryBackwardStep performs a tentative (latch-count-only) backward
// retiming step over AND-node n: it requires every fanout edge of n to
// carry at least one latch, deletes one from the tail of each, and
// inserts one (Unknown) latch onto both fanin edges of n.
func (g *Graph) TryBackwardStep(n int) error {
	_, err := g.TryBackwardStepTails(n)
	return err
}

// TryBackwardStepTails behaves exactly like TryBackwardStep but also
// returns the latch value deleted from the tail of each fanout edge, in
// FanoutsOf(n) order. The retime package needs these to constrain the
// §4.D init-reconstruction SAT problem: a tail value discarded here is
// exactly the "known polarity" that problem's companion node for n must
// reproduce.
func (g *Graph) TryBackwardStepTails(n int) ([]LatchValue, error) {
	node, err := g.M.Node(n)
	if err != nil || node.Kind != aig.KindAnd {
		return nil, ErrNotAnd
	}
	fanouts := g.fanouts[n]
	if len(fanouts) == 0 {
		return nil, ErrNothingToRetime
	}
	kFanMin := -1
	for _, fe := range fanouts {
		k := g.K(fe)
		if kFanMin == -1 || k < kFanMin {
			kFanMin = k
		}
	}
	if kFanMin < 1 {
		return nil, ErrNothingToRetime
	}
	tails := make([]LatchValue, 0, len(fanouts))
	for _, fe := range fanouts {
		v, err := g.latchesOf(fe).DeleteLast()
		if err != nil {
			return nil, err
		}
		tails = append(tails, v)
	}
	for _, fe := range faninsOf(n) {
		if err := g.latchesOf(fe).InsertFirst(LVUnknown); err != nil {
			return nil, err
		}
	}

	return tails, nil
}

// RetimeForwardStep is the value-preserving counterpart to
// TryForwardStep: the value pushed onto each fanout edge is the 3-valued
// AND of n's two (sign-adjusted) deleted fanin values, per spec §4.C
// step 2 ("if any is ZERO then result ZERO; else if all are ONE then
// ONE; else DC").
func (g *Graph) RetimeForwardStep(n int) error {
	node, err := g.M.Node(n)
	if err != nil || node.Kind != aig.KindAnd {
		return ErrNotAnd
	}
	fanins := faninsOf(n)
	kMin := minInt(g.K(fanins[0]), g.K(fanins[1]))
	if kMin < 1 {
		return ErrNothingToRetime
	}
	v0, err := g.latchesOf(fanins[0]).DeleteFirst()
	if err != nil {
		return err
	}
	v1, err := g.latchesOf(fanins[1]).DeleteFirst()
	if err != nil {
		return err
	}
	combined := combineAnd(applySign(v0, node.Fanin0.Sign()), applySign(v1, node.Fanin1.Sign()))
	for _, fe := range g.fanouts[n] {
		if err := g.latchesOf(fe).InsertLast(combined); err != nil {
			return err
		}
	}

	return nil
}

// combineAnd implements the 3-valued AND used to retime an initial value
// through a gate: ZERO dominates, ONE+ONE=ONE, anything else is DC.
func combineAnd(a, b LatchValue) LatchValue {
	if a == LVZero || b == LVZero {
		return LVZero
	}
	if a == LVOne && b == LVOne {
		return LVOne
	}
	return LVDC
}

// DetectShareableLatchGroups reports, for node n, groups of its fanout
// edges that currently carry an identical head-adjacent latch count and
// value and are therefore candidates for the §4.C latch-sharing
// optimization (a single shared buffer register replacing duplicates).
// Structural realization (inserting an actual buffer node) is left to the
// caller, since it requires a manager-level BUF node this package does
// not model.
func (g *Graph) DetectShareableLatchGroups(n int) [][]EdgeRef {
	fanouts := g.fanouts[n]
	groups := make(map[string][]EdgeRef)
	for _, fe := range fanouts {
		l, ok := g.edges[fe]
		if !ok || l.K() == 0 {
			continue
		}
		key := latchKey(l)
		groups[key] = append(groups[key], fe)
	}
	var out [][]EdgeRef
	for _, g := range groups {
		if len(g) > 1 {
			out = append(out, g)
		}
	}

	return out
}

// RealizeShareableLatchGroups merges every group DetectShareableLatchGroups
// finds for node n into one physical register per group: every edge in a
// group is repointed to the same *Latches object, so a later mutation on
// any one of them (including a subsequent retiming move) is visible to
// all of them, exactly as if one shared register fed every edge in the
// group instead of one apiece. It returns the number of registers this
// removes (len(group)-1 per group). Structural realization as a distinct
// buffer node in the underlying AIG is not possible here — this package
// has no manager-level BUF primitive (see DetectShareableLatchGroups) —
// so sharing is done at the edge-storage level, which is the only
// notion of "one register" this package's data model can express.
func (g *Graph) RealizeShareableLatchGroups(n int) int {
	removed := 0
	for _, group := range g.DetectShareableLatchGroups(n) {
		canon := g.edges[group[0]]
		for _, fe := range group[1:] {
			g.edges[fe] = canon
			removed++
		}
	}
	return removed
}

func latchKey(l *Latches) string {
	b := make([]byte, len(l.Init))
	for i, v := range l.Init {
		b[i] = byte('0' + v)
	}
	return string(b)
}
