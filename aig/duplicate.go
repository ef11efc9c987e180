package aig

import "sort"

// checkDuplicatePreconditions hardens the §9 assumption that
// pManTime == NULL and pManHaig == NULL into an explicit precondition on
// every duplication variant.
func checkDuplicatePreconditions(m *Manager) error {
	if m == nil {
		return ErrNilManager
	}
	if m.Timing != nil || m.History != nil {
		return ErrPreconditionFailed
	}

	return nil
}

// copier carries the src->dst variable mapping while re-strashing a cone.
type copier struct {
	src, dst *Manager
	mapped   map[int]Lit
	override map[int]Lit // src PI var -> dst literal override (cofactoring)
}

func newCopier(src, dst *Manager) *copier {
	return &copier{src: src, dst: dst, mapped: map[int]Lit{0: ConstFalse}}
}

// copyLit maps a source literal into dst, recursively copying any
// not-yet-mapped fanin cone first (post-order).
func (c *copier) copyLit(l Lit) Lit {
	v := l.Var()
	if lit, ok := c.mapped[v]; ok {
		return applySign(lit, l.Sign())
	}
	if over, ok := c.override[v]; ok {
		c.mapped[v] = over
		return applySign(over, l.Sign())
	}

	n, err := c.src.Node(v)
	if err != nil {
		return ConstFalse
	}
	var dstLit Lit
	switch n.Kind {
	case KindConst0:
		dstLit = ConstFalse
	case KindPI:
		dstLit = c.dst.CreatePI()
	case KindAnd:
		a := c.copyLit(n.Fanin0)
		b := c.copyLit(n.Fanin1)
		dstLit = c.dst.And(a, b)
	}
	c.mapped[v] = dstLit

	return applySign(dstLit, l.Sign())
}

func applySign(l Lit, sign bool) Lit {
	if sign {
		return l.Not()
	}
	return l
}

// DuplicateSimple re-strashes src into a fresh Manager: PIs in order, then
// every AND in topological (id) order, then POs. Unlike the DFS/ordered
// variants it recreates every AND regardless of PO reachability.
func DuplicateSimple(src *Manager) (*Manager, error) {
	if err := checkDuplicatePreconditions(src); err != nil {
		return nil, err
	}
	dst := NewManager()
	c := newCopier(src, dst)
	for _, pv := range src.piVars {
		c.mapped[pv] = dst.CreatePI()
	}
	for _, av := range src.TopoAnds() {
		n, _ := src.Node(av)
		a := c.copyLit(n.Fanin0)
		b := c.copyLit(n.Fanin1)
		c.mapped[av] = dst.And(a, b)
	}
	for _, pLit := range src.POs() {
		dst.CreatePO(c.copyLit(pLit))
	}
	dst.NumLatches = src.NumLatches

	return dst, nil
}

// DuplicateDFS re-strashes only the cone reachable from src's POs,
// visiting each PO's fanin recursively (children first). This implicitly
// performs structural cleanup: every node in the result is reachable from
// some PO.
func DuplicateDFS(src *Manager) (*Manager, error) {
	if err := checkDuplicatePreconditions(src); err != nil {
		return nil, err
	}
	dst := NewManager()
	c := newCopier(src, dst)
	for _, pLit := range src.POs() {
		dst.CreatePO(c.copyLit(pLit))
	}
	dst.NumLatches = src.NumLatches

	return dst, nil
}

// DuplicateOrdered behaves like DuplicateDFS but additionally guarantees
// that reached AND nodes are created in source topological (id) order,
// for passes that require stable id ordering downstream.
func DuplicateOrdered(src *Manager) (*Manager, error) {
	if err := checkDuplicatePreconditions(src); err != nil {
		return nil, err
	}
	reached := reachableFromPOs(src)
	ids := make([]int, 0, len(reached))
	for v := range reached {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	dst := NewManager()
	c := newCopier(src, dst)
	for _, v := range ids {
		n, _ := src.Node(v)
		switch n.Kind {
		case KindPI:
			c.mapped[v] = dst.CreatePI()
		case KindAnd:
			a := c.copyLit(n.Fanin0)
			b := c.copyLit(n.Fanin1)
			c.mapped[v] = dst.And(a, b)
		}
	}
	for _, pLit := range src.POs() {
		dst.CreatePO(c.copyLit(pLit))
	}
	dst.NumLatches = src.NumLatches

	return dst, nil
}

// Cofactor re-strashes the cone reachable from src's POs with PI index
// piIdx substituted for the constant value (false/true), collapsing much
// of the cone structurally.
func Cofactor(src *Manager, piIdx int, value bool) (*Manager, error) {
	if err := checkDuplicatePreconditions(src); err != nil {
		return nil, err
	}
	if piIdx < 0 || piIdx >= len(src.piVars) {
		return nil, ErrVarOutOfRange
	}
	dst := NewManager()
	c := newCopier(src, dst)
	c.override = map[int]Lit{src.piVars[piIdx]: boolLit(value)}
	for _, pLit := range src.POs() {
		dst.CreatePO(c.copyLit(pLit))
	}
	dst.NumLatches = src.NumLatches

	return dst, nil
}

func boolLit(v bool) Lit {
	if v {
		return ConstTrue
	}
	return ConstFalse
}

// Trim re-strashes the PO-reachable cone, additionally dropping PIs with
// zero original fanout — except latch outputs, which are preserved per
// spec §4.B regardless of fanout (they must survive for the register
// count to remain meaningful).
func Trim(src *Manager) (*Manager, error) {
	if err := checkDuplicatePreconditions(src); err != nil {
		return nil, err
	}
	dst := NewManager()
	c := newCopier(src, dst)
	numRealPIs := len(src.piVars) - src.NumLatches
	for i, pv := range src.piVars {
		n, _ := src.Node(pv)
		isLatchOut := i >= numRealPIs
		if n.fanoutCount == 0 && !isLatchOut {
			continue // dropped: not mapped, so any future reference would be a bug upstream
		}
		c.mapped[pv] = dst.CreatePI()
	}
	for _, pLit := range src.POs() {
		dst.CreatePO(c.copyLit(pLit))
	}
	dst.NumLatches = src.NumLatches

	return dst, nil
}

// Miter combines two single-output, register-free AIGs with identical PI
// counts into one AIG whose single PO is op(po1, po2), sharing the PI set.
func Miter(a, b *Manager, op Oper) (*Manager, error) {
	if err := checkDuplicatePreconditions(a); err != nil {
		return nil, err
	}
	if err := checkDuplicatePreconditions(b); err != nil {
		return nil, err
	}
	if a.NumLatches != 0 || b.NumLatches != 0 {
		return nil, ErrPreconditionFailed
	}
	if len(a.POs()) != 1 || len(b.POs()) != 1 {
		return nil, ErrPreconditionFailed
	}
	if len(a.piVars) != len(b.piVars) {
		return nil, ErrPreconditionFailed
	}

	dst := NewManager()
	shared := make([]Lit, len(a.piVars))
	for i := range a.piVars {
		shared[i] = dst.CreatePI()
	}

	ca := newCopier(a, dst)
	for i, pv := range a.piVars {
		ca.mapped[pv] = shared[i]
	}
	cb := newCopier(b, dst)
	for i, pv := range b.piVars {
		cb.mapped[pv] = shared[i]
	}

	outA := ca.copyLit(a.POs()[0])
	outB := cb.copyLit(b.POs()[0])
	dst.CreatePO(dst.ApplyOper(op, outA, outB))

	return dst, nil
}

// OrOfPOs folds every (real, non-latch) PO of src into a single
// Or-reduced output. When keepLatches is true, the latch-input POs are
// copied through unchanged instead of being folded into the reduction.
func OrOfPOs(src *Manager, keepLatches bool) (*Manager, error) {
	if err := checkDuplicatePreconditions(src); err != nil {
		return nil, err
	}
	dst := NewManager()
	c := newCopier(src, dst)
	pos := src.POs()
	numRealPOs := len(pos) - src.NumLatches

	acc := ConstFalse
	for i := 0; i < numRealPOs; i++ {
		acc = dst.Or(acc, c.copyLit(pos[i]))
	}
	dst.CreatePO(acc)

	if keepLatches {
		for i := numRealPOs; i < len(pos); i++ {
			dst.CreatePO(c.copyLit(pos[i]))
		}
		dst.NumLatches = src.NumLatches
	}

	return dst, nil
}

// reachableFromPOs returns the set of variable ids reachable from src's
// POs (including PIs and the constant), via a single DFS.
func reachableFromPOs(src *Manager) map[int]bool {
	seen := make(map[int]bool, src.NumVars())
	var visit func(v int)
	visit = func(v int) {
		if seen[v] {
			return
		}
		seen[v] = true
		n, err := src.Node(v)
		if err != nil || n.Kind != KindAnd {
			return
		}
		visit(n.Fanin0.Var())
		visit(n.Fanin1.Var())
	}
	for _, pLit := range src.POs() {
		visit(pLit.Var())
	}

	return seen
}

// Cleanup removes nodes unreachable from any PO by re-strashing through
// DuplicateOrdered, and reports the topology invariant check described in
// spec §4.A: every fanin id is strictly less than its node's id.
func Cleanup(src *Manager) (*Manager, error) {
	dst, err := DuplicateOrdered(src)
	if err != nil {
		return nil, err
	}
	if !CheckTopologicalIDs(dst) {
		return nil, ErrPreconditionFailed
	}

	return dst, nil
}

// CheckTopologicalIDs verifies that for every AND node, both fanin
// variable ids are strictly less than the node's own variable id.
func CheckTopologicalIDs(m *Manager) bool {
	for v := 1; v < m.NumVars(); v++ {
		n, _ := m.Node(v)
		if n.Kind != KindAnd {
			continue
		}
		if n.Fanin0.Var() >= v || n.Fanin1.Var() >= v {
			return false
		}
	}

	return true
}
