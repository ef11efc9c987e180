package aig

// IsMuxType reports whether variable v's node is the canonical AND
// encoding of Or(And(c,t), And(!c,e)) for some control/then/else triple,
// per spec §4.B.
func IsMuxType(m *Manager, v int) bool {
	_, _, _, ok := RecognizeMux(m, v)
	return ok
}

// RecognizeMux returns the control, then-leg, and else-leg of v if v is a
// mux-shaped AND node, with polarities normalized so c is non-inverted.
//
// A node n = And(f0, f1) is mux-shaped when both f0 and f1 are inverted
// references to AND nodes a = And(x0,x1) and b = And(y0,y1) that share a
// "grandchild pair of opposite polarity": some xi == Not(yj). That shared
// pair is the control; the remaining fanins of a and b are the then/else
// legs (n itself is then the complement of Or(And(c,t), And(!c,e)), i.e.
// Not(n) is the mux).
func RecognizeMux(m *Manager, v int) (c, t, e Lit, ok bool) {
	n, err := m.Node(v)
	if err != nil || n.Kind != KindAnd {
		return 0, 0, 0, false
	}
	f0, f1 := n.Fanin0, n.Fanin1
	if !f0.Sign() || !f1.Sign() || f0.IsConst() || f1.IsConst() {
		return 0, 0, 0, false
	}
	a, errA := m.Node(f0.Var())
	b, errB := m.Node(f1.Var())
	if errA != nil || errB != nil || a.Kind != KindAnd || b.Kind != KindAnd {
		return 0, 0, 0, false
	}

	aFanins := [2]Lit{a.Fanin0, a.Fanin1}
	bFanins := [2]Lit{b.Fanin0, b.Fanin1}
	for ai, ca := range aFanins {
		for bi, cb := range bFanins {
			if ca != cb.Not() {
				continue
			}
			tLit := aFanins[1-ai]
			eLit := bFanins[1-bi]
			if ca.Sign() {
				// ca stores !c; normalize so the returned control is non-inverted.
				return cb, eLit, tLit, true
			}
			return ca, tLit, eLit, true
		}
	}

	return 0, 0, 0, false
}

// RecognizeXor returns (a, b) such that v computes a XOR b, using the
// identity xor(a,b) = mux(a, !b, b).
func RecognizeXor(m *Manager, v int) (a, b Lit, ok bool) {
	c, t, e, mok := RecognizeMux(m, v)
	if !mok {
		return 0, 0, false
	}
	if t != e.Not() {
		return 0, 0, false
	}

	return c, e, true
}
