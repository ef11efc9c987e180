package aig

// Eval computes the combinational value of every variable given an
// assignment to the PIs (piVals must have len(m.PIs()) entries, in PI
// creation order), and returns the corresponding PO outputs in PO order.
// It is the simplest possible "simulate one pattern" primitive; the
// packed, vectorized version lives in the simulate package.
func Eval(m *Manager, piVals []bool) []bool {
	values := make([]bool, m.NumVars())
	for i, pv := range m.piVars {
		if i < len(piVals) {
			values[pv] = piVals[i]
		}
	}
	for _, av := range m.TopoAnds() {
		n, _ := m.Node(av)
		a := values[n.Fanin0.Var()] != n.Fanin0.Sign()
		b := values[n.Fanin1.Var()] != n.Fanin1.Sign()
		values[av] = a && b
	}

	out := make([]bool, len(m.pos))
	for i, p := range m.pos {
		out[i] = values[p.fanin.Var()] != p.fanin.Sign()
	}

	return out
}
