package mc

import "github.com/katalvlaran/logicsynth/aig"

// trivialVerdict reports whether PO idx's fanin is structurally constant
// after strashing (the cheapest possible pipeline stage 1 check): a
// constant-0 fanin means the property can never assert (UNSAT); a
// constant-1 fanin means it asserts immediately at frame 0 (SAT, with an
// empty input pattern).
func trivialVerdict(m *aig.Manager, idx int) (status Status, cex *Counterexample) {
	fanin := m.POs()[idx]
	if !fanin.IsConst() {
		return Undecided, nil
	}
	if fanin == aig.ConstFalse {
		return UNSAT, nil
	}
	return SAT, &Counterexample{Frame: 0, PIs: [][]bool{{}}, PO: idx}
}
