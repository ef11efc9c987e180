package simulate

// SymmetryOracle resolves an undecided pair of PIs via an external SAT
// query: assert the miter between f with u,v swapped one way versus the
// other; UNSAT means symmetric. Callers (typically the model-checking
// driver) supply this so this package stays free of a sat import.
type SymmetryOracle func(u, v int) (symmetric bool, decided bool)

// SymmetryMatrices holds, for one PO, the known-symmetric and
// known-non-symmetric pair relations over PI indices as square bitsets.
type SymmetryMatrices struct {
	n       int
	Sym     []bitset
	NonSym  []bitset
}

// NewSymmetryMatrices allocates empty n×n SYM/NONSYM matrices.
func NewSymmetryMatrices(n int) *SymmetryMatrices {
	m := &SymmetryMatrices{n: n, Sym: make([]bitset, n), NonSym: make([]bitset, n)}
	for i := 0; i < n; i++ {
		m.Sym[i] = newBitset(n)
		m.NonSym[i] = newBitset(n)
	}
	return m
}

func (m *SymmetryMatrices) markSym(u, v int) {
	m.Sym[u].set(v)
	m.Sym[v].set(u)
}

func (m *SymmetryMatrices) markNonSym(u, v int) {
	m.NonSym[u].set(v)
	m.NonSym[v].set(u)
}

// IsSymmetric reports whether (u, v) is currently known symmetric.
func (m *SymmetryMatrices) IsSymmetric(u, v int) bool { return m.Sym[u].get(v) }

// IsNonSymmetric reports whether (u, v) is currently known non-symmetric.
func (m *SymmetryMatrices) IsNonSymmetric(u, v int) bool { return m.NonSym[u].get(v) }

// SeedStructural seeds NONSYM on PI pairs that feed disjoint branches of
// po's fanin cone (one is in branches[0] only, the other in branches[1]
// only), per the structural half of the two-variable symmetry check;
// branches are typically a node's two fanin cones' structural supports.
// Callers additionally seed SYM directly for pairs known to feed the same
// XOR subgraph (aig.RecognizeXor), which this helper does not detect.
func SeedStructural(sup *Support, poIdx int, branches [2]bitset) *SymmetryMatrices {
	n := sup.nCi
	mat := NewSymmetryMatrices(n)
	for u := 0; u < n; u++ {
		inLeft := branches[0].get(u)
		inRight := branches[1].get(u)
		for v := u + 1; v < n; v++ {
			vLeft := branches[0].get(v)
			vRight := branches[1].get(v)
			if inLeft && !inRight && vRight && !vLeft {
				mat.markNonSym(u, v)
			}
			if inRight && !inLeft && vLeft && !vRight {
				mat.markNonSym(u, v)
			}
		}
	}
	return mat
}

// RefineFromPattern tests every currently-undecided pair (u, v) against
// e's current simulation state: swap PI columns u and v, re-propagate,
// and compare po's bits against the pre-swap baseline. Any differing bit
// is a witness of non-symmetry; marks NONSYM and restores e's PI columns
// before returning.
func RefineFromPattern(e *Engine, mat *SymmetryMatrices, poIdx int) {
	pos := e.M.POs()
	pis := e.M.PIs()
	baseline := make([]uint32, e.W)
	copy(baseline, e.litWords(pos[poIdx]))

	for u := 0; u < mat.n; u++ {
		for v := u + 1; v < mat.n; v++ {
			if mat.Sym[u].get(v) || mat.NonSym[u].get(v) {
				continue
			}
			uVar, vVar := pis[u].Var(), pis[v].Var()
			e.words[uVar], e.words[vVar] = e.words[vVar], e.words[uVar]
			e.Propagate()
			swapped := e.litWords(pos[poIdx])

			differs := false
			for i := 0; i < e.W; i++ {
				if baseline[i] != swapped[i] {
					differs = true
					break
				}
			}

			e.words[uVar], e.words[vVar] = e.words[vVar], e.words[uVar]
			e.Propagate()

			if differs {
				mat.markNonSym(u, v)
			}
		}
	}
}

// ResolveRemaining applies oracle to every pair still undecided (absent
// from both SYM and NONSYM) and records the verdict, applying transitive
// closure over SYM on every newly confirmed symmetric pair. Pairs the
// oracle declines to decide (decided=false, e.g. timeout) are left as is.
func (m *SymmetryMatrices) ResolveRemaining(oracle SymmetryOracle) {
	for u := 0; u < m.n; u++ {
		for v := u + 1; v < m.n; v++ {
			if m.Sym[u].get(v) || m.NonSym[u].get(v) {
				continue
			}
			sym, decided := oracle(u, v)
			if !decided {
				continue
			}
			if sym {
				m.markSym(u, v)
				m.closeSymTransitively()
			} else {
				m.markNonSym(u, v)
			}
		}
	}
}

func (m *SymmetryMatrices) closeSymTransitively() {
	changed := true
	for changed {
		changed = false
		for u := 0; u < m.n; u++ {
			for v := 0; v < m.n; v++ {
				if u == v || !m.Sym[u].get(v) {
					continue
				}
				for w := 0; w < m.n; w++ {
					if m.Sym[v].get(w) && !m.Sym[u].get(w) {
						m.markSym(u, w)
						changed = true
					}
				}
			}
		}
	}
}
