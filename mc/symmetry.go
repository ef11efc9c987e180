package mc

import (
	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/sat"
	"github.com/katalvlaran/logicsynth/simulate"
)

// AnalyzeSymmetry runs the §4.E two-variable symmetry pipeline for PO
// poIdx of m: simulation-based refinement over w random words marks
// every pair it can prove non-symmetric, and a final SAT sweep
// (NewSymmetryOracle) resolves every pair simulation left undecided —
// the only path that can ever confirm a pair symmetric, since simulation
// alone can only ever witness a difference. Structural seeding
// (simulate.SeedStructural) is available to callers holding a node's
// fanin-cone supports directly from simulate.StructuralSupport; this
// driver covers the simulate+SAT half of §4.E on its own.
func AnalyzeSymmetry(m *aig.Manager, poIdx int, w int, seed int64, budget sat.Budget) (*simulate.SymmetryMatrices, error) {
	mat := simulate.NewSymmetryMatrices(m.NumPIs())

	eng, err := simulate.NewEngine(m, w, seed)
	if err != nil {
		return nil, err
	}
	eng.Randomize()
	simulate.RefineFromPattern(eng, mat, poIdx)

	mat.ResolveRemaining(NewSymmetryOracle(m, poIdx, budget))

	return mat, nil
}

// NewSymmetryOracle builds a simulate.SymmetryOracle deciding pair (u, v)
// of PI indices for PO poIdx of m via the §4.E SAT query: two copies of
// m's combinational logic are Tseitin-encoded into one shared
// sat.Solver, sharing every PI variable except u and v, one copy forced
// to (u=0,v=1) and the other to (u=1,v=0); the pair is symmetric iff the
// two copies' PO images cannot be made to differ, i.e. the miter is
// UNSAT. budget bounds each such query; a query that hits budget is left
// undecided (decided=false), the same as a timeout elsewhere in this
// package.
func NewSymmetryOracle(m *aig.Manager, poIdx int, budget sat.Budget) simulate.SymmetryOracle {
	return func(u, v int) (symmetric bool, decided bool) {
		pis := m.PIs()
		if u < 0 || v < 0 || u >= len(pis) || v >= len(pis) || u == v {
			return false, false
		}

		n := m.NumVars()
		s := sat.NewSolver(2 * n)
		encA := frameEncoder{m: m, s: s, offset: 0}
		encB := frameEncoder{m: m, s: s, offset: n}
		if err := encA.encode(); err != nil {
			return false, false
		}
		if err := encB.encode(); err != nil {
			return false, false
		}

		// Every PI other than u, v carries the same value in both copies.
		for i, pi := range pis {
			if i == u || i == v {
				continue
			}
			if err := equiv(s, encA.lit(pi), encB.lit(pi)); err != nil {
				return false, false
			}
		}

		uLit, vLit := pis[u], pis[v]
		forcedA := []sat.Lit{encA.lit(uLit).Not(), encA.lit(vLit)}
		forcedB := []sat.Lit{encB.lit(uLit), encB.lit(vLit).Not()}
		for _, lit := range forcedA {
			if err := s.AddClause([]sat.Lit{lit}); err != nil {
				return false, false
			}
		}
		for _, lit := range forcedB {
			if err := s.AddClause([]sat.Lit{lit}); err != nil {
				return false, false
			}
		}

		poA := encA.lit(m.POs()[poIdx])
		poB := encB.lit(m.POs()[poIdx])
		// Assert the two PO images differ (an XOR-miter without an extra
		// miter variable): (poA | poB) & (!poA | !poB).
		if err := s.AddClause([]sat.Lit{poA, poB}); err != nil {
			return false, false
		}
		if err := s.AddClause([]sat.Lit{poA.Not(), poB.Not()}); err != nil {
			return false, false
		}

		res := s.Solve(budget)
		switch res.Status {
		case sat.Unsatisfiable:
			return true, true
		case sat.Satisfiable:
			return false, true
		default:
			return false, false
		}
	}
}
