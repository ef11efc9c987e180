package mc

import (
	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/sat"
)

// frameEncoder copies one frame of m's combinational logic into a shared
// sat.Solver: aig variable v at this frame maps to sat variable
// offset+v+1 (sat variables are 1-indexed and never see variable 0).
type frameEncoder struct {
	m      *aig.Manager
	s      *sat.Solver
	offset int
}

func (e *frameEncoder) satVar(v int) int { return e.offset + v + 1 }

func (e *frameEncoder) lit(l aig.Lit) sat.Lit {
	return sat.NewLit(e.satVar(l.Var()), l.Sign())
}

// encode adds the constant and every AND gate's Tseitin clauses for this
// frame: z <-> a&b as (!z|a), (!z|b), (z|!a|!b).
func (e *frameEncoder) encode() error {
	if err := e.s.AddClause([]sat.Lit{sat.NewLit(e.satVar(0), true)}); err != nil {
		return err
	}
	for _, v := range e.m.TopoAnds() {
		n, err := e.m.Node(v)
		if err != nil {
			return err
		}
		z := sat.NewLit(e.satVar(v), false)
		a := e.lit(n.Fanin0)
		b := e.lit(n.Fanin1)
		if err := e.s.AddClause([]sat.Lit{z.Not(), a}); err != nil {
			return err
		}
		if err := e.s.AddClause([]sat.Lit{z.Not(), b}); err != nil {
			return err
		}
		if err := e.s.AddClause([]sat.Lit{z, a.Not(), b.Not()}); err != nil {
			return err
		}
	}
	return nil
}

// equiv adds clauses forcing a and b to the same truth value.
func equiv(s *sat.Solver, a, b sat.Lit) error {
	if err := s.AddClause([]sat.Lit{a.Not(), b}); err != nil {
		return err
	}
	return s.AddClause([]sat.Lit{a, b.Not()})
}

// numRealPOs returns the count of non-latch primary outputs.
func numRealPOs(m *aig.Manager) int {
	return len(m.POs()) - m.NumLatches
}

// latchOutputVar returns the variable id of the i'th latch output PI
// (trailing NumLatches primary inputs, per the AIGER ordering convention).
func latchOutputVar(m *aig.Manager, i int) int {
	pis := m.PIs()
	return pis[len(pis)-m.NumLatches+i].Var()
}

// latchInputLit returns the next-state-function literal driving the i'th
// latch (trailing NumLatches primary outputs).
func latchInputLit(m *aig.Manager, i int) aig.Lit {
	pos := m.POs()
	return pos[numRealPOs(m)+i]
}
