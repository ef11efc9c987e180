package mc

import (
	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/sat"
)

// kInductionStep checks the k-induction step obligation for PO poIdx:
// assuming the bad signal is false for k consecutive (otherwise free,
// not necessarily reachable) states, can it still become true at the
// k+1'th? UNSAT here, combined with a base-case BMC run that found no
// violation within k steps from the real initial states, proves the
// property invariant for all time.
func kInductionStep(m *aig.Manager, poIdx, k int, budget sat.Budget) (sat.Result, error) {
	frames := k + 1
	nPerFrame := m.NumVars()
	s := sat.NewSolver(nPerFrame * frames)

	encs := make([]frameEncoder, frames)
	for f := 0; f < frames; f++ {
		encs[f] = frameEncoder{m: m, s: s, offset: f * nPerFrame}
		if err := encs[f].encode(); err != nil {
			return sat.Result{}, err
		}
	}

	for i := 0; i < m.NumLatches; i++ {
		outVar := latchOutputVar(m, i)
		for f := 1; f < frames; f++ {
			prevLit := encs[f-1].lit(latchInputLit(m, i))
			curLit := sat.NewLit(encs[f].satVar(outVar), false)
			if err := equiv(s, curLit, prevLit); err != nil {
				return sat.Result{}, err
			}
		}
	}

	poFanin := m.POs()[poIdx]
	for f := 0; f < k; f++ {
		if err := s.AddClause([]sat.Lit{encs[f].lit(poFanin).Not()}); err != nil {
			return sat.Result{}, err
		}
	}
	if err := s.AddClause([]sat.Lit{encs[k].lit(poFanin)}); err != nil {
		return sat.Result{}, err
	}

	return s.Solve(budget), nil
}
