package mc

import (
	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/sat"
	"github.com/katalvlaran/logicsynth/seqaig"
)

// bmcCheck unrolls m's combinational logic over frames steps and asks
// whether primary output poIdx can assert in any of them, given init
// (nil, or an entry other than LVZero/LVOne, leaves that latch's initial
// value free for the SAT search to choose).
func bmcCheck(m *aig.Manager, init []seqaig.LatchValue, poIdx, frames int, budget sat.Budget) (sat.Result, []frameEncoder, error) {
	nPerFrame := m.NumVars()
	s := sat.NewSolver(nPerFrame * frames)

	encs := make([]frameEncoder, frames)
	for f := 0; f < frames; f++ {
		encs[f] = frameEncoder{m: m, s: s, offset: f * nPerFrame}
		if err := encs[f].encode(); err != nil {
			return sat.Result{}, nil, err
		}
	}

	for i := 0; i < m.NumLatches; i++ {
		outVar := latchOutputVar(m, i)
		if init != nil && i < len(init) {
			switch init[i] {
			case seqaig.LVZero:
				if err := s.AddClause([]sat.Lit{sat.NewLit(encs[0].satVar(outVar), true)}); err != nil {
					return sat.Result{}, nil, err
				}
			case seqaig.LVOne:
				if err := s.AddClause([]sat.Lit{sat.NewLit(encs[0].satVar(outVar), false)}); err != nil {
					return sat.Result{}, nil, err
				}
			}
		}
		for f := 1; f < frames; f++ {
			prevLit := encs[f-1].lit(latchInputLit(m, i))
			curLit := sat.NewLit(encs[f].satVar(outVar), false)
			if err := equiv(s, curLit, prevLit); err != nil {
				return sat.Result{}, nil, err
			}
		}
	}

	badLits := make([]sat.Lit, 0, frames)
	poFanin := m.POs()[poIdx]
	for f := 0; f < frames; f++ {
		badLits = append(badLits, encs[f].lit(poFanin))
	}
	if err := s.AddClause(badLits); err != nil {
		return sat.Result{}, nil, err
	}

	return s.Solve(budget), encs, nil
}

// extractCex reads the earliest frame at which poIdx's output asserted
// out of a satisfiable bmcCheck result, and the real-PI assignments at
// every frame up to and including it.
func extractCex(m *aig.Manager, encs []frameEncoder, res sat.Result, poIdx int) *Counterexample {
	if res.Status != sat.Satisfiable {
		return nil
	}
	poFanin := m.POs()[poIdx]
	frame := len(encs) - 1
	for f, enc := range encs {
		l := enc.lit(poFanin)
		v := res.Model[l.Var()]
		if l.Sign() {
			v = !v
		}
		if v {
			frame = f
			break
		}
	}

	realPIs := realPIVars(m)
	pis := make([][]bool, frame+1)
	for f := 0; f <= frame; f++ {
		row := make([]bool, len(realPIs))
		for i, v := range realPIs {
			row[i] = res.Model[encs[f].satVar(v)]
		}
		pis[f] = row
	}
	return &Counterexample{Frame: frame, PIs: pis, PO: poIdx}
}

// realPIVars returns the variable ids of every non-latch primary input.
func realPIVars(m *aig.Manager) []int {
	pis := m.PIs()
	n := len(pis) - m.NumLatches
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = pis[i].Var()
	}
	return out
}
