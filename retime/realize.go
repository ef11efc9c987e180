package retime

import (
	"sort"

	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/sat"
	"github.com/katalvlaran/logicsynth/seqaig"
)

// Report summarizes one Realize call.
type Report struct {
	ForwardSteps  int
	BackwardSteps int
	// StrangeNodes lists AND-node variable ids left with outstanding
	// residual lag because no progress could be made on them — a stall
	// the worklist rule treats as a bug per spec §4.D ("strange steps").
	StrangeNodes []int

	// problem accumulates the §4.D init-reconstruction network for every
	// backward step this call performed; nil if none did. ResolveInits
	// consumes it.
	problem *initProblem
}

// Realize translates a lag vector (as produced by LagVector, restricted
// to AND-node entries) into a sequence of retime-try moves using the
// worklist rule of §4.D: repeatedly scan nodes with outstanding residual
// lag whose relevant minimum latch count is positive, perform one step,
// and decrement the residual. Forward moves are value-preserving
// (RetimeForwardStep); backward moves are tentative (TryBackwardStepTails)
// and leave Unknown placeholders for ResolveInits to settle.
func Realize(g *seqaig.Graph, lags map[int]int) Report {
	residual := make(map[int]int, len(lags))
	ids := make([]int, 0, len(lags))
	for v, l := range lags {
		n, err := g.M.Node(v)
		if err != nil || n.Kind != aig.KindAnd || l == 0 {
			continue
		}
		residual[v] = l
		ids = append(ids, v)
	}
	sort.Ints(ids)

	var report Report
	for {
		progressed := false
		for _, v := range ids {
			r := residual[v]
			if r == 0 {
				continue
			}
			if r < 0 {
				fanins := []seqaig.EdgeRef{{Index: v, Slot: 0}, {Index: v, Slot: 1}}
				if g.K(fanins[0]) > 0 && g.K(fanins[1]) > 0 {
					if err := g.RetimeForwardStep(v); err == nil {
						residual[v]++
						report.ForwardSteps++
						progressed = true
					}
				}
			} else {
				if canBackward(g, v) {
					fanins := [2]seqaig.EdgeRef{{Index: v, Slot: 0}, {Index: v, Slot: 1}}
					tails, err := g.TryBackwardStepTails(v)
					if err == nil {
						if report.problem == nil {
							report.problem = newInitProblem()
						}
						report.problem.record(g, v, fanins, tails)
						residual[v]--
						report.BackwardSteps++
						progressed = true
					}
				}
			}
		}
		if !progressed {
			break
		}
	}

	for _, v := range ids {
		if residual[v] != 0 {
			report.StrangeNodes = append(report.StrangeNodes, v)
		}
	}

	return report
}

func canBackward(g *seqaig.Graph, n int) bool {
	fanouts := g.FanoutsOf(n)
	if len(fanouts) == 0 {
		return false
	}
	for _, fe := range fanouts {
		if g.K(fe) == 0 {
			return false
		}
	}

	return true
}

// ResolveUnknownInits replaces every Unknown latch value left in g with
// DC. It is the §7 fallback ResolveInits falls back to when the §4.D
// init-reconstruction problem is unsatisfiable, exceeds budget, or was
// never built (no backward step occurred); it is also safe to call
// directly on a graph whose Unknown values never went through Realize at
// all (e.g. one built with unresolved initValues).
func ResolveUnknownInits(g *seqaig.Graph) int {
	resolved := 0
	g.ForEachEdge(func(_ seqaig.EdgeRef, l *seqaig.Latches) {
		for i, v := range l.Init {
			if v == seqaig.LVUnknown {
				l.Init[i] = seqaig.LVDC
				resolved++
			}
		}
	})

	return resolved
}

// ResolveInits settles every Unknown latch value left by report's
// backward steps (see Realize): it solves the §4.D init-reconstruction
// network report accumulated, under budget, and writes back the SAT
// model's {0,1} assignment for each edge it pins. Any edge the network
// doesn't cover — because no backward step ran, the network was
// unsatisfiable, or solving hit budget — is then resolved to DC via
// ResolveUnknownInits, the §7 fallback. It returns the count resolved by
// each path.
func ResolveInits(g *seqaig.Graph, report Report, budget sat.Budget) (satResolved, dcResolved int) {
	if report.problem != nil {
		if values, ok := report.problem.solve(budget); ok {
			g.ForEachEdge(func(e seqaig.EdgeRef, l *seqaig.Latches) {
				if len(l.Init) == 0 || l.Init[0] != seqaig.LVUnknown {
					return
				}
				if resolved, ok := values[e]; ok {
					l.Init[0] = resolved
					satResolved++
				}
			})
		}
	}

	dcResolved = ResolveUnknownInits(g)

	return satResolved, dcResolved
}
