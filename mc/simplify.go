package mc

import (
	"github.com/katalvlaran/logicsynth/internal/logging"
	"github.com/katalvlaran/logicsynth/retime"
	"github.com/katalvlaran/logicsynth/sat"
	"github.com/katalvlaran/logicsynth/seqaig"
)

// sequentialSimplify runs up to iters rounds of retiming-based
// simplification over g: each round computes the current minimum
// feasible clock period, derives the Leiserson-Saxe lag vector at that
// period, and realizes it via retime.Realize, shifting latches toward
// the configuration with the smallest critical path. It stops early once
// a round makes no progress. When minimizeArea is set, each round's lag
// vector is first passed through retime.MinimizeArea to redistribute lag
// among equal-period solutions toward fewer total latches, before
// realizing it. Every round's backward steps leave their displaced
// initial values to be settled immediately by retime.ResolveInits (the
// §4.D SAT reconstruction, falling back to DC only on UNSAT/timeout)
// before the next round recomputes L-values over the result. Shareable
// latch groups (§4.C) are folded into one physical register per group
// after each round. Sequential cleanup, phase abstraction, and
// fraiging-based latch correspondence are not implemented here — they
// require dangling-node removal and a companion history AIG the aig
// package does not expose; see DESIGN.md.
func sequentialSimplify(g *seqaig.Graph, iters int, minimizeArea bool, conflictBudget int) []retime.Report {
	budget := sat.Budget{MaxConflicts: conflictBudget}
	reports := make([]retime.Report, 0, iters)
	for i := 0; i < iters; i++ {
		fi := retime.MinimumPeriod(g)
		values, converged, _ := retime.LValues(g, fi)
		if !converged {
			break
		}
		lags := retime.LagVector(values, fi)
		if minimizeArea {
			lags = retime.MinimizeArea(g, lags)
		}
		report := retime.Realize(g, lags)
		reports = append(reports, report)

		satResolved, dcResolved := retime.ResolveInits(g, report, budget)
		logging.Debug("seq-simplify: init reconstruction", "round", i, "sat_resolved", satResolved, "dc_resolved", dcResolved)
		if dcResolved > 0 {
			logging.Warn("seq-simplify: init reconstruction fell back to DC", "round", i, "count", dcResolved)
		}

		for _, v := range g.M.TopoAnds() {
			g.RealizeShareableLatchGroups(v)
		}

		if report.ForwardSteps == 0 && report.BackwardSteps == 0 {
			break
		}
	}
	return reports
}
