package mc

import (
	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/sat"
	"github.com/katalvlaran/logicsynth/seqaig"
)

// Check runs the fixed model-checking pipeline over m/g and reports a
// single verdict across every real primary output: SAT if any PO can
// assert, UNSAT if none ever can, UNDECIDED if the budget runs out
// first. Since every stage below already operates per-PO (BMC and
// k-induction both target one PO's bad signal at a time), the §4.I
// stage-5 "per-PO retry on the reduced miter" coincides with simply
// completing this loop once rather than re-running a separately
// constructed reduced miter; see DESIGN.md.
func Check(m *aig.Manager, g *seqaig.Graph, initValues []seqaig.LatchValue, opts Options) Result {
	n := numRealPOs(m)
	anyUndecided := false

	for poIdx := 0; poIdx < n; poIdx++ {
		if opts.expired() {
			opts.trace("budget", "expired")
			return Result{Status: Undecided, Stage: "budget"}
		}
		res := checkOnePO(m, g, initValues, poIdx, opts)
		switch res.Status {
		case SAT:
			return res
		case Undecided:
			anyUndecided = true
		}
	}

	if anyUndecided {
		return Result{Status: Undecided, Stage: "per-po-retry"}
	}
	return Result{Status: UNSAT, Stage: "per-po-retry"}
}

func checkOnePO(m *aig.Manager, g *seqaig.Graph, initValues []seqaig.LatchValue, poIdx int, opts Options) Result {
	// Stage 1: combinational simplification of the miter.
	if status, cex := trivialVerdict(m, poIdx); status != Undecided {
		opts.trace("comb-simplify", status.String())
		return Result{Status: status, Cex: cex, Stage: "comb-simplify"}
	}

	// Stage 2: bounded model checking.
	budget := sat.Budget{MaxConflicts: opts.ConflictBudget}
	res, encs, err := bmcCheck(m, initValues, poIdx, opts.FramesMax, budget)
	if err != nil {
		opts.trace("bmc", "error")
		return Result{Status: Undecided, Stage: "bmc"}
	}
	if res.Status == sat.Satisfiable {
		cex := extractCex(m, encs, res, poIdx)
		opts.trace("bmc", "sat")
		return Result{Status: SAT, Cex: cex, Stage: "bmc"}
	}
	if opts.expired() {
		opts.trace("bmc", "undecided")
		return Result{Status: Undecided, Stage: "bmc"}
	}

	// Stage 3: sequential simplification loop.
	if g != nil {
		sequentialSimplify(g, opts.SeqSimplifyIters, opts.MinimizeRetimeArea, opts.ConflictBudget)
		opts.trace("seq-simplify", "done")
	}

	// Stage 4: deeper BMC plus k-induction, standing in for
	// interpolation/BDD reachability (out of scope — no BDD package).
	if m.NumLatches <= opts.RegisterLimit {
		deep, deepEncs, err := bmcCheck(m, initValues, poIdx, opts.DeepFramesMax, budget)
		if err == nil && deep.Status == sat.Satisfiable {
			cex := extractCex(m, deepEncs, deep, poIdx)
			opts.trace("deep-bmc", "sat")
			return Result{Status: SAT, Cex: cex, Stage: "deep-bmc"}
		}
		if err == nil && deep.Status == sat.Unsatisfiable {
			step, err2 := kInductionStep(m, poIdx, opts.DeepFramesMax, budget)
			if err2 == nil && step.Status == sat.Unsatisfiable {
				opts.trace("k-induction", "unsat")
				return Result{Status: UNSAT, Stage: "k-induction"}
			}
		}
	}

	opts.trace("deep-bmc", "undecided")
	return Result{Status: Undecided, Stage: "deep-bmc"}
}
