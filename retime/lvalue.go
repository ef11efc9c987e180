package retime

import "github.com/katalvlaran/logicsynth/seqaig"

// maxRelaxationPasses bounds the L-value fixpoint iteration; exceeding it
// without convergence is reported as non-convergence (treated as
// infeasible), per spec §4.D.
const maxRelaxationPasses = 20

// MaxLevel returns the maximum node level in g's manager.
func MaxLevel(g *seqaig.Graph) int {
	max := 0
	for v := 0; v < g.M.NumVars(); v++ {
		if l := g.M.Level(v); l > max {
			max = l
		}
	}

	return max
}

// LValues computes the Leiserson–Saxe L-value fixpoint for candidate
// period fi and reports whether the result converged (within
// maxRelaxationPasses) and whether every PO satisfies the period bound.
func LValues(g *seqaig.Graph, fi int) (values map[int]int, converged, feasible bool) {
	values = make(map[int]int, g.M.NumVars())
	values[0] = 0
	for _, l := range g.M.PIs() {
		values[l.Var()] = 0
	}

	ands := g.M.TopoAnds()
	converged = false
	for pass := 0; pass < maxRelaxationPasses; pass++ {
		changed := false
		for _, av := range ands {
			n, _ := g.M.Node(av)
			ku := g.K(seqaig.EdgeRef{Index: av, Slot: 0})
			kv := g.K(seqaig.EdgeRef{Index: av, Slot: 1})
			lu := values[n.Fanin0.Var()] - fi*ku
			lv := values[n.Fanin1.Var()] - fi*kv
			candidate := 1 + maxOf(lu, lv)
			if cur, ok := values[av]; !ok || candidate > cur {
				values[av] = candidate
				changed = true
			}
		}
		if !changed {
			converged = true
			break
		}
	}

	feasible = converged
	for i, poLit := range g.M.POs() {
		ku := g.K(seqaig.EdgeRef{IsPO: true, Index: i})
		lu := values[poLit.Var()] - fi*ku
		if lu > fi {
			feasible = false
		}
	}

	return values, converged, feasible
}

func maxOf(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Feasible reports whether period fi admits a valid retiming, per
// LValues.
func Feasible(g *seqaig.Graph, fi int) bool {
	_, _, feasible := LValues(g, fi)
	return feasible
}

// MinimumPeriod binary-searches Fi in (0, FiMax] for the smallest
// feasible clock period, where FiMax = MaxLevel(g)+2 is always feasible
// (spec §4.D).
func MinimumPeriod(g *seqaig.Graph) int {
	fiMax := MaxLevel(g) + 2
	lo, hi := 1, fiMax
	for lo < hi {
		mid := lo + (hi-lo)/2
		if Feasible(g, mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}
