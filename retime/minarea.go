package retime

import (
	"sort"

	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/seqaig"
)

// minimizeAreaPasses bounds the greedy local search MinimizeArea performs
// before giving up on further improvement, the same fixed-iteration-cap
// idiom as maxRelaxationPasses above.
const minimizeAreaPasses = 8

// nodeLag returns the lag assigned to variable v, defaulting to 0 for
// variables outside lags (primary inputs, the constant, and PO boundaries,
// whose lag is fixed at zero by the Leiserson-Saxe formulation).
func nodeLag(lags map[int]int, v int) int {
	return lags[v]
}

// incidentLatchCount sums the post-retiming latch weight of every edge
// touching AND-node v (its two fanin edges and every fanout edge),
// substituting candidateLag for v's own lag while holding every other
// node's lag at its current lags[] value. ok is false if any touched edge
// would go negative, which would make candidateLag infeasible.
func incidentLatchCount(g *seqaig.Graph, lags map[int]int, v int, candidateLag int) (total int, ok bool) {
	n, err := g.M.Node(v)
	if err != nil {
		return 0, false
	}

	add := func(w, lagSink, lagSource int) bool {
		nw := w + lagSink - lagSource
		if nw < 0 {
			return false
		}
		total += nw
		return true
	}

	fi0 := seqaig.EdgeRef{Index: v, Slot: 0}
	fi1 := seqaig.EdgeRef{Index: v, Slot: 1}
	if !add(g.K(fi0), candidateLag, nodeLag(lags, n.Fanin0.Var())) {
		return 0, false
	}
	if !add(g.K(fi1), candidateLag, nodeLag(lags, n.Fanin1.Var())) {
		return 0, false
	}
	for _, fe := range g.FanoutsOf(v) {
		sinkLag := 0
		if !fe.IsPO {
			sinkLag = nodeLag(lags, fe.Index)
		}
		if !add(g.K(fe), sinkLag, candidateLag) {
			return 0, false
		}
	}

	return total, true
}

// MinimizeArea redistributes lag among equal-period lag vectors (as
// produced by LagVector, restricted to AND-node entries) to reduce total
// latch count, returning a new map left unmodified relative to lags on
// failure. Every trial move is accepted only if it keeps all of v's
// incident edges non-negative, so the result is still a legal retiming;
// the clock period of the redistributed lag vector is not re-checked, so
// a move that empties a latch-carrying edge can lengthen a combinational
// path beyond the period the input lags achieved.
//
// This is a greedy, node-local stand-in for the exact min-cost-flow
// redistribution the original performs: it only ever evaluates one node's
// incident edges per trial, so it can miss a globally optimal
// redistribution that requires moving several nodes in concert. Disabled
// by default, gated by internal/config.SolverConfig.Retime.MinimizeArea,
// since minimum clock period is the only property callers require.
func MinimizeArea(g *seqaig.Graph, lags map[int]int) map[int]int {
	out := make(map[int]int, len(lags))
	for v, l := range lags {
		out[v] = l
	}

	ids := make([]int, 0, len(out))
	for v := range out {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	for pass := 0; pass < minimizeAreaPasses; pass++ {
		improved := false
		for _, v := range ids {
			n, err := g.M.Node(v)
			if err != nil || n.Kind != aig.KindAnd {
				continue
			}
			current, ok := incidentLatchCount(g, out, v, out[v])
			if !ok {
				continue
			}
			for _, delta := range [2]int{-1, 1} {
				candidate := out[v] + delta
				total, ok := incidentLatchCount(g, out, v, candidate)
				if ok && total < current {
					out[v] = candidate
					current = total
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	return out
}
