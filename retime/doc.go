// Package retime implements the Leiserson–Saxe retiming core of spec
// §4.D over a seqaig.Graph.
//
// What:
//   - LValues computes the L-value fixpoint for a candidate clock period
//     Fi, reporting feasibility of the POs under that period.
//   - MinimumPeriod binary-searches Fi over (0, FiMax] for the smallest
//     feasible period, where FiMax = maxLevel(N)+2 is always feasible.
//   - Lag derives each node's lag from its L-value; Realize translates
//     the lag vector into a sequence of forward/backward retime-try
//     moves via the worklist rule of §4.D, applying value-preserving
//     forward steps directly and tentative-count-only backward steps,
//     while accumulating the §4.D init-reconstruction network (a
//     companion AIG: an AND node per backward-retimed n over its fanins'
//     companion literals, the displaced fanout inits as forced outputs,
//     a fresh symbolic PI per new Unknown). ResolveInits then solves
//     that network with sat.Solver and writes back the model; only a
//     genuine UNSAT, an exhausted budget, or a graph with no backward
//     steps at all falls back to ResolveUnknownInits's all-DC path, per
//     §7.
//
// Complexity:
//   - LValues: O(passes * |AND nodes|), passes bounded by 20.
//   - MinimumPeriod: O(log(FiMax) * LValues).
//   - Realize: bounded by the total residual lag (terminates because
//     every successful step strictly decreases it).
package retime
