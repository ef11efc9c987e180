// Package mc implements the model-checking driver: a fixed pipeline of
// combinational simplification, bounded model checking, sequential
// simplification, and per-PO retry, each stage checked against a
// wall-clock budget and observable via an optional Trace callback.
//
// Simplification relative to a full implementation: BMC here encodes
// one unrolling step per manager latch exactly as the AIGER convention
// pairs it (trailing latch-output PI with trailing latch-input PO),
// rather than accounting for any per-edge latch-count redistribution a
// prior retiming pass may have introduced on internal edges. Re-deriving
// an unrolled netlist that tracks arbitrary K() distributions is full
// retiming-aware BMC and is out of scope here; sequential simplification
// (stage 3) still operates on the real seqaig.Graph and its edge-local
// latch counts. Interpolation and BDD reachability (stage 4) are out of
// scope per the package's non-goals (no BDD package); that stage is
// replaced by a second, deeper BMC pass bounded by a larger frame count,
// followed (when that pass finds no violation) by a k-induction step at
// the same depth. This is a strictly weaker but compatible substitute: it
// can still prove SAT, proves UNSAT only when the k-induction step
// succeeds, and otherwise reports UNDECIDED where interpolation or BDDs
// might have proven a property invariant.
package mc
