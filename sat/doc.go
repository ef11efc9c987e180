// Package sat implements a conflict-driven clause-learning (CDCL) SAT
// core: two-watched-literal propagation, first-UIP conflict analysis
// with one-level self-subsumption minimization, glue-tiered learned
// clause management, a VSIDS/FIFO hybrid decision heuristic, Luby
// restarts, and phase saving.
//
// Simplifications relative to a full production solver, each a
// deliberate scope decision rather than an oversight: clauses are not
// split into a dedicated binary fast path (the general two-watch scheme
// already gives binaries their expected O(1) propagation, since a
// two-literal clause has no non-watched literals to search); there is no
// variable elimination/subsumption preprocessor, so the model-extension
// reconstruction stack and the failed-literal transitive-reduction pass
// (both only needed to undo eliminated variables) are not implemented.
package sat
