// Package seqaig layers per-edge latch counts and initial values on top of
// an *aig.Manager, implementing spec §4.C.
//
// What:
//   - LatchValue: one of Zero, One, DC, Unknown (the four §3 init values).
//   - EdgeRef identifies a single fanin edge of an AND node (by consumer
//     variable + fanin slot) or of a PO (by PO index); every edge in the
//     manager is uniquely identified this way because each fanout branch
//     to a distinct consumer is a distinct edge for retiming purposes.
//   - Graph pairs an *aig.Manager with a sparse map of EdgeRef -> *Latches
//     (edges not present in the map carry zero latches).
//   - Retiming primitives: TryForwardStep/TryBackwardStep (latch-count
//     only, inserting Unknown values), TryBackwardStepTails (the same
//     backward step, also returning the deleted tail values; retime.Realize
//     uses it for backward moves) and RetimeForwardStep (value-preserving;
//     retime.Realize uses it for forward moves). The L-value feasibility
//     search in package retime does not call any of them.
//
// Why:
//   - Representing registers as edge annotations rather than graph nodes
//     is what lets the retiming core (§4.D) move them without touching
//     the underlying strashed AIG at all — only the annotation map
//     changes.
//
// Complexity:
//   - TryForwardStep/TryBackwardStep/RetimeForwardStep: O(fanout(n)).
//   - InsertFirst on one edge: O(k) for the slice copy; DeleteFirst,
//     InsertLast and DeleteLast: O(1) amortized.
//
// Errors:
//   - ErrNotAnd, ErrLatchCapacity, ErrNothingToRetime, ErrEdgeNotFound.
package seqaig
