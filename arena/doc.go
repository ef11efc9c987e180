// Package arena implements a dense, id-addressed object pool shared by the
// higher-level graph engines (aig, seqaig, sat).
//
// What:
//   - Objects live in a flat slice indexed by a stable, monotonically
//     increasing integer id. Ids are never reused and objects are never
//     moved; all cross-references use ids, never pointers.
//   - A traversal ("mark") counter supports O(1) per-visit marking without
//     per-pass allocation: Mark(id) just stamps the object's scratch field
//     with the current generation; IsMarked(id) compares against it.
//   - When the generation counter reaches its overflow threshold,
//     IncrementTraversal rewrites every stamp to 0 and restarts the
//     counter at 1.
//
// Why:
//   - Every pass in this toolkit (strashing, cleanup, simulation, fraiging)
//     needs "have I visited this node yet in this pass" with no allocation
//     and no rehashing. A shared arena gives every engine the same answer.
//
// Complexity:
//   - New/Mark/IsMarked/Get: O(1).
//   - IncrementTraversal: O(1), except O(n) in the number of allocated
//     objects on the call that resets the counter at its overflow threshold.
//
// Errors:
//   - ErrIDOutOfRange — an id outside [0, Len()) was passed to an accessor.
package arena
