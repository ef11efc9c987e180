// Package aig implements a structurally hashed And-Inverter Graph: the
// central data structure every other engine in this toolkit operates on.
//
// What:
//   - Literal: a non-negative int packing (variable, inversion bit).
//   - Manager: owns an ordered PI list, an ordered PO list, the internal
//     AND nodes in topological (id) order, and the structural-hash table
//     that guarantees no two AND nodes with the same (fanin0, fanin1) pair
//     ever coexist (strashing).
//   - Derived gates (Or/Xor/Mux) are expressed in terms of And, so they
//     inherit strashing for free.
//   - Duplication variants (Simple/DFS/Ordered/Cofactor/Trim/Miter/OrOfPOs)
//     re-strash a manager's cone into a fresh Manager.
//   - MUX/XOR recognition and counter-example resimulation round out the
//     structural toolbox used by the sequential, simulation, and
//     model-checking engines built on top.
//
// Why:
//   - Strashing is what makes every other pass in this toolkit cheap:
//     equivalence of two substructures reduces to literal equality, not a
//     structural comparison.
//
// Complexity:
//   - And: O(1) amortized (hash lookup/insert).
//   - Or/Xor/Mux: O(1) amortized, each built from one or two And calls.
//   - Duplicate* variants: O(V+E) in the size of the source cone.
//
// Errors:
//   - ErrNilManager, ErrVarOutOfRange, ErrPreconditionFailed are sentinel
//     errors returned by the fallible operations in this package; see each
//     function's doc comment for which apply. ErrLatchCapacity is declared
//     here but returned by no function of this package.
package aig
