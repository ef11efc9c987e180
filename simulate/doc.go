// Package simulate implements packed bitwise simulation over an AIG: W
// 32-bit words per node (32*W patterns per call), structural and
// functional support computation, a target-driven refinement loop, and
// two-variable symmetry detection seeded structurally and resolved by an
// optional SAT callback supplied by the caller (this package does not
// import the sat package directly, keeping it a leaf dependency, the way
// the teacher keeps its matrix package free of graph-level imports).
package simulate
