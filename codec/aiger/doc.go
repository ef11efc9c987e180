// Package aiger implements the binary-AND-encoded AIGER reader and an
// AIGER-witness counterexample writer described in §6: ASCII header
// `aig M I L O A`, L+O ASCII driver-literal lines, then A AND gates in
// the variable-length delta encoding.
//
// Simplification: the reader accepts only the "next-state literal per
// latch, no reset field" classic ASCII latch line this module's header
// line implies (a bare integer, not "var next reset"); every decoded
// latch defaults to a zero initial value. Symbol-table and comment
// trailer lines (after the AND-gate section) are not required by the
// module and are ignored if present.
package aiger
