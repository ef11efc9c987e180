// Package extract implements fast-extract algebraic factoring over
// sum-of-products covers: single- and double-cube divisor scoring, a
// max-heap substitution loop that extracts the highest-weight shared
// subexpression as a new node, and incremental rescoring of the divisors
// it touches.
package extract
