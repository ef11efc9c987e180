// Package blif implements a deterministic BLIF writer covering the
// .model/.inputs/.outputs/.names/.latch/.end subset described in §6.
// It exists only so cmd/logicsynth has a second, human-readable output
// format alongside AIGER witnesses; it contains no synthesis logic of
// its own and performs no optimization — every AND node is emitted as
// its own two-input .names table verbatim.
//
// Net naming: variable v is written as "x<v>", the constant-0 node as
// "x0"; net names are always unsigned. Polarity is encoded in the SOP
// cover rows (a '0' input bit for an inverted fanin), and a negated PO or
// latch next-state literal gets its own one-input inverter .names table,
// following the classic BLIF convention of unsigned net names with phase
// folded into the cover.
package blif
