package aig

// Kind tags the variant of an AIG object, replacing the "second fanin
// doubles as CIO-id for terminals" trick from the source implementation
// (spec §9) with an explicit tag.
type Kind uint8

const (
	// KindConst0 is the single constant-false node, always variable 0.
	KindConst0 Kind = iota
	// KindPI is a primary input (or, for the tail NumLatches entries of
	// Manager.PIs, a latch output — see seqaig for the register view).
	KindPI
	// KindAnd is a two-input AND gate.
	KindAnd
)

// Node is one object in the arena-backed AIG. Fanin0/Fanin1 are only
// meaningful for KindAnd; they are literals referencing variables whose
// ids are strictly less than this node's own variable id (the
// "topological ids" invariant).
type Node struct {
	Kind   Kind
	Fanin0 Lit
	Fanin1 Lit // unused (0) for KindPI/KindConst0

	fanoutCount int
	level       int
}

// po is a primary output: a named literal with no variable of its own.
// POs are tracked separately from Node because they do not participate in
// strashing and never appear as another node's fanin.
type po struct {
	fanin Lit
}

// faninKey is the structural-hash key for an AND node: the fanin pair in
// canonical (min, max) order.
type faninKey struct {
	a, b Lit
}
