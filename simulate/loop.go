package simulate

// maxRefinementRounds bounds the target-driven loop (spec'd as "a fixed
// iteration cap").
const maxRefinementRounds = 64

// piSnapshot is one full PI assignment: index i holds PI i's W-word
// simulation vector.
type piSnapshot [][]uint32

// RunTargetDriven performs one random simulation round, then repeatedly
// refines the functional-support target set, harvesting any witness
// pattern into a FIFO of useful patterns and replaying from that FIFO
// before falling back to a fresh random round, stopping when the target
// set is empty or the round cap is hit. Returns the final
// functional-support bitmaps (one per PO) and the round count used.
func RunTargetDriven(e *Engine, sup *Support) ([]bitset, int) {
	funSupp := NewFunctionalSupport(e.M, sup.nCi)
	var fifo []piSnapshot

	e.Randomize()
	rounds := 0
	for ; rounds < maxRefinementRounds; rounds++ {
		pending := PendingTargets(e.M, sup, funSupp)
		if len(pending) == 0 {
			break
		}
		witnesses := RefineFunctional(e, sup, funSupp, pending)
		if len(witnesses) > 0 {
			fifo = append(fifo, snapshotPIs(e))
			continue
		}
		if len(fifo) > 0 {
			snap := fifo[0]
			fifo = fifo[1:]
			e.restorePIs(snap)
		} else {
			e.Randomize()
		}
	}

	return funSupp, rounds
}

// restorePIs overwrites every PI's simulation vector from snap and
// re-propagates.
func (e *Engine) restorePIs(snap piSnapshot) {
	e.grow()
	for i, pi := range e.M.PIs() {
		if i < len(snap) {
			copy(e.words[pi.Var()], snap[i])
		}
	}
	e.Propagate()
}

// snapshotPIs captures the current PI simulation vectors as one
// independent FIFO entry.
func snapshotPIs(e *Engine) piSnapshot {
	out := make(piSnapshot, len(e.M.PIs()))
	for i, pi := range e.M.PIs() {
		cp := make([]uint32, e.W)
		copy(cp, e.words[pi.Var()])
		out[i] = cp
	}
	return out
}
