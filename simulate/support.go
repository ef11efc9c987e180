package simulate

import "github.com/katalvlaran/logicsynth/aig"

// bitset is a fixed-width bitmap over PI index (not variable id).
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int)        { b[i/64] |= 1 << uint(i%64) }
func (b bitset) get(i int) bool   { return b[i/64]&(1<<uint(i%64)) != 0 }
func (b bitset) or(o bitset) bitset {
	out := make(bitset, len(b))
	for i := range b {
		out[i] = b[i] | o[i]
	}
	return out
}

// Support holds, per PI index, a structural and a functional support
// bitmap for every PO.
type Support struct {
	piIndex map[int]int // variable id -> PI index
	nCi     int
	poVars  []int // PO index -> fanin variable id

	structural []bitset // per node variable id
	functional []bitset // per PO index
}

// StructuralSupport computes strSupp for every node of m in one
// topological pass: strSupp(pi) = {its own bit}, strSupp(and) =
// strSupp(fanin0) | strSupp(fanin1), strSupp(po) = strSupp(fanin).
func StructuralSupport(m *aig.Manager) *Support {
	s := &Support{piIndex: make(map[int]int), nCi: m.NumPIs()}
	for i, pi := range m.PIs() {
		s.piIndex[pi.Var()] = i
	}

	s.structural = make([]bitset, m.NumVars())
	for v := 0; v < m.NumVars(); v++ {
		s.structural[v] = newBitset(s.nCi)
	}
	for i, pi := range m.PIs() {
		s.structural[pi.Var()].set(i)
	}
	for _, v := range m.TopoAnds() {
		n, _ := m.Node(v)
		s.structural[v] = s.structural[n.Fanin0.Var()].or(s.structural[n.Fanin1.Var()])
	}

	s.functional = make([]bitset, len(m.POs()))
	s.poVars = make([]int, len(m.POs()))
	for i, p := range m.POs() {
		s.functional[i] = s.structural[p.Var()]
		s.poVars[i] = p.Var()
	}

	return s
}

// StructuralOf returns the structural support bitmap of node v.
func (s *Support) StructuralOf(v int) bitset { return s.structural[v] }

// POStructural returns PO idx's structural support.
func (s *Support) POStructural(idx int) bitset {
	return s.structural[s.poVars[idx]]
}

// Target is one outstanding (PI index, PO index) pair whose membership in
// funSupp(po) is not yet established.
type Target struct {
	PI, PO int
}

// PendingTargets returns every (pi, po) pair with pi structurally but not
// yet functionally supporting po.
func PendingTargets(m *aig.Manager, sup *Support, funSupp []bitset) []Target {
	var out []Target
	for poIdx, p := range m.POs() {
		str := sup.structural[p.Var()]
		fun := funSupp[poIdx]
		for pi := 0; pi < sup.nCi; pi++ {
			if str.get(pi) && !fun.get(pi) {
				out = append(out, Target{PI: pi, PO: poIdx})
			}
		}
	}
	return out
}

// RefineFunctional runs one witness-search round: for each pending
// target, complement the PI's simulation column, re-propagate, and check
// whether the target PO's bits differ anywhere; if so, pi is moved into
// funSupp(po) and the witness pattern index is returned for harvesting
// into the caller's useful-pattern FIFO.
func RefineFunctional(e *Engine, sup *Support, funSupp []bitset, pending []Target) (witnesses []int) {
	pos := e.M.POs()
	for _, tgt := range pending {
		piVar := e.M.PIs()[tgt.PI].Var()
		original := make([]uint32, e.W)
		copy(original, e.words[piVar])

		baseline := make([]uint32, e.W)
		copy(baseline, e.litWords(pos[tgt.PO]))

		for i := range e.words[piVar] {
			e.words[piVar][i] = ^e.words[piVar][i]
		}
		e.Propagate()
		toggled := e.litWords(pos[tgt.PO])

		bit := -1
		for w := 0; w < e.W && bit == -1; w++ {
			diff := baseline[w] ^ toggled[w]
			if diff != 0 {
				bit = w*32 + trailingZero(diff)
			}
		}

		copy(e.words[piVar], original)
		e.Propagate()

		if bit >= 0 {
			funSupp[tgt.PO].set(tgt.PI)
			witnesses = append(witnesses, bit)
		}
	}

	return witnesses
}

func trailingZero(w uint32) int {
	n := 0
	for w&1 == 0 {
		w >>= 1
		n++
	}
	return n
}

// NewFunctionalSupport allocates one empty functional-support bitmap per
// PO, ready to be grown by RefineFunctional.
func NewFunctionalSupport(m *aig.Manager, nCi int) []bitset {
	out := make([]bitset, len(m.POs()))
	for i := range out {
		out[i] = newBitset(nCi)
	}
	return out
}
