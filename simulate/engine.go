package simulate

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/logicsynth/aig"
)

// ErrInvalidWordCount indicates a non-positive W was supplied to NewEngine.
var ErrInvalidWordCount = errors.New("simulate: word count W must be positive")

// Engine owns one manager's simulation info: a packed W-word value per
// node, refreshed in place by Randomize/Simulate. Complexity of one full
// pass is O(NumVars() * W).
type Engine struct {
	M   *aig.Manager
	W   int
	rng *rand.Rand

	words [][]uint32 // per variable id, len W
}

// NewEngine allocates simulation storage for every variable currently in
// m. seed controls the deterministic random-pattern stream.
func NewEngine(m *aig.Manager, w int, seed int64) (*Engine, error) {
	if w <= 0 {
		return nil, ErrInvalidWordCount
	}
	e := &Engine{
		M:   m,
		W:   w,
		rng: rand.New(rand.NewSource(seed)),
	}
	e.grow()

	return e, nil
}

func (e *Engine) grow() {
	for len(e.words) < e.M.NumVars() {
		e.words = append(e.words, make([]uint32, e.W))
	}
}

// Words returns the live simulation vector for variable v (not a copy).
func (e *Engine) Words(v int) []uint32 {
	e.grow()
	return e.words[v]
}

// SetWords overwrites variable v's simulation vector.
func (e *Engine) SetWords(v int, data []uint32) {
	e.grow()
	copy(e.words[v], data)
}

// Randomize fills every PI's simulation vector with uniform random words
// and then propagates through the AIG via Propagate.
func (e *Engine) Randomize() {
	e.grow()
	for _, pi := range e.M.PIs() {
		v := pi.Var()
		for i := 0; i < e.W; i++ {
			e.words[v][i] = e.rng.Uint32()
		}
	}
	e.Propagate()
}

// Propagate recomputes every AND node's simulation vector from its
// fanins (in topological order) and does not touch PI vectors, so callers
// may seed PIs directly (e.g. the functional-support witness search) and
// call Propagate to recompute the TFO.
func (e *Engine) Propagate() {
	e.grow()
	for _, v := range e.M.TopoAnds() {
		n, _ := e.M.Node(v)
		a := e.litWords(n.Fanin0)
		b := e.litWords(n.Fanin1)
		out := e.words[v]
		for i := 0; i < e.W; i++ {
			out[i] = a[i] & b[i]
		}
	}
}

// litWords returns a transient sign-adjusted copy of l's simulation
// vector (inverted bitwise if l carries the sign bit).
func (e *Engine) litWords(l aig.Lit) []uint32 {
	src := e.words[l.Var()]
	if !l.Sign() {
		return src
	}
	out := make([]uint32, e.W)
	for i, w := range src {
		out[i] = ^w
	}
	return out
}

// POWords returns PO idx's current simulation vector (sign-adjusted,
// freshly allocated).
func (e *Engine) POWords(idx int) []uint32 {
	pos := e.M.POs()
	return e.litWords(pos[idx])
}

// CountOnes returns the number of set bits across variable v's simulation
// vector, i.e. how many of the 32*W simulated patterns evaluate v to 1.
func (e *Engine) CountOnes(v int) int {
	e.grow()
	n := 0
	for _, w := range e.words[v] {
		n += popcount(w)
	}
	return n
}

// Signature returns a compact summary of v's simulation vector (its
// folded XOR across words), cheap enough to use as a first-pass
// equivalence-class key before exact comparison.
func (e *Engine) Signature(v int) uint32 {
	e.grow()
	var sig uint32
	for _, w := range e.words[v] {
		sig ^= w
	}
	return sig
}

func popcount(w uint32) int {
	n := 0
	for w != 0 {
		w &= w - 1
		n++
	}
	return n
}
