package aig

import (
	"errors"

	"github.com/katalvlaran/logicsynth/arena"
)

// Sentinel errors for the aig package. Grounded on the teacher's
// (core package) convention of package-level sentinel errors checked via
// errors.Is.
var (
	// ErrNilManager indicates a nil *Manager receiver reached a method that
	// requires a live manager.
	ErrNilManager = errors.New("aig: nil manager")
	// ErrVarOutOfRange indicates a variable index outside [0, NumVars()).
	ErrVarOutOfRange = errors.New("aig: variable index out of range")
	// ErrLatchCapacity names the 16-latch per-edge cap described in spec §3.
	// No function in this package returns it; the seqaig package enforces
	// the cap with its own ErrLatchCapacity.
	ErrLatchCapacity = errors.New("aig: latch count exceeds per-edge cap of 16")
	// ErrPreconditionFailed indicates a duplication variant's hardened
	// precondition (Timing == nil, History == nil, no buffer nodes) was
	// violated; see spec §9.
	ErrPreconditionFailed = errors.New("aig: duplication precondition failed")
)

// Manager owns a structurally hashed AIG: an ordered PI list, an ordered
// PO list, internal AND nodes in topological (id) order, and the
// structural-hash table that enforces strashing.
//
// Sequential bookkeeping: the trailing NumLatches entries of PIs are
// latch outputs and the trailing NumLatches entries of POs are latch
// inputs (next-state functions), per the §9 decision to match AIGER's
// "real POs first, then latch-input POs" ordering. The seqaig package
// layers per-edge latch counts and initial values on top of this.
//
// Timing and History are weak references installed for the duration of a
// single pass (retiming, fraiging) and must be nil for every duplication
// variant; see Duplicate* preconditions.
type Manager struct {
	objs   *arena.Arena[Node] // index 0 is always KindConst0
	piVars []int              // variable ids of PIs, in creation order
	pos    []po

	hash map[faninKey]Lit

	NumLatches int

	// Timing is a weak reference to a per-id arrival/required side table
	// installed only while a timing-aware pass is running (§4.H).
	Timing map[int][2]float64
	// History is a weak reference to a companion "history AIG" used by
	// fraiging passes; nil outside of one.
	History *Manager
}

// NewManager creates an empty Manager containing only the constant-0 node.
// Node storage is an arena.Arena[Node]: ids are dense, stable, and never
// renumbered, and the arena's own generation counter backs
// IncrementTraversal instead of each engine package re-deriving one.
func NewManager() *Manager {
	m := &Manager{
		objs: arena.New[Node](),
		hash: make(map[faninKey]Lit, 64),
	}
	m.objs.NewObject(Node{Kind: KindConst0})

	return m
}

// NumVars returns the number of variables, including the constant.
func (m *Manager) NumVars() int { return m.objs.Len() }

// NumPIs returns the number of primary inputs (including latch outputs).
func (m *Manager) NumPIs() int { return len(m.piVars) }

// CreatePI appends a new primary input and returns its literal.
func (m *Manager) CreatePI() Lit {
	id := int(m.objs.NewObject(Node{Kind: KindPI}))
	m.piVars = append(m.piVars, id)

	return NewLit(id, false)
}

// CreatePO appends a new primary output driven by fanin and returns its
// index in POs().
func (m *Manager) CreatePO(fanin Lit) int {
	idx := len(m.pos)
	m.pos = append(m.pos, po{fanin: fanin})
	m.fanoutBump(fanin)

	return idx
}

// PIs returns the literals of every primary input in creation order.
func (m *Manager) PIs() []Lit {
	out := make([]Lit, len(m.piVars))
	for i, v := range m.piVars {
		out[i] = NewLit(v, false)
	}
	return out
}

// POs returns the fanin literal of every primary output in creation order.
func (m *Manager) POs() []Lit {
	out := make([]Lit, len(m.pos))
	for i, p := range m.pos {
		out[i] = p.fanin
	}
	return out
}

// SetPOFanin rewires PO idx to a new driving literal (used by duplication
// and retiming passes when POs must be re-pointed in place).
func (m *Manager) SetPOFanin(idx int, fanin Lit) error {
	if idx < 0 || idx >= len(m.pos) {
		return ErrVarOutOfRange
	}
	m.pos[idx].fanin = fanin
	m.fanoutBump(fanin)

	return nil
}

func (m *Manager) fanoutBump(l Lit) {
	v := l.Var()
	n, err := m.objs.Get(arena.ID(v))
	if err != nil {
		return
	}
	n.fanoutCount++
	m.objs.Set(arena.ID(v), n)
}

// Node returns the node record for variable v.
func (m *Manager) Node(v int) (Node, error) {
	n, err := m.objs.Get(arena.ID(v))
	if err != nil {
		return Node{}, ErrVarOutOfRange
	}
	return n, nil
}

// Level returns node v's level (longest path from a PI/const, in AND
// gates), computed once when the node is created and stored in its record.
func (m *Manager) Level(v int) int {
	n, err := m.objs.Get(arena.ID(v))
	if err != nil {
		return 0
	}
	return n.level
}

// and is the single path by which AND nodes are created. It normalizes,
// applies the short-circuit rules, and looks up/installs the structural
// hash entry.
func (m *Manager) and(a, b Lit) Lit {
	// Canonical order.
	if a > b {
		a, b = b, a
	}
	switch {
	case a == ConstFalse: // 0 & x == 0
		return ConstFalse
	case a == ConstTrue: // 1 & x == x
		return b
	case a == b: // x & x == x
		return a
	case a == b.Not(): // x & !x == 0
		return ConstFalse
	}

	key := faninKey{a, b}
	if lit, ok := m.hash[key]; ok {
		return lit
	}

	lvl := m.Level(a.Var())
	if bl := m.Level(b.Var()); bl > lvl {
		lvl = bl
	}
	id := int(m.objs.NewObject(Node{Kind: KindAnd, Fanin0: a, Fanin1: b, level: lvl + 1}))
	m.fanoutBump(a)
	m.fanoutBump(b)
	lit := NewLit(id, false)
	m.hash[key] = lit

	return lit
}

// And returns the (strashed) literal for a AND b.
func (m *Manager) And(a, b Lit) Lit { return m.and(a, b) }

// Or returns the (strashed) literal for a OR b, built from two And calls
// via De Morgan's law: or(a,b) = !and(!a,!b).
func (m *Manager) Or(a, b Lit) Lit { return m.and(a.Not(), b.Not()).Not() }

// Xor returns the (strashed) literal for a XOR b.
func (m *Manager) Xor(a, b Lit) Lit {
	return m.Or(m.and(a, b.Not()), m.and(a.Not(), b))
}

// Mux returns the (strashed) literal for if c then t else e.
func (m *Manager) Mux(c, t, e Lit) Lit {
	return m.Or(m.and(c, t), m.and(c.Not(), e))
}

// Oper is a small dispatch table used by the miter duplication variant
// (spec §4.B "combine ... using one of {XOR, AND, OR, ANTI-IMPLY}").
type Oper int

const (
	OperXor Oper = iota
	OperAnd
	OperOr
	OperAntiImply
)

// ApplyOper applies op to (a, b).
func (m *Manager) ApplyOper(op Oper, a, b Lit) Lit {
	switch op {
	case OperAnd:
		return m.and(a, b)
	case OperOr:
		return m.Or(a, b)
	case OperAntiImply:
		return m.and(a, b.Not())
	default:
		return m.Xor(a, b)
	}
}

// TopoAnds returns the internal AND-node variable ids in topological (id)
// order, i.e. vars[1:] restricted to KindAnd (PIs interleave at lower ids
// but are excluded here since they have no fanins to visit).
func (m *Manager) TopoAnds() []int {
	out := make([]int, 0, m.objs.Len())
	m.objs.Iterate(func(id arena.ID, n Node) bool {
		if id > 0 && n.Kind == KindAnd {
			out = append(out, int(id))
		}
		return true
	})
	return out
}

// IncrementTraversal starts a fresh mark/sweep generation over this
// manager's node arena, per §4.A; pair with Mark/IsMarked for O(1)
// per-visit stamping with no per-pass allocation.
func (m *Manager) IncrementTraversal() int {
	return int(m.objs.IncrementTraversal())
}

// Mark stamps variable v with the current traversal generation.
func (m *Manager) Mark(v int) error {
	return m.objs.Mark(arena.ID(v))
}

// IsMarked reports whether v was stamped during the current generation.
func (m *Manager) IsMarked(v int) bool {
	return m.objs.IsMarked(arena.ID(v))
}
