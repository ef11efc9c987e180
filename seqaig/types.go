package seqaig

import (
	"errors"

	"github.com/katalvlaran/logicsynth/aig"
)

// Sentinel errors, in the teacher's convention.
var (
	ErrNotAnd          = errors.New("seqaig: retiming step requires an AND node")
	ErrLatchCapacity    = errors.New("seqaig: latch count would exceed the 16-latch cap")
	ErrNothingToRetime  = errors.New("seqaig: no common latch to move across this node")
	ErrEdgeNotFound     = errors.New("seqaig: edge not found")
	ErrEmptyEdge        = errors.New("seqaig: edge has no latches to delete")
)

// maxLatchesPerEdge is the §3 cap: 0 <= k <= 16.
const maxLatchesPerEdge = 16

// LatchValue is one of the four §3 per-latch initial-value states.
type LatchValue int

const (
	LVZero LatchValue = iota
	LVOne
	LVDC
	LVUnknown
)

func (v LatchValue) invert() LatchValue {
	switch v {
	case LVZero:
		return LVOne
	case LVOne:
		return LVZero
	default:
		return v
	}
}

func applySign(v LatchValue, sign bool) LatchValue {
	if sign {
		return v.invert()
	}
	return v
}

// EdgeRef identifies one fanin edge: either the fanin of PO index Index,
// or fanin slot Slot (0 or 1) of AND-node variable Index.
type EdgeRef struct {
	IsPO  bool
	Index int
	Slot  int
}

// Latches is the per-edge latch count and its per-latch initial values,
// ordered head (index 0, nearest the edge's consumer) to tail (last
// index, nearest the edge's source).
type Latches struct {
	Init []LatchValue
}

// K returns the latch count on this edge.
func (l *Latches) K() int {
	if l == nil {
		return 0
	}
	return len(l.Init)
}

// InsertFirst inserts v at the head of the edge.
func (l *Latches) InsertFirst(v LatchValue) error {
	if l.K() >= maxLatchesPerEdge {
		return ErrLatchCapacity
	}
	l.Init = append([]LatchValue{v}, l.Init...)

	return nil
}

// DeleteFirst removes and returns the head latch value.
func (l *Latches) DeleteFirst() (LatchValue, error) {
	if l.K() == 0 {
		return 0, ErrEmptyEdge
	}
	v := l.Init[0]
	l.Init = l.Init[1:]

	return v, nil
}

// InsertLast appends v at the tail of the edge.
func (l *Latches) InsertLast(v LatchValue) error {
	if l.K() >= maxLatchesPerEdge {
		return ErrLatchCapacity
	}
	l.Init = append(l.Init, v)

	return nil
}

// DeleteLast removes and returns the tail latch value.
func (l *Latches) DeleteLast() (LatchValue, error) {
	if l.K() == 0 {
		return 0, ErrEmptyEdge
	}
	v := l.Init[len(l.Init)-1]
	l.Init = l.Init[:len(l.Init)-1]

	return v, nil
}

// Graph pairs an *aig.Manager with the sparse latch-edge annotation map.
type Graph struct {
	M *aig.Manager

	edges   map[EdgeRef]*Latches
	fanouts map[int][]EdgeRef // source var id -> consuming edges
}
