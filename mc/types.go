package mc

import "time"

// Status is the driver's final verdict.
type Status int

const (
	Undecided Status = iota
	SAT
	UNSAT
)

func (s Status) String() string {
	switch s {
	case SAT:
		return "SAT"
	case UNSAT:
		return "UNSAT"
	default:
		return "UNDECIDED"
	}
}

// Counterexample is a bug trace: the frame at which a primary output
// first asserts, and the primary-input values at every frame up to and
// including it (PIs[f][i] is real PI i's value at frame f; latch
// outputs are not included since they are derived, not chosen).
type Counterexample struct {
	Frame int
	PIs   [][]bool
	PO    int
}

// TraceFunc observes which pipeline stage decided the result, the way
// dfs.WithOnVisit observes traversal in the teacher's dfs package.
type TraceFunc func(stage string, status string)

// Options configures one Check call.
type Options struct {
	// FramesMax bounds the bounded-model-checking unrolling (pipeline
	// stage 2).
	FramesMax int
	// DeepFramesMax bounds the deeper substitute BMC pass standing in for
	// interpolation/BDD reachability (stage 4); only attempted when the
	// register count is at most RegisterLimit.
	DeepFramesMax   int
	RegisterLimit   int
	SeqSimplifyIters int
	ConflictBudget  int
	Deadline        time.Time
	Trace           TraceFunc
	// MinimizeRetimeArea, when true, runs retime.MinimizeArea's greedy lag
	// redistribution on each sequential-simplification round's lag vector
	// before it is realized. Off by
	// default, since stage 3 only needs the minimum-period retiming.
	MinimizeRetimeArea bool
}

// DefaultOptions returns reasonable defaults for small-to-medium
// instances.
func DefaultOptions() Options {
	return Options{
		FramesMax:        10,
		DeepFramesMax:    30,
		RegisterLimit:    150,
		SeqSimplifyIters: 4,
		ConflictBudget:   0,
		Deadline:         time.Time{},
	}
}

// Result is the driver's outcome.
type Result struct {
	Status Status
	Cex    *Counterexample
	Stage  string
}

func (o *Options) trace(stage, status string) {
	if o.Trace != nil {
		o.Trace(stage, status)
	}
}

func (o *Options) expired() bool {
	return !o.Deadline.IsZero() && !time.Now().Before(o.Deadline)
}
