package retime

import (
	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/sat"
	"github.com/katalvlaran/logicsynth/seqaig"
)

// initProblem accumulates the §4.D init-reconstruction network as
// backward retiming moves are realized. Each move over AND-node n installs
// a fresh companion PI for each of n's two fanin edges — the symbolic
// NONE handle of §4.D standing in for the freshly-inserted Unknown head
// latch on that edge — and adds a companion AND node mirroring n's own
// structure over those two PIs; the known (non-DC, non-Unknown) values
// just displaced off n's fanout edges by this same move become unit
// constraints that AND node must satisfy. Solving the accumulated network
// therefore pins, for each such move independently, the one pair of new
// register values that reproduces what n's output used to be.

// symbolicEntry pairs a companion-network PI variable with the graph
// edge it resolves. Entries are kept in recording order: when several
// backward steps land on the same node's same fanin slot within one
// Realize call, each installs its own fresh companion for that edge, and
// only the latest one still describes the edge's current head — solve
// replays entries in this order so the latest always wins the writeback.
type symbolicEntry struct {
	v int
	e seqaig.EdgeRef
}

type initProblem struct {
	net      *aig.Manager
	symbolic []symbolicEntry
	forced   []aig.Lit // literals the solved net must make true
	conflict bool      // a construction-time problem, per §7
}

func newInitProblem() *initProblem {
	return &initProblem{net: aig.NewManager()}
}

// freshCompanion installs a new companion PI for edge e, recording the
// var->edge mapping solve uses to write a model back.
func (p *initProblem) freshCompanion(e seqaig.EdgeRef) aig.Lit {
	pi := p.net.CreatePI()
	p.symbolic = append(p.symbolic, symbolicEntry{v: pi.Var(), e: e})
	return pi
}

// record extends the problem for one backward step already applied to
// node n: fanins holds n's two fanin edges (the ones that just received
// the new Unknown head latch this step installed), and tails the latch
// values just deleted from each of n's fanout edges (FanoutsOf(n) order).
func (p *initProblem) record(g *seqaig.Graph, n int, fanins [2]seqaig.EdgeRef, tails []seqaig.LatchValue) {
	node, err := g.M.Node(n)
	if err != nil {
		p.conflict = true
		return
	}

	a := p.freshCompanion(fanins[0])
	b := p.freshCompanion(fanins[1])
	if node.Fanin0.Sign() {
		a = a.Not()
	}
	if node.Fanin1.Sign() {
		b = b.Not()
	}
	body := p.net.And(a, b)

	for _, t := range tails {
		switch t {
		case seqaig.LVZero:
			p.forced = append(p.forced, body.Not())
		case seqaig.LVOne:
			p.forced = append(p.forced, body)
		default:
			// DC, or a still-Unknown tail from an earlier unresolved
			// move, asserts no known polarity.
		}
	}
}

// solve Tseitin-encodes net into a fresh sat.Solver, asserts every forced
// literal true, and solves under budget. ok is false on a construction
// conflict, a genuine UNSAT, or budget exhaustion — the three cases §7
// reserves for the all-DC fallback.
func (p *initProblem) solve(budget sat.Budget) (values map[seqaig.EdgeRef]seqaig.LatchValue, ok bool) {
	if p == nil || p.conflict {
		return nil, false
	}
	if len(p.symbolic) == 0 {
		return map[seqaig.EdgeRef]seqaig.LatchValue{}, true
	}

	s := sat.NewSolver(p.net.NumVars())
	enc := initEncoder{m: p.net, s: s}
	if err := enc.encode(); err != nil {
		return nil, false
	}
	for _, lit := range p.forced {
		if err := s.AddClause([]sat.Lit{enc.lit(lit)}); err != nil {
			return nil, false
		}
	}

	res := s.Solve(budget)
	if res.Status != sat.Satisfiable {
		return nil, false
	}

	values = make(map[seqaig.EdgeRef]seqaig.LatchValue, len(p.symbolic))
	for _, entry := range p.symbolic {
		if res.Model[enc.satVar(entry.v)] {
			values[entry.e] = seqaig.LVOne
		} else {
			values[entry.e] = seqaig.LVZero
		}
	}
	return values, true
}

// initEncoder Tseitin-encodes a purely combinational companion network
// (no latches of its own) into a shared sat.Solver, the same z<->a&b
// construction mc.frameEncoder uses for one BMC frame.
type initEncoder struct {
	m *aig.Manager
	s *sat.Solver
}

func (e *initEncoder) satVar(v int) int { return v + 1 }

func (e *initEncoder) lit(l aig.Lit) sat.Lit {
	return sat.NewLit(e.satVar(l.Var()), l.Sign())
}

func (e *initEncoder) encode() error {
	if err := e.s.AddClause([]sat.Lit{sat.NewLit(e.satVar(0), true)}); err != nil {
		return err
	}
	for _, v := range e.m.TopoAnds() {
		n, err := e.m.Node(v)
		if err != nil {
			return err
		}
		z := sat.NewLit(e.satVar(v), false)
		a := e.lit(n.Fanin0)
		b := e.lit(n.Fanin1)
		if err := e.s.AddClause([]sat.Lit{z.Not(), a}); err != nil {
			return err
		}
		if err := e.s.AddClause([]sat.Lit{z.Not(), b}); err != nil {
			return err
		}
		if err := e.s.AddClause([]sat.Lit{z, a.Not(), b.Not()}); err != nil {
			return err
		}
	}
	return nil
}
