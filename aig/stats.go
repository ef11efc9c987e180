package aig

import "github.com/katalvlaran/logicsynth/arena"

// AIGStats is a point-in-time snapshot of a Manager's size, replacing
// ABC's ad hoc per-call printf reports with a single structured value a
// caller can log, diff between passes, or assert on in a test.
type AIGStats struct {
	NumPIs     int
	NumPOs     int
	NumLatches int
	NumAnds    int
	MaxLevel   int
}

// Stats returns a snapshot of m's current size.
func (m *Manager) Stats() AIGStats {
	maxLevel := 0
	numAnds := 0
	m.objs.Iterate(func(_ arena.ID, n Node) bool {
		if n.Kind == KindAnd {
			numAnds++
		}
		if n.level > maxLevel {
			maxLevel = n.level
		}
		return true
	})

	return AIGStats{
		NumPIs:     len(m.piVars),
		NumPOs:     len(m.pos),
		NumLatches: m.NumLatches,
		NumAnds:    numAnds,
		MaxLevel:   maxLevel,
	}
}
