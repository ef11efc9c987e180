package sat

// analyze performs first-UIP conflict analysis starting from the clause
// at confl, returning the learned clause (index 0 is the asserting
// literal), the backtrack level, and the glue (distinct decision levels
// among the learned literals).
func (s *Solver) analyze(confl int) (learnt []Lit, btLevel int, glue int) {
	seen := make([]bool, s.nVars+1)
	counter := 0
	var p Lit
	pReason := confl
	learnt = append(learnt, 0) // placeholder for the UIP literal

	index := len(s.trail) - 1
	for {
		c := s.clauses[pReason]
		for _, q := range c.lits {
			if q == p {
				continue
			}
			v := q.Var()
			if seen[v] {
				continue
			}
			if s.level[v] == 0 {
				continue
			}
			seen[v] = true
			s.bumpVar(v)
			if s.level[v] >= s.decisionLevel() {
				counter++
			} else {
				learnt = append(learnt, q)
			}
		}

		for !seen[s.trail[index].Var()] {
			index--
		}
		p = s.trail[index]
		pv := p.Var()
		pReason = s.reason[pv]
		seen[pv] = false
		counter--
		index--
		if counter == 0 {
			break
		}
	}
	learnt[0] = p.Not()

	learnt = s.minimize(learnt, seen)

	btLevel, glue = s.backtrackLevelAndGlue(learnt)

	return learnt, btLevel, glue
}

// minimize removes literals (beyond the UIP) whose falsifying reason
// clause's other literals are all already marked seen — a one-level
// self-subsumption check, simpler than full recursive minimization but
// still removing the common redundant case.
func (s *Solver) minimize(learnt []Lit, seen []bool) []Lit {
	if len(learnt) <= 1 {
		return learnt
	}
	out := learnt[:1]
	for _, l := range learnt[1:] {
		v := l.Var()
		ri := s.reason[v]
		redundant := false
		if ri >= 0 {
			redundant = true
			for _, q := range s.clauses[ri].lits {
				qv := q.Var()
				if qv == v {
					continue
				}
				if !seen[qv] {
					redundant = false
					break
				}
			}
		}
		if !redundant {
			out = append(out, l)
		}
	}
	return out
}

func (s *Solver) backtrackLevelAndGlue(learnt []Lit) (int, int) {
	if len(learnt) == 1 {
		return 0, 1
	}
	levels := make(map[int]bool, len(learnt))
	maxIdx, maxLevel := 1, -1
	for i := 1; i < len(learnt); i++ {
		lvl := s.level[learnt[i].Var()]
		levels[lvl] = true
		if lvl > maxLevel {
			maxLevel, maxIdx = lvl, i
		}
	}
	learnt[1], learnt[maxIdx] = learnt[maxIdx], learnt[1]
	return maxLevel, len(levels) + 1 // +1 for the UIP's own (current) level
}

func (s *Solver) bumpVar(v int) {
	s.heap.bump(v, s.varInc)
	if s.heap.activity[v] > 1e100 {
		for i := range s.heap.activity {
			s.heap.activity[i] *= 1e-100
		}
		s.varInc *= 1e-100
	}
}

func (s *Solver) bumpVarInc() {
	s.varInc *= 1.05
}
