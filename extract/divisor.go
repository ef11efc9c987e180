package extract

import "fmt"

// Kind distinguishes the two divisor shapes fast-extract considers.
type Kind int

const (
	SingleCube Kind = iota
	DoubleCube
)

// String renders k as "single-cube" or "double-cube", for debugging.
func (k Kind) String() string {
	if k == DoubleCube {
		return "double-cube"
	}
	return "single-cube"
}

// Occurrence locates one cube, inside one node's cover, where a divisor
// was found.
type Occurrence struct {
	NodeID  int
	CubeIdx int
}

// Divisor is a candidate shared subexpression: its literal set (Lits,
// size >= 2 to be worth extracting) and every place it was found.
type Divisor struct {
	Kind        Kind
	Lits        Cube
	Occurrences []Occurrence

	// heap bookkeeping
	index int
}

// Weight is the estimated savings from extracting d as a new node: one
// new node of len(Lits) literals replaces len(Occurrences) cubes of
// len(Lits) literals each with a single one-literal reference, saving
// (len(Lits)-1) literals per occurrence minus the new node's own cost.
func (d *Divisor) Weight() int {
	if len(d.Lits) < 2 || len(d.Occurrences) < 2 {
		return 0
	}
	return len(d.Occurrences)*(len(d.Lits)-1) - len(d.Lits)
}

// String renders d as e.g. "double-cube x1.!x2 (3 occurrences, weight 4)",
// mirroring the teacher's transparent Edge/Vertex value objects.
func (d *Divisor) String() string {
	return fmt.Sprintf("%s %s (%d occurrences, weight %d)",
		d.Kind, d.Lits, len(d.Occurrences), d.Weight())
}

// IndexSingleCubeDivisors scores every cube that recurs, unchanged,
// across two or more (node, cube) positions in nodes — a "single-cube
// divisor" candidate per the fast-extract pipeline's step 1.
func IndexSingleCubeDivisors(nodes []*Node) []*Divisor {
	byKey := make(map[string]*Divisor)
	for _, n := range nodes {
		for ci, c := range n.Cover {
			if len(c) < 2 {
				continue
			}
			key := c.Key()
			d, ok := byKey[key]
			if !ok {
				d = &Divisor{Kind: SingleCube, Lits: c}
				byKey[key] = d
			}
			d.Occurrences = append(d.Occurrences, Occurrence{NodeID: n.ID, CubeIdx: ci})
		}
	}

	out := make([]*Divisor, 0, len(byKey))
	for _, d := range byKey {
		if len(d.Occurrences) >= 2 {
			out = append(out, d)
		}
	}
	return out
}

// IndexDoubleCubeDivisors enumerates cube-pair intersections across
// nodes, up to nPairsMax pairs, and aggregates weight across every pair
// whose intersection has at least two literals (step 2 of the pipeline).
func IndexDoubleCubeDivisors(nodes []*Node, nPairsMax int) []*Divisor {
	type cubeRef struct {
		nodeID int
		idx    int
		cube   Cube
	}
	var all []cubeRef
	for _, n := range nodes {
		for ci, c := range n.Cover {
			all = append(all, cubeRef{n.ID, ci, c})
		}
	}

	byKey := make(map[string]*Divisor)
	pairs := 0
	for i := 0; i < len(all) && pairs < nPairsMax; i++ {
		for j := i + 1; j < len(all) && pairs < nPairsMax; j++ {
			pairs++
			if all[i].nodeID == all[j].nodeID && all[i].idx == all[j].idx {
				continue
			}
			inter := all[i].cube.Intersect(all[j].cube)
			if len(inter) < 2 {
				continue
			}
			key := inter.Key()
			d, ok := byKey[key]
			if !ok {
				d = &Divisor{Kind: DoubleCube, Lits: inter}
				byKey[key] = d
			}
			d.Occurrences = append(d.Occurrences,
				Occurrence{NodeID: all[i].nodeID, CubeIdx: all[i].idx},
				Occurrence{NodeID: all[j].nodeID, CubeIdx: all[j].idx})
		}
	}

	out := make([]*Divisor, 0, len(byKey))
	for _, d := range byKey {
		d.Occurrences = dedupOccurrences(d.Occurrences)
		if len(d.Occurrences) >= 2 {
			out = append(out, d)
		}
	}
	return out
}

func dedupOccurrences(occs []Occurrence) []Occurrence {
	seen := make(map[Occurrence]struct{}, len(occs))
	out := occs[:0]
	for _, o := range occs {
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}
