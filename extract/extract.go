package extract

import "container/heap"

// Options mirrors spec's fast-extract parameters.
type Options struct {
	NNodesExt int  // max new nodes to extract
	NPairsMax int  // max cube-pairs indexed for double-cube candidates
	OnlyS     bool // restrict to single-cube divisors
	OnlyD     bool // restrict to double-cube divisors
	Use0      bool // accept weight==0 divisors, not just weight>=1
}

// DefaultOptions returns a conservative, always-terminating parameter
// set.
func DefaultOptions() Options {
	return Options{NNodesExt: 64, NPairsMax: 4096}
}

// Result reports what FastExtract did.
type Result struct {
	NewNodes []*Node // appended extracted nodes, in creation order
	Rounds   int
}

// divisorHeap is a max-heap over *Divisor ordered by Weight, the
// container/heap idiom the teacher uses for its own priority queues.
type divisorHeap []*Divisor

func (h divisorHeap) Len() int            { return len(h) }
func (h divisorHeap) Less(i, j int) bool  { return h[i].Weight() > h[j].Weight() }
func (h divisorHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *divisorHeap) Push(x interface{}) {
	d := x.(*Divisor)
	d.index = len(*h)
	*h = append(*h, d)
}
func (h *divisorHeap) Pop() interface{} {
	old := *h
	n := len(old)
	d := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return d
}

// FastExtract runs the algebraic-factoring pipeline over nodes in place
// (covers are rewritten and new nodes appended to the returned slice),
// per spec §4.F: index divisors, repeatedly pop the highest-weight one
// above threshold, substitute it as a new node, rescore, and repeat until
// no divisor clears the threshold or NNodesExt is reached.
func FastExtract(nodes []*Node, nextID int, opt Options) ([]*Node, Result) {
	threshold := 1
	if opt.Use0 {
		threshold = 0
	}

	var result Result
	for result.Rounds = 0; len(result.NewNodes) < opt.NNodesExt; result.Rounds++ {
		divisors := collectDivisors(nodes, opt)
		h := make(divisorHeap, 0, len(divisors))
		for _, d := range divisors {
			heap.Push(&h, d)
		}
		if h.Len() == 0 {
			break
		}
		top := heap.Pop(&h).(*Divisor)
		if top.Weight() < threshold {
			break
		}

		newNode := &Node{ID: nextID, Cover: Cover{top.Lits}, Fanins: varsOf(top.Lits)}
		nextID++
		substitute(nodes, top, newNode)
		nodes = append(nodes, newNode)
		result.NewNodes = append(result.NewNodes, newNode)
	}

	return nodes, result
}

func collectDivisors(nodes []*Node, opt Options) []*Divisor {
	var out []*Divisor
	if !opt.OnlyD {
		out = append(out, IndexSingleCubeDivisors(nodes)...)
	}
	if !opt.OnlyS {
		nPairsMax := opt.NPairsMax
		if nPairsMax <= 0 {
			nPairsMax = DefaultOptions().NPairsMax
		}
		out = append(out, IndexDoubleCubeDivisors(nodes, nPairsMax)...)
	}
	return out
}

// substitute replaces, in every occurrence of d, the divisor's literals
// with a single positive reference to newNode's fanin variable.
func substitute(nodes []*Node, d *Divisor, newNode *Node) {
	byID := make(map[int]*Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}
	ref := NewLiteral(newNode.ID, false)
	for _, occ := range d.Occurrences {
		n, ok := byID[occ.NodeID]
		if !ok || occ.CubeIdx >= len(n.Cover) {
			continue
		}
		remaining := n.Cover[occ.CubeIdx].Minus(d.Lits)
		n.Cover[occ.CubeIdx] = NewCube(append(remaining, ref)...)
	}
}

func varsOf(c Cube) []int {
	seen := make(map[int]struct{}, len(c))
	var out []int
	for _, l := range c {
		v := l.Var()
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
