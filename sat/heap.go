package sat

// varHeap is an indexed binary max-heap over variable activity, the
// structure a VSIDS decision heuristic needs: O(log n) push and
// decrease-key-style rescoring via bump.
type varHeap struct {
	data     []int     // heap of variable ids
	pos      []int     // var -> index in data, -1 if absent
	activity []float64 // var -> current activity score
}

func newVarHeap(nVars int) *varHeap {
	return &varHeap{
		data:     make([]int, 0, nVars),
		pos:      initPos(nVars),
		activity: make([]float64, nVars+1),
	}
}

func initPos(nVars int) []int {
	p := make([]int, nVars+1)
	for i := range p {
		p[i] = -1
	}
	return p
}

func (h *varHeap) contains(v int) bool { return h.pos[v] != -1 }

func (h *varHeap) push(v int, act float64) {
	h.activity[v] = act
	if h.contains(v) {
		h.fixup(h.pos[v])
		return
	}
	h.data = append(h.data, v)
	h.pos[v] = len(h.data) - 1
	h.fixup(h.pos[v])
}

// bump increases v's activity (called on conflict involvement) and
// restores the heap invariant if v is currently present.
func (h *varHeap) bump(v int, delta float64) {
	h.activity[v] += delta
	if h.contains(v) {
		h.fixup(h.pos[v])
	}
}

// popMax removes and returns the highest-activity variable, skipping any
// that isAssigned reports as no longer eligible.
func (h *varHeap) popMax(isAssigned func(int) bool) (int, bool) {
	for len(h.data) > 0 {
		v := h.data[0]
		h.removeTop()
		if !isAssigned(v) {
			return v, true
		}
	}
	return 0, false
}

func (h *varHeap) removeTop() {
	last := len(h.data) - 1
	h.swap(0, last)
	h.pos[h.data[last]] = -1
	h.data = h.data[:last]
	if len(h.data) > 0 {
		h.fixdown(0)
	}
}

func (h *varHeap) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.pos[h.data[i]] = i
	h.pos[h.data[j]] = j
}

func (h *varHeap) fixup(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.activity[h.data[parent]] >= h.activity[h.data[i]] {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *varHeap) fixdown(i int) {
	n := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < n && h.activity[h.data[left]] > h.activity[h.data[largest]] {
			largest = left
		}
		if right < n && h.activity[h.data[right]] > h.activity[h.data[largest]] {
			largest = right
		}
		if largest == i {
			return
		}
		h.swap(i, largest)
		i = largest
	}
}

// focusedQueue is the "oldest unassigned variable" decision source used
// in focused mode, stamped on enqueue (variables unassigned by backtrack
// are appended at the tail, so the head is always the longest-waiting
// one still eligible).
type focusedQueue struct {
	data []int
	head int
}

func newFocusedQueue(nVars int) *focusedQueue {
	q := &focusedQueue{data: make([]int, 0, nVars)}
	return q
}

func (q *focusedQueue) enqueue(v int) {
	q.data = append(q.data, v)
}

func (q *focusedQueue) popOldest(isAssigned func(int) bool) (int, bool) {
	for q.head < len(q.data) {
		v := q.data[q.head]
		q.head++
		if !isAssigned(v) {
			return v, true
		}
	}
	return 0, false
}
