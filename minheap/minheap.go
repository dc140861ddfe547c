// Package minheap provides the indexed min-priority queue that drives the
// stepwise Prim engine.
//
// The heap stores vertex IDs and reads their priorities through a KeyFunc,
// so keys stay owned by the graph. When a key changes outside the heap the
// caller restores heap order with BuildMinHeap (full O(n) rebuild), or with
// DecreaseKey in the opt-in fast variant.
//
// Layout: positions are 0-based but use the formulas
//
//	left(p) = 2p, right(p) = 2p+1, parent(p) = p/2
//
// so the root's "left child" is itself, position 1 is the root's only real
// child, and parent(0) = 0. The layout is still a valid tree and is kept
// as-is: extraction order among equal keys depends on it.
package minheap

// KeyFunc returns the current priority of the vertex with the given ID.
type KeyFunc func(id int) int64

// MinHeap is a binary min-heap of vertex IDs ordered by KeyFunc.
//
// items[0:size] is the active heap. items[size:] holds extracted IDs, the
// most recently extracted one first.
type MinHeap struct {
	items []int
	size  int
	key   KeyFunc
}

// New copies ids into a heap and establishes heap order.
// Complexity: O(n).
func New(ids []int, key KeyFunc) *MinHeap {
	items := make([]int, len(ids))
	copy(items, ids)
	h := &MinHeap{items: items, size: len(items), key: key}
	h.BuildMinHeap()

	return h
}

func parent(pos int) int { return pos / 2 }
func left(pos int) int   { return 2 * pos }
func right(pos int) int  { return 2*pos + 1 }

// less compares the keys stored at two positions.
func (h *MinHeap) less(i, j int) bool {
	return h.key(h.items[i]) < h.key(h.items[j])
}

func (h *MinHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// minHeapify sifts the element at pos down until both children are no smaller.
func (h *MinHeap) minHeapify(pos int) {
	for {
		smallest := pos
		l, r := left(pos), right(pos)
		if l < h.size && h.less(l, smallest) {
			smallest = l
		}
		if r < h.size && h.less(r, smallest) {
			smallest = r
		}
		if smallest == pos {
			return
		}
		h.swap(pos, smallest)
		pos = smallest
	}
}

// BuildMinHeap re-establishes heap order over the active window, sifting
// down from size/2 to 0. Call it after mutating any key.
// Complexity: O(n).
func (h *MinHeap) BuildMinHeap() {
	for i := h.size / 2; i >= 0; i-- {
		h.minHeapify(i)
	}
}

// DecreaseKey restores heap order after the key of id went down, by
// bubbling it towards the root. It is the O(log n) alternative to
// BuildMinHeap and may settle ties differently. Returns false if id is not
// in the active window.
func (h *MinHeap) DecreaseKey(id int) bool {
	pos := h.position(id)
	if pos < 0 {
		return false
	}
	for pos > 0 && h.less(pos, parent(pos)) {
		h.swap(pos, parent(pos))
		pos = parent(pos)
	}

	return true
}

// Peek returns the minimum-key ID without removing it.
func (h *MinHeap) Peek() (int, bool) {
	if h.size == 0 {
		return 0, false
	}

	return h.items[0], true
}

// ExtractMin removes and returns the minimum-key ID. The removed ID is
// parked just past the shrunken active window.
// Complexity: O(log n).
func (h *MinHeap) ExtractMin() (int, bool) {
	if h.size < 1 {
		return 0, false
	}
	top := h.items[0]
	h.swap(0, h.size-1)
	h.size--
	h.minHeapify(0)

	return top, true
}

// Contains reports whether id is still in the active window.
// Complexity: O(n) scan.
func (h *MinHeap) Contains(id int) bool {
	return h.position(id) >= 0
}

func (h *MinHeap) position(id int) int {
	for i := 0; i < h.size; i++ {
		if h.items[i] == id {
			return i
		}
	}

	return -1
}

// Size returns the number of IDs in the active window.
func (h *MinHeap) Size() int { return h.size }

// IsEmpty reports whether every ID has been extracted.
func (h *MinHeap) IsEmpty() bool { return h.size == 0 }

// Active returns a copy of the active window in heap layout order.
func (h *MinHeap) Active() []int {
	out := make([]int, h.size)
	copy(out, h.items[:h.size])

	return out
}

// Extracted returns a copy of the extracted IDs, most recent first.
func (h *MinHeap) Extracted() []int {
	out := make([]int, len(h.items)-h.size)
	copy(out, h.items[h.size:])

	return out
}
