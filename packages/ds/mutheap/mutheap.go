// Package mutheap provides a max-oriented binary heap whose entries can be
// relocated after insertion. Push returns a Handle that keeps tracking its
// entry across every swap the heap performs, so a caller can raise or lower
// that one entry's priority later in O(log n) without searching.
package mutheap

import "fmt"

// Heap holds its entries in a dense array and keeps, for every live entry,
// a side-table cell recording the entry's current array position. Handles
// point at cells, not at array slots, so percolation only has to update the
// cells it swaps. Not safe for concurrent use.
type Heap[T any] struct {
	less  func(a, b T) bool
	slots []slot[T]
	cells []posCell
	free  []int
}

type slot[T any] struct {
	item T
	cell int
}

// posCell is the current position of one entry. gen increments when the
// entry is removed, which is what invalidates outstanding handles: a cell
// may be reused by a later Push, but only under a fresh generation.
type posCell struct {
	pos int
	gen uint64
}

// Handle is a stable reference to one pushed entry. It stays valid until
// that entry is removed by PopMax; using it afterwards is a caller bug and
// panics. The zero Handle is not valid. Handles are plain values and may be
// copied freely.
type Handle struct {
	cell int
	gen  uint64
}

// New returns an empty heap ordered by less. The maximum element is the one
// nothing else compares greater than.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

func (h *Heap[T]) Len() int {
	return len(h.slots)
}

// Push inserts item and returns a Handle tracking it.
func (h *Heap[T]) Push(item T) Handle {
	idx := len(h.slots)
	cell := h.allocCell(idx)
	h.slots = append(h.slots, slot[T]{item: item, cell: cell})
	h.up(idx)
	return Handle{cell: cell, gen: h.cells[cell].gen}
}

// PeekMax returns the maximum item without removing it.
func (h *Heap[T]) PeekMax() (T, bool) {
	if len(h.slots) == 0 {
		var zero T
		return zero, false
	}
	return h.slots[0].item, true
}

// PopMax removes and returns the maximum item. Handles to the popped item
// become stale; the handle of whichever item is moved into the vacated root
// keeps resolving to its new position.
func (h *Heap[T]) PopMax() (T, bool) {
	if len(h.slots) == 0 {
		var zero T
		return zero, false
	}
	root := h.slots[0]
	h.freeCell(root.cell)

	last := len(h.slots) - 1
	if last > 0 {
		h.slots[0] = h.slots[last]
		h.cells[h.slots[0].cell].pos = 0
	}
	h.slots[last] = slot[T]{}
	h.slots = h.slots[:last]
	if last > 0 {
		h.down(0)
	}
	return root.item, true
}

// Increment applies fn to the item hd tracks and restores the heap shape
// assuming fn did not decrease the item's priority. Panics if hd is stale.
func (h *Heap[T]) Increment(hd Handle, fn func(*T)) {
	idx := h.resolve(hd)
	fn(&h.slots[idx].item)
	h.up(idx)
}

// Decrement is the counterpart for a priority-decreasing mutation.
func (h *Heap[T]) Decrement(hd Handle, fn func(*T)) {
	idx := h.resolve(hd)
	fn(&h.slots[idx].item)
	h.down(idx)
}

// resolve maps a handle to its entry's current position. A generation
// mismatch means the entry was popped after the handle was issued;
// continuing would mutate whatever entry now occupies the reused cell, so
// this is treated as an unrecoverable contract violation.
func (h *Heap[T]) resolve(hd Handle) int {
	if hd.cell >= len(h.cells) || h.cells[hd.cell].gen != hd.gen {
		panic(fmt.Sprintf("mutheap: stale handle (cell=%d gen=%d)", hd.cell, hd.gen))
	}
	return h.cells[hd.cell].pos
}

func (h *Heap[T]) allocCell(pos int) int {
	if n := len(h.free); n > 0 {
		cell := h.free[n-1]
		h.free = h.free[:n-1]
		h.cells[cell].pos = pos
		return cell
	}
	h.cells = append(h.cells, posCell{pos: pos})
	return len(h.cells) - 1
}

func (h *Heap[T]) freeCell(cell int) {
	h.cells[cell].gen++
	h.free = append(h.free, cell)
}

// swap exchanges two slots and their position cells together. Keeping the
// cells in lockstep with the array is the invariant the whole package
// exists for; every percolation step goes through here.
func (h *Heap[T]) swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
	h.cells[h.slots[i].cell].pos = i
	h.cells[h.slots[j].cell].pos = j
}

func (h *Heap[T]) up(idx int) {
	for idx > 0 {
		parent := (idx - 1) / 2
		if !h.less(h.slots[parent].item, h.slots[idx].item) {
			break
		}
		h.swap(parent, idx)
		idx = parent
	}
}

func (h *Heap[T]) down(idx int) {
	for {
		largest := idx
		if l := 2*idx + 1; l < len(h.slots) && h.less(h.slots[largest].item, h.slots[l].item) {
			largest = l
		}
		if r := 2*idx + 2; r < len(h.slots) && h.less(h.slots[largest].item, h.slots[r].item) {
			largest = r
		}
		if largest == idx {
			return
		}
		h.swap(idx, largest)
		idx = largest
	}
}
