// Package scratch provides the per-goroutine buffer cache used by the
// repair-based CCO variants (pkg/cco). A colouring call that needs to
// relocate vertices between colour classes works against an auxiliary
// per-class vertex list; keeping one such list per goroutine and reusing
// it across recursive calls avoids an allocation at every branch-and-bound
// node (spec §4.2, §5, §9 "thread-local scratch").
//
// Grounded on internal/parallel/pool.go's worker-resource-management style
// and on kektordb's pkg/core/distance sync.Pool-backed diffWorkspace.
package scratch

import "sync"

// Buffer holds the colour classes built so far during one colouring call,
// plus the singleton classes deferred to the tail by the Defer1 variants.
// It is resized on growth only: member slices keep their backing array
// across Reset calls.
type Buffer struct {
	classes [][]int
	active  int
	deferd  []int
}

// Reset clears the buffer for a new colouring call without releasing the
// backing arrays of its colour-class slices.
func (b *Buffer) Reset() {
	b.active = 0
	b.deferd = b.deferd[:0]
}

// NewClass opens a fresh, empty colour class and returns its index.
func (b *Buffer) NewClass() int {
	idx := b.active
	if idx == len(b.classes) {
		b.classes = append(b.classes, nil)
	}
	b.classes[idx] = b.classes[idx][:0]
	b.active++
	return idx
}

// ActiveClasses reports how many colour classes are currently open.
func (b *Buffer) ActiveClasses() int { return b.active }

// Append adds vertex v to colour class idx.
func (b *Buffer) Append(idx, v int) {
	b.classes[idx] = append(b.classes[idx], v)
}

// Members returns class idx's current members, in insertion order.
func (b *Buffer) Members(idx int) []int {
	return b.classes[idx]
}

// RemoveAt deletes and returns the member at position pos within class
// idx, shifting later members down by one.
func (b *Buffer) RemoveAt(idx, pos int) int {
	v := b.classes[idx][pos]
	b.classes[idx] = append(b.classes[idx][:pos], b.classes[idx][pos+1:]...)
	return v
}

// AppendDefer records v as a singleton class held back for the tail.
func (b *Buffer) AppendDefer(v int) {
	b.deferd = append(b.deferd, v)
}

// Deferred returns the vertices recorded via AppendDefer, in order.
func (b *Buffer) Deferred() []int {
	return b.deferd
}

var pool = sync.Pool{
	New: func() any { return &Buffer{} },
}

// Get returns a cleared Buffer from the pool. Callers must return it via
// Put when done with the current colouring call.
func Get() *Buffer {
	b := pool.Get().(*Buffer)
	b.Reset()
	return b
}

// Put returns buf to the pool for reuse by a later Get.
func Put(buf *Buffer) {
	pool.Put(buf)
}
