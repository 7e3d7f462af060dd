// Package slotarena implements a slot-based object manager with stable,
// generation-checked handles.
// Typical usage: Create objects as they appear, Refresh once per tick to sweep
// the dead ones, then iterate the compacted live prefix.
package slotarena

import (
	"iter"
	"log/slog"
)

// mark is the stable indirection between a handle and the slot that
// currently holds its element. Marks never move; slots do.
type mark struct {
	idx int    // physical slot index
	gen uint32 // bumped on every create and every destruction
}

// Arena owns a contiguous run of slots. Elements in [0, Len) are live and
// compacted as of the last Refresh; elements created since then sit in
// [Len, LenNext) and become visible to iteration after the next Refresh.
// Not goroutine-safe. Use SafeArena for concurrent access.
type Arena[T any] struct {
	slots    []Atom[T]
	marks    []mark
	size     int
	sizeNext int
	released bool

	opts  options[T]
	stats counters
}

// New creates an empty Arena.
func New[T any](opts ...Option[T]) *Arena[T] {
	a := &Arena[T]{opts: newOptions(opts)}
	if a.opts.capacity > 0 {
		a.grow(a.opts.capacity)
	}
	return a
}

// Reserve ensures the arena can hold at least n elements without growing.
// It never shrinks.
func (a *Arena[T]) Reserve(n int) {
	a.panicIfReleased()
	if n > len(a.slots) {
		a.grow(n - len(a.slots))
	}
}

// grow appends n slots and n identity-mapped marks.
func (a *Arena[T]) grow(n int) {
	old := len(a.slots)
	a.slots = append(a.slots, make([]Atom[T], n)...)
	a.marks = append(a.marks, make([]mark, n)...)
	for i := old; i < len(a.slots); i++ {
		a.slots[i].mark = i
		a.marks[i].idx = i
	}
	a.stats.grows++
	a.opts.logger.Debug("slotarena: grow", "from", old, "to", len(a.slots))
}

func (a *Arena[T]) growIfNeeded() {
	if a.sizeNext >= len(a.slots) {
		a.grow(a.opts.growBatch)
	}
}

// Refresh sweeps every element marked dead since the previous Refresh.
// Afterwards [0, Len) holds exactly the live elements in unspecified order,
// dead elements have been destructed once and their marks' generations
// bumped, and Len() == LenNext().
func (a *Arena[T]) Refresh() {
	a.panicIfReleased()
	n := a.sizeNext

	// Everything before the first dead slot is already in place.
	dead := 0
	for dead < n && a.slots[dead].alive {
		dead++
	}
	// Move each alive slot found past the boundary into the boundary
	// position. Slots in (dead, k) are all dead, so after the swap the new
	// boundary is still a dead slot.
	for k := dead + 1; k < n; k++ {
		if a.slots[k].alive {
			a.slots[dead], a.slots[k] = a.slots[k], a.slots[dead]
			dead++
		}
	}

	// [dead, n) holds only dead slots.
	swept := n - dead
	for j := dead; j < n; j++ {
		a.destruct(&a.slots[j])
	}
	// Swaps moved slots around; point each live mark back at its slot.
	for i := 0; i < dead; i++ {
		a.marks[a.slots[i].mark].idx = i
	}

	a.size, a.sizeNext = dead, dead
	a.stats.refreshes++
	if swept > 0 {
		a.opts.logger.Debug("slotarena: refresh", "live", dead, "destructed", swept)
	}
}

// destruct runs the destructor, drops the value and invalidates every
// handle bound to the slot's mark.
func (a *Arena[T]) destruct(s *Atom[T]) {
	s.alive, s.present = false, false
	if a.opts.destructor != nil {
		a.opts.destructor(&s.value)
	}
	var zero T
	s.value = zero
	a.marks[s.mark].gen++
	a.stats.destructed++
}

// teardown destructs every constructed element, live or pending.
func (a *Arena[T]) teardown() {
	a.Refresh()
	for i := 0; i < a.size; i++ {
		a.destruct(&a.slots[i])
	}
	a.size, a.sizeNext = 0, 0
}

// Clear destructs every element and empties the arena. Capacity is kept;
// handles issued before Clear stay invalid forever.
func (a *Arena[T]) Clear() {
	a.panicIfReleased()
	n := a.sizeNext
	a.teardown()
	a.opts.logger.Debug("slotarena: clear", "destructed", n, "capacity", len(a.slots))
}

// Release destructs every element and drops all storage. The arena is
// unusable afterwards: mutators and indexed access panic with ErrReleased,
// and IsAlive reports false for every handle.
func (a *Arena[T]) Release() {
	if a.released {
		return
	}
	a.teardown()
	a.slots = nil
	a.marks = nil
	a.released = true
	a.opts.logger.Debug("slotarena: release")
}

// Len returns the number of live elements as of the last Refresh.
func (a *Arena[T]) Len() int { return a.size }

// LenNext returns the number of slots in use, including elements created
// since the last Refresh and dead elements not yet swept.
func (a *Arena[T]) LenNext() int { return a.sizeNext }

// Cap returns the number of allocated slots.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// AtomAt returns the slot at physical index i, which must be in [0, Len).
func (a *Arena[T]) AtomAt(i int) *Atom[T] {
	a.panicIfReleased()
	if i < 0 || i >= a.size {
		panic(&IndexError{Index: i, Len: a.size})
	}
	return &a.slots[i]
}

// DataAt returns the element at physical index i, which must be in [0, Len).
// An element marked dead since the last Refresh is still readable here.
func (a *Arena[T]) DataAt(i int) *T {
	return &a.AtomAt(i).value
}

// TryDataAt is DataAt returning an error instead of panicking.
func (a *Arena[T]) TryDataAt(i int) (*T, error) {
	if a.released {
		return nil, ErrReleased
	}
	if i < 0 || i >= a.size {
		return nil, &IndexError{Index: i, Len: a.size}
	}
	return &a.slots[i].value, nil
}

// HandleAt returns a handle to the live element at physical index i.
func (a *Arena[T]) HandleAt(i int) Handle[T] {
	s := a.AtomAt(i)
	if !s.alive {
		panic(ErrDeadAtom)
	}
	return Handle[T]{arena: a, mark: s.mark, gen: a.marks[s.mark].gen}
}

// ForEach calls fn for every element in [0, Len) in physical order.
func (a *Arena[T]) ForEach(fn func(*T)) {
	for i := 0; i < a.size; i++ {
		fn(&a.slots[i].value)
	}
}

// ForEachAtom calls fn for every slot in [0, Len) in physical order.
// fn may call SetDead; the slot is swept by the next Refresh.
func (a *Arena[T]) ForEachAtom(fn func(*Atom[T])) {
	for i := 0; i < a.size; i++ {
		fn(&a.slots[i])
	}
}

// All yields the physical index and element for every slot in [0, Len).
func (a *Arena[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, &a.slots[i].value) {
				return
			}
		}
	}
}

// Logger returns the logger the arena reports to.
func (a *Arena[T]) Logger() *slog.Logger { return a.opts.logger }

func (a *Arena[T]) panicIfReleased() {
	if a.released {
		panic(ErrReleased)
	}
}
