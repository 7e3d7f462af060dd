package slotarena

// Handle is a weak reference to an element of an Arena: the index of a mark
// plus a snapshot of that mark's generation. It survives compaction and
// detects when its element has been destroyed and the slot reused. The zero
// Handle is never alive.
type Handle[T any] struct {
	arena *Arena[T]
	mark  int
	gen   uint32
}

// IsAlive reports whether the handle still refers to a live element.
// It turns false as soon as the element is destroyed or marked dead, before
// the Refresh that destructs it.
func (h Handle[T]) IsAlive() bool {
	a := h.arena
	if a == nil || h.mark >= len(a.marks) {
		return false
	}
	m := a.marks[h.mark]
	return m.gen == h.gen && a.slots[m.idx].alive
}

// Destroy marks the element dead. It is destructed by the next Refresh.
// It panics with ErrStaleHandle if the handle is not alive.
func (h Handle[T]) Destroy() {
	h.Atom().SetDead()
}

// Atom returns the slot currently holding the element.
// It panics with ErrStaleHandle if the handle is not alive.
func (h Handle[T]) Atom() *Atom[T] {
	if !h.IsAlive() {
		panic(ErrStaleHandle)
	}
	return &h.arena.slots[h.arena.marks[h.mark].idx]
}

// Get returns the element. The pointer is valid until the next Create,
// Reserve or Refresh, any of which may move the element.
// It panics with ErrStaleHandle if the handle is not alive.
func (h Handle[T]) Get() *T {
	return &h.Atom().value
}

// TryGet is Get returning ErrStaleHandle instead of panicking.
func (h Handle[T]) TryGet() (*T, error) {
	if !h.IsAlive() {
		return nil, ErrStaleHandle
	}
	return &h.arena.slots[h.arena.marks[h.mark].idx].value, nil
}

// Generation returns the generation the handle was issued with.
func (h Handle[T]) Generation() uint32 { return h.gen }
