package slotarena

// Atom is a storage slot that may or may not hold a constructed element.
type Atom[T any] struct {
	value   T
	mark    int
	present bool // holds a constructed element
	alive   bool // present and not marked dead
}

// Data returns the slot's element. It panics with ErrDeadAtom if the slot
// holds no constructed element. An element marked dead but not yet swept
// by Refresh is still readable.
func (s *Atom[T]) Data() *T {
	if !s.present {
		panic(ErrDeadAtom)
	}
	return &s.value
}

// Alive reports whether the slot holds an element that has not been
// marked dead.
func (s *Atom[T]) Alive() bool { return s.alive }

// SetDead marks the element for destruction by the next Refresh. Handles
// bound to it report IsAlive() == false immediately.
func (s *Atom[T]) SetDead() { s.alive = false }
