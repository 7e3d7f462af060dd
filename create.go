package slotarena

// Create stores v in a new slot and returns a handle to it. The element is
// reachable through the handle at once but is not visited by ForEach, All
// or indexed access until the next Refresh.
func (a *Arena[T]) Create(v T) Handle[T] {
	s, h := a.next()
	s.value = v
	return h
}

// Emplace constructs a new element in place by calling init on the zeroed
// slot value, and returns a handle to it.
func (a *Arena[T]) Emplace(init func(*T)) Handle[T] {
	s, h := a.next()
	if init != nil {
		init(&s.value)
	}
	return h
}

// CreateN creates n elements, calling init with each element and its
// ordinal, and returns their handles in creation order.
func (a *Arena[T]) CreateN(n int, init func(i int, v *T)) []Handle[T] {
	if n <= 0 {
		return nil
	}
	a.Reserve(a.sizeNext + n)
	hs := make([]Handle[T], n)
	for i := range hs {
		s, h := a.next()
		if init != nil {
			init(i, &s.value)
		}
		hs[i] = h
	}
	return hs
}

// next claims slot sizeNext, binds its mark and bumps the mark's generation.
func (a *Arena[T]) next() (*Atom[T], Handle[T]) {
	a.panicIfReleased()
	a.growIfNeeded()

	s := &a.slots[a.sizeNext]
	s.present, s.alive = true, true

	m := &a.marks[s.mark]
	m.idx = a.sizeNext
	m.gen++

	a.sizeNext++
	a.stats.created++
	return s, Handle[T]{arena: a, mark: s.mark, gen: m.gen}
}
