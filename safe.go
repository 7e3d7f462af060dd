package slotarena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// Every operation, including handle resolution, runs under one lock, so
// Create, Destroy and Refresh never interleave. Element pointers are never
// handed out; use Get for a copy or Update to mutate in place.
type SafeArena[T any] struct {
	mu sync.Mutex
	a  *Arena[T]
}

// NewSafe creates a new thread-safe arena.
func NewSafe[T any](opts ...Option[T]) *SafeArena[T] {
	return &SafeArena[T]{a: New(opts...)}
}

// Create thread-safely stores v in a new slot and returns its handle.
func (s *SafeArena[T]) Create(v T) Handle[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Create(v)
}

// Emplace thread-safely constructs a new element in place.
func (s *SafeArena[T]) Emplace(init func(*T)) Handle[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Emplace(init)
}

// IsAlive thread-safely reports whether h refers to a live element.
func (s *SafeArena[T]) IsAlive(h Handle[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return h.IsAlive()
}

// Destroy thread-safely marks the element of h dead. It reports false,
// instead of panicking, if h is not alive.
func (s *SafeArena[T]) Destroy(h Handle[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !h.IsAlive() {
		return false
	}
	h.Destroy()
	return true
}

// Get thread-safely returns a copy of the element of h.
func (s *SafeArena[T]) Get(h Handle[T]) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := h.TryGet()
	if err != nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Update thread-safely calls fn with the element of h. It reports false if
// h is not alive.
func (s *SafeArena[T]) Update(h Handle[T], fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := h.TryGet()
	if err != nil {
		return false
	}
	fn(p)
	return true
}

// Refresh thread-safely sweeps dead elements.
func (s *SafeArena[T]) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Refresh()
}

// ForEach thread-safely calls fn for every element in [0, Len). fn must
// not call back into s.
func (s *SafeArena[T]) ForEach(fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.ForEach(fn)
}

// Reserve thread-safely ensures capacity for n elements.
func (s *SafeArena[T]) Reserve(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reserve(n)
}

// Clear thread-safely destructs every element.
func (s *SafeArena[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// Release thread-safely destructs every element and drops all storage.
func (s *SafeArena[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Thread-safe metrics for SafeArena

// Len thread-safely returns the number of live elements as of the last Refresh.
func (s *SafeArena[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Len()
}

// LenNext thread-safely returns the number of slots in use.
func (s *SafeArena[T]) LenNext() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.LenNext()
}

// Cap thread-safely returns the number of allocated slots.
func (s *SafeArena[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Cap()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena[T]) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
