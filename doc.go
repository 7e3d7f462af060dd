// Package slotarena implements a slot-based object manager with stable,
// generation-checked handles.
//
// # Overview
//
// An Arena owns a contiguous run of slots, each optionally holding one
// element of type T. Create returns a Handle: the index of a mark plus a
// snapshot of that mark's generation. Marks never move; the slots they
// designate do. That indirection lets the arena compact its storage while
// every outstanding handle keeps working, and lets a handle detect that its
// element is gone even after the slot has been reused. This is useful for:
//
//   - Entity and particle pools in simulations and games
//   - Object pools whose members are iterated in bulk once per tick
//   - Any owner that hands out references which may outlive their target
//
// # Basic Usage
//
//	a := slotarena.New[Particle]()
//	defer a.Release() // destructs whatever is left
//
//	h := a.Create(Particle{Life: 3})
//	h.Get().Life-- // resolve mark -> slot -> element
//
//	a.Refresh() // newly created elements become visible to iteration
//	a.ForEach(func(p *Particle) { p.Life-- })
//
//	h.Destroy()          // h.IsAlive() is false from here on
//	a.Refresh()          // destructs it and bumps its generation
//
// # Lifecycle
//
// Destruction is deferred. Destroy (or Atom.SetDead during ForEachAtom)
// only marks an element dead; every handle to it reports IsAlive() == false
// immediately, but the destructor registered with WithDestructor runs, and
// the mark's generation is bumped, in the next Refresh. Refresh partitions
// the slots into a live prefix and a dead suffix with one forward pass of
// swaps. The relative order of live elements is not preserved.
//
// Elements created since the last Refresh are reachable through their
// handles but are not visited by ForEach, ForEachAtom, All, DataAt or
// AtomAt until the next Refresh. Call Refresh once per tick, before
// iterating.
//
// # Misuse
//
// Misuse is a programming bug, not a runtime condition: resolving a stale
// handle, indexing outside [0, Len) and using a released arena all panic
// with ErrStaleHandle, *IndexError and ErrReleased respectively. TryGet and
// TryDataAt return the same values as errors for callers that prefer to
// check.
//
// # Thread Safety
//
// Arena is not thread-safe. For concurrent access use SafeArena, which
// serializes every operation behind one mutex:
//
//	s := slotarena.NewSafe[Particle]()
//	h := s.Create(Particle{Life: 3})
//	s.Update(h, func(p *Particle) { p.Life-- })
//
// # Growth
//
// Capacity grows by a fixed batch (DefaultGrowBatch, or WithGrowBatch) when
// Create runs out of slots, and never shrinks. Reserve grows it up front.
// Pointers returned by Get, DataAt and friends are invalidated by any call
// that can move or grow storage: Create, Emplace, Reserve, Refresh, Clear.
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("live %d / cap %d, %d pending\n", m.Len, m.Cap, m.Pending)
//	fmt.Printf("created %d, destructed %d\n", m.Created, m.Destructed)
package slotarena
