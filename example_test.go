package slotarena_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/pavanmanishd/slotarena"
)

// Example demonstrates basic arena usage
func Example() {
	a := slotarena.New[string]()
	defer a.Release()

	hA := a.Create("A")
	hB := a.Create("B")
	hC := a.Create("C")
	fmt.Printf("Created: %s %s %s\n", *hA.Get(), *hB.Get(), *hC.Get())

	hB.Destroy()
	fmt.Printf("B alive after Destroy: %v\n", hB.IsAlive())

	a.Refresh()
	var live []string
	a.ForEach(func(s *string) { live = append(live, *s) })
	slices.Sort(live)
	fmt.Printf("Live after Refresh: %v (Len %d)\n", live, a.Len())
	fmt.Printf("A alive: %v, C alive: %v\n", hA.IsAlive(), hC.IsAlive())

	// Output:
	// Created: A B C
	// B alive after Destroy: false
	// Live after Refresh: [A C] (Len 2)
	// A alive: true, C alive: true
}

type particle struct {
	X, Y   float32
	VX, VY float32
	Life   int
}

// ExampleArena_particles drives the arena the way a particle system does:
// emit, refresh once per tick, mark expired particles dead while walking
// the atoms, then update the survivors by index.
func ExampleArena_particles() {
	const maxParticles = 64
	ps := slotarena.New(slotarena.WithCapacity[particle](maxParticles))

	emit := func(n, life int) {
		for range n {
			if ps.LenNext() >= maxParticles {
				return
			}
			ps.Emplace(func(p *particle) {
				p.VX, p.VY = 1, -1
				p.Life = life
			})
		}
	}

	for tick := 1; tick <= 4; tick++ {
		emit(10, tick)

		ps.Refresh()
		ps.ForEachAtom(func(a *slotarena.Atom[particle]) {
			if a.Data().Life <= 0 {
				a.SetDead()
			}
		})
		for i := range ps.Len() {
			p := ps.DataAt(i)
			p.X += p.VX
			p.Y += p.VY
			p.Life--
		}
		fmt.Printf("tick %d: %d particles\n", tick, ps.Len())
	}
	fmt.Printf("capacity: %d\n", ps.Cap())

	// Output:
	// tick 1: 10 particles
	// tick 2: 20 particles
	// tick 3: 20 particles
	// tick 4: 30 particles
	// capacity: 64
}

// ExampleHandle_TryGet shows the checked lookup for handles that may have
// outlived their element.
func ExampleHandle_TryGet() {
	a := slotarena.New[int]()
	h := a.Create(42)

	if v, err := h.TryGet(); err == nil {
		fmt.Println("value:", *v)
	}

	h.Destroy()
	a.Refresh()
	a.Create(7) // reuses the slot and the mark

	if _, err := h.TryGet(); errors.Is(err, slotarena.ErrStaleHandle) {
		fmt.Println("stale:", err)
	}

	// Output:
	// value: 42
	// stale: slotarena: stale handle
}

// ExampleSafeArena demonstrates thread-safe arena usage
func ExampleSafeArena() {
	s := slotarena.NewSafe[int]()
	defer s.Release()

	h := s.Create(1)
	s.Update(h, func(v *int) { *v *= 10 })
	v, ok := s.Get(h)
	fmt.Println(v, ok)

	s.Destroy(h)
	_, ok = s.Get(h)
	fmt.Println(ok)

	// Output:
	// 10 true
	// false
}

// ExampleArena_Metrics shows the statistics snapshot.
func ExampleArena_Metrics() {
	a := slotarena.New[int]()
	hs := a.CreateN(4, nil)
	a.Refresh()
	hs[0].Destroy()
	a.Refresh()

	m := a.Metrics()
	fmt.Printf("len=%d cap=%d created=%d destructed=%d\n", m.Len, m.Cap, m.Created, m.Destructed)
	fmt.Printf("utilization: %.2f%%\n", m.Utilization*100)

	// Output:
	// len=3 cap=4 created=4 destructed=1
	// utilization: 75.00%
}
