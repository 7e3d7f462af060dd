package slotarena

import (
	"fmt"
	"testing"
)

type benchParticle struct {
	X, Y, VX, VY float32
	Life         int32
	_            [44]byte // 64 bytes total
}

// BenchmarkRealisticUsage compares the arena against the structures a
// particle or entity pool is usually built on.
func BenchmarkRealisticUsage(b *testing.B) {
	for _, n := range []int{1_000, 10_000, 100_000} {
		name := fmt.Sprintf("%dK", n/1000)

		// Churn: one tenth of the population dies and is replaced every tick.
		b.Run("Churn/Arena/"+name, func(b *testing.B) {
			a := New(WithCapacity[benchParticle](n))
			hs := a.CreateN(n, nil)
			a.Refresh()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := i % 10; j < n; j += 10 {
					hs[j].Destroy()
					hs[j] = a.Create(benchParticle{Life: 10})
				}
				a.Refresh()
			}
		})

		b.Run("Churn/Map/"+name, func(b *testing.B) {
			m := make(map[int]*benchParticle, n)
			ids := make([]int, n)
			next := 0
			for j := range ids {
				m[next] = &benchParticle{}
				ids[j] = next
				next++
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := i % 10; j < n; j += 10 {
					delete(m, ids[j])
					m[next] = &benchParticle{Life: 10}
					ids[j] = next
					next++
				}
			}
		})

		// Iterate: update every live element once.
		b.Run("Iterate/Arena/"+name, func(b *testing.B) {
			a := New(WithCapacity[benchParticle](n))
			a.CreateN(n, func(_ int, p *benchParticle) { p.VX, p.VY = 1, 1 })
			a.Refresh()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a.ForEach(func(p *benchParticle) {
					p.X += p.VX
					p.Y += p.VY
				})
			}
		})

		b.Run("Iterate/Map/"+name, func(b *testing.B) {
			m := make(map[int]*benchParticle, n)
			for j := range n {
				m[j] = &benchParticle{VX: 1, VY: 1}
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for _, p := range m {
					p.X += p.VX
					p.Y += p.VY
				}
			}
		})
	}
}

func BenchmarkHandle(b *testing.B) {
	a := New(WithCapacity[benchParticle](1024))
	hs := a.CreateN(1024, nil)
	a.Refresh()

	b.Run("IsAlive", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = hs[i&1023].IsAlive()
		}
	})

	b.Run("Get", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			hs[i&1023].Get().Life++
		}
	})
}

func BenchmarkCreate(b *testing.B) {
	b.Run("GrowBatch", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			a := New[benchParticle]()
			for range 1000 {
				a.Create(benchParticle{})
			}
		}
	})

	b.Run("Reserved", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			a := New(WithCapacity[benchParticle](1000))
			for range 1000 {
				a.Create(benchParticle{})
			}
		}
	})
}
