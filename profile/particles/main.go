// Profiling:
// go build ./profile/particles
// ./particles -mode mem
// go tool pprof -http=":8000" -nodefraction=0.001 ./particles mem.pprof

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/slotarena"
)

type particle struct {
	X, Y   float32
	VX, VY float32
	Life   int
}

var (
	mode      string
	workers   int
	ticks     int
	emitRate  int
	maxAlive  int
	maxLife   int
	verbose   bool
	outputDir string
)

func init() {
	flag.StringVar(&mode, "mode", "cpu", "profile `mode`: cpu, mem, allocs or none")
	flag.IntVar(&workers, "workers", 1, "independent simulations to run in parallel")
	flag.IntVar(&ticks, "ticks", 10000, "ticks per simulation")
	flag.IntVar(&emitRate, "emit", 500, "particles emitted per tick")
	flag.IntVar(&maxAlive, "max", 20000, "particle cap per simulation")
	flag.IntVar(&maxLife, "life", 60, "particle lifetime in ticks")
	flag.BoolVar(&verbose, "v", false, "log arena events")
	flag.StringVar(&outputDir, "o", ".", "profile output `dir`")
}

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var p interface{ Stop() }
	switch mode {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath(outputDir), profile.NoShutdownHook, profile.Quiet)
	case "mem":
		p = profile.Start(profile.MemProfile, profile.ProfilePath(outputDir), profile.NoShutdownHook, profile.Quiet)
	case "allocs":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath(outputDir), profile.NoShutdownHook, profile.Quiet)
	case "none":
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q\n", mode)
		os.Exit(2)
	}

	start := time.Now()
	stats, err := runAll(context.Background(), logger)
	if p != nil {
		p.Stop()
	}
	if err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
	for i, m := range stats {
		logger.Info("simulation done",
			"worker", i,
			"live", m.Len,
			"capacity", m.Cap,
			"created", m.Created,
			"destructed", m.Destructed,
			"grows", m.Grows,
		)
	}
	logger.Info("finished", "workers", workers, "ticks", ticks, "elapsed", time.Since(start))
}

func runAll(ctx context.Context, logger *slog.Logger) ([]slotarena.Metrics, error) {
	stats := make([]slotarena.Metrics, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			m, err := simulate(ctx, logger.With("worker", w))
			stats[w] = m
			return err
		})
	}
	return stats, g.Wait()
}

// simulate runs one particle system: emit, refresh, expire, integrate.
func simulate(ctx context.Context, logger *slog.Logger) (slotarena.Metrics, error) {
	ps := slotarena.New(
		slotarena.WithCapacity[particle](maxAlive),
		slotarena.WithLogger[particle](logger),
	)
	defer ps.Release()

	for tick := range ticks {
		if err := ctx.Err(); err != nil {
			return ps.Metrics(), err
		}
		for i := 0; i < emitRate && ps.LenNext() < maxAlive; i++ {
			ps.Emplace(func(p *particle) {
				p.VX = float32(i%7) - 3
				p.VY = float32(i%5) - 2
				p.Life = 1 + (tick+i)%maxLife
			})
		}

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
	}
	ps.Refresh()
	return ps.Metrics(), nil
}
