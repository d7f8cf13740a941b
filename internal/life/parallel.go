package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// StepParallel advances one generation with rows partitioned across workers.
// Every worker reads the same pre-step snapshot and writes a disjoint row
// band of the scratch buffer, so the result is identical to Step; Wait is the
// only barrier needed before the buffer swap.
func (g *Grid) StepParallel() {
	workers := runtime.NumCPU()
	if workers > g.h {
		workers = g.h
	}
	if workers <= 1 {
		g.Step()
		return
	}

	band := (g.h + workers - 1) / workers
	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		y0 := i * band
		y1 := min(y0+band, g.h)
		if y0 >= y1 {
			break
		}
		eg.Go(func() error {
			g.stepRows(y0, y1)
			return nil
		})
	}
	// Workers never fail; Wait only fences the scratch writes.
	_ = eg.Wait()
	g.swap()
}
