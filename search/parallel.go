package search

import (
	"sync"

	"github.com/hyfi06/ppt4/ppt"
	"github.com/hyfi06/ppt4/ptgraph"
	"golang.org/x/sync/errgroup"
)

// enumerateParallel implements Options.Parallel: each candidate edge
// at the first level of the frontier becomes an independent branch
// running on its own PartialGraph.Clone, so goroutines never share
// mutable graph state. This trades the lexicographic solution order
// Enumerate otherwise guarantees (Result.Ordered is set false) for
// concurrency across the frontier's widest level.
func enumerateParallel(g *ptgraph.PartialGraph, opts Options) (*Result, error) {
	// A seeded graph that is already a 4-PPT is the one solution and has
	// no first-level branch to fan out; the serial engine records it.
	if ppt.Is4PPT(g) {
		serial := opts
		serial.Parallel = false
		res, err := Enumerate(g, serial)
		res.Ordered = false
		return res, err
	}

	candidates := g.CandidateEdges()
	target := 2*g.N() - 3

	var (
		mu       sync.Mutex
		result   Result
		stopFlag bool
	)
	result.Ordered = false

	sharedShouldStop := opts.ShouldStop
	shouldStop := func() bool {
		mu.Lock()
		s := stopFlag
		mu.Unlock()
		if s {
			return true
		}
		return sharedShouldStop != nil && sharedShouldStop()
	}

	var wg errgroup.Group
	for i, c := range candidates {
		i, c := i, c
		wg.Go(func() error {
			branch := g.Clone()
			if err := branch.AddEdge(c.A, c.B); err != nil {
				return nil
			}

			be := &engine{
				graph:  branch,
				opts:   opts,
				target: target,
			}
			be.opts.ShouldStop = shouldStop
			be.search(candidates[i+1:])

			mu.Lock()
			result.Solutions = append(result.Solutions, be.result.Solutions...)
			if be.stopped {
				stopFlag = true
			}
			mu.Unlock()
			return nil
		})
	}
	_ = wg.Wait()

	mu.Lock()
	result.Stopped = stopFlag
	mu.Unlock()

	return &result, nil
}
