package engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"unitengine/internal/units"
)

// minChunk is the smallest row count worth handing to its own worker.
const minChunk = 4096

// Engine runs unit-aware kernels over columns. It is safe for concurrent use.
type Engine struct {
	reg      *units.Registry
	resolver *Resolver
	workers  int
}

// New builds an engine over a frozen registry. workers <= 0 means one per CPU.
func New(reg *units.Registry, workers int) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{reg: reg, resolver: NewResolver(reg), workers: workers}
}

func (e *Engine) Registry() *units.Registry {
	return e.reg
}

func (e *Engine) Resolver() *Resolver {
	return e.resolver
}

// forEachChunk splits [0, n) into one contiguous range per worker, the last
// worker taking the remainder, and runs fn on every range in parallel.
func (e *Engine) forEachChunk(n int, fn func(start, end int) error) error {
	numWorkers := min(e.workers, max(1, n/minChunk))
	chunkSize := n / numWorkers

	var g errgroup.Group
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if i == numWorkers-1 {
			end = n
		}
		g.Go(func() error { return fn(start, end) })
	}
	return g.Wait()
}
