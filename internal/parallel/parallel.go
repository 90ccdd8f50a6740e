// Package parallel provides parallel iteration over layout index domains.
// The algebra itself is pure and needs no concurrency; this package serves
// callers that sweep a layout's domain, such as exhaustive equivalence
// checks over every linear index.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum indices per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or the
// domain is too small to be worth splitting.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForTiles iterates a tile-by-rest decomposition: f(t, r) for every tile
// index t in [0, tiles) crossed with every rest index r in [0, rest).
func ForTiles(tiles, rest int, f func(t, r int), cfg Config) {
	n := tiles * rest
	For(n, func(k int) {
		f(k%tiles, k/tiles)
	}, cfg)
}
