// Package bench runs the benchmark: it splits the operation budget across
// workers, drives the per-worker access patterns against a read executor and
// merges the timed results.
package bench

import (
	"log"
	"sync"
	"time"

	"github.com/benchkit/randio/pkg/config"
	"github.com/benchkit/randio/pkg/pattern"
	"github.com/benchkit/randio/pkg/readers"
	"github.com/benchkit/randio/pkg/touch"
)

// Result is one completed read.
type Result struct {
	Latency   time.Duration `json:"latency"`
	FirstRead bool          `json:"firstRead"`
}

// clampWorkers resolves the requested thread count against the operation
// budget: at least one worker as long as there is work, never more workers
// than operations.
func clampWorkers(numThreads, numOperations int) int {
	if numOperations <= 0 {
		return 0
	}

	if numThreads < 1 {
		return 1
	}

	if numThreads > numOperations {
		return numOperations
	}

	return numThreads
}

// splitOperations divides total into workers shares that sum to total and
// differ by at most one, with the remainder going to the lowest worker
// indexes.
func splitOperations(total, workers int) []int {
	if workers <= 0 {
		return nil
	}

	shares := make([]int, workers)
	base := total / workers
	remainder := total % workers

	for i := range shares {
		shares[i] = base
		if i < remainder {
			shares[i]++
		}
	}

	return shares
}

// Run executes the full operation budget against the given executor and
// returns the merged results. It blocks until every worker has finished; the
// order of the returned slice is unspecified. Failed reads are dropped from
// the results, so the returned count may be below the configured budget.
func Run(cfg *config.Config, rdr readers.Reader, verbose bool) []Result {
	workers := clampWorkers(cfg.NumThreads, cfg.NumOperations)
	shares := splitOperations(cfg.NumOperations, workers)

	registry := touch.NewRegistry()

	var (
		resultsLock sync.Mutex
		results     = make([]Result, 0, cfg.NumOperations)
	)

	var wg sync.WaitGroup
	for i, share := range shares {
		wg.Add(1)

		go func(worker, operations int) {
			defer wg.Done()

			gen := pattern.NewGenerator(cfg.Seed, worker, cfg.NumFiles, cfg.FileSize, cfg.BlockSize)

			local := make([]Result, 0, operations)
			skipped := 0

			for o := 0; o < operations; o++ {
				pick, ok := gen.Next()
				if !ok {
					continue
				}

				firstRead := registry.MarkAndCheck(pick.File, pick.Block)

				before := time.Now()
				_, err := rdr.ReadBlock(pick.File, pick.Offset)
				latency := time.Since(before)

				if err != nil {
					skipped++

					continue
				}

				local = append(local, Result{
					Latency:   latency,
					FirstRead: firstRead,
				})
			}

			if verbose && skipped > 0 {
				log.Printf("Worker %v skipped %v failed reads", worker, skipped)
			}

			resultsLock.Lock()
			results = append(results, local...)
			resultsLock.Unlock()
		}(i, share)
	}

	wg.Wait()

	return results
}
