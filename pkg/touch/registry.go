// Package touch tracks which blocks have already been read during a run, so
// each read can be labeled as a first or a repeated access.
package touch

import (
	"sync"
)

// Key identifies a logical block across all files of a run.
type Key struct {
	File  int
	Block int
}

// Registry is the shared set of blocks observed so far. All workers of a run
// share one Registry; it only grows and is discarded with the run.
type Registry struct {
	mu   sync.Mutex
	seen map[Key]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		seen: make(map[Key]struct{}),
	}
}

// MarkAndCheck inserts the block into the set and reports whether this call
// was the one that inserted it. Under concurrent calls racing on the same
// key, exactly one caller sees true.
func (r *Registry) MarkAndCheck(file, block int) bool {
	k := Key{File: file, Block: block}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[k]; ok {
		return false
	}

	r.seen[k] = struct{}{}

	return true
}

// Len returns the number of distinct blocks observed so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.seen)
}
