// Package readers implements the two block read strategies the benchmark
// compares: plain descriptor I/O (pread) and memory-mapped access.
package readers

import (
	"github.com/pkg/errors"
)

var (
	// ErrShortRead is returned when fewer bytes than one block are available
	// at the requested offset in descriptor mode.
	ErrShortRead = errors.New("short read")

	// ErrOutOfBounds is returned when offset+blockSize exceeds the mapped
	// region in mapped mode.
	ErrOutOfBounds = errors.New("read beyond mapped region")
)

// Reader performs one timed block read per call. Implementations are safe
// for concurrent use by multiple workers; all setup I/O (opening, mapping)
// happens in the constructor so that per-operation latency covers only the
// read or copy itself.
type Reader interface {
	// ReadBlock reads one block of the given file into a fresh buffer and
	// returns it. The caller discards the bytes; the copy exists to force an
	// actual access.
	ReadBlock(file int, offset int64) ([]byte, error)

	Close() error
}
