// Package fileset creates and removes the fixture files a benchmark runs
// against.
package fileset

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	// fillByte is the pattern the fixture files are filled with.
	fillByte = 0xAB

	// writeChunkSize bounds the buffer used while filling a file.
	writeChunkSize = 1024 * 1024
)

// Paths returns the fixture file paths for a prefix without touching disk,
// so a benchmark can also run against files created by an earlier
// invocation.
func Paths(dir, prefix string, numFiles int) []string {
	paths := make([]string, 0, numFiles)
	for i := 0; i < numFiles; i++ {
		paths = append(paths, filepath.Join(dir, fmt.Sprintf("%v_%v.dat", prefix, i)))
	}

	return paths
}

// Create writes numFiles files of exactly fileSize bytes each, filled with
// a constant pattern and synced to storage. Files are created concurrently;
// the first error aborts the whole setup, since the benchmark depends on
// every file being present and correctly sized.
func Create(dir, prefix string, numFiles, fileSize int) ([]string, error) {
	paths := Paths(dir, prefix, numFiles)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		path := path

		g.Go(func() error {
			if err := writeFile(path, fileSize); err != nil {
				return errors.Wrapf(err, "create %v", path)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}

func writeFile(path string, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	chunk := make([]byte, writeChunkSize)
	for i := range chunk {
		chunk[i] = fillByte
	}

	for remaining := size; remaining > 0; remaining -= writeChunkSize {
		n := writeChunkSize
		if remaining < n {
			n = remaining
		}

		if _, err := f.Write(chunk[:n]); err != nil {
			return err
		}
	}

	if err := f.Sync(); err != nil {
		return err
	}

	return f.Close()
}

// Remove deletes the fixture files, ignoring ones that are already gone.
func Remove(paths []string) error {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "remove %v", path)
		}
	}

	return nil
}
