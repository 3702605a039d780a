package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/benchkit/randio/pkg/fileset"
)

func main() {
	numFiles := flag.Int("num-files", 10, "Number of files to create")
	fileSize := flag.Int("file-size", 1024*1024, "Size of each file in bytes")
	filePrefix := flag.String("file-prefix", "testfile", "Prefix for test files")
	dir := flag.String("dir", ".", "Directory to place test files in")
	dropCache := flag.Bool("drop-cache", false, "Drop cached pages of the test files after creating them (linux only)")
	remove := flag.Bool("remove", false, "Remove a previously created file set instead of creating one")

	flag.Parse()

	if *remove {
		paths := fileset.Paths(*dir, *filePrefix, *numFiles)

		if err := fileset.Remove(paths); err != nil {
			panic(err)
		}

		fmt.Printf("Removed %v files\n", len(paths))

		return
	}

	before := time.Now()

	paths, err := fileset.Create(*dir, *filePrefix, *numFiles, *fileSize)
	if err != nil {
		panic(err)
	}

	if *dropCache {
		if err := fileset.DropCaches(paths); err != nil {
			panic(err)
		}
	}

	fmt.Printf("Created %v files of %v bytes in %v\n", len(paths), *fileSize, time.Since(before))
}
