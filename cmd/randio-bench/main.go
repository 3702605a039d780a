package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/benchkit/randio/pkg/bench"
	"github.com/benchkit/randio/pkg/config"
	"github.com/benchkit/randio/pkg/fileset"
	"github.com/benchkit/randio/pkg/readers"
	"github.com/benchkit/randio/pkg/report"
	"github.com/benchkit/randio/pkg/stats"
)

func main() {
	cfg := config.Default()

	configPath := flag.String("config", "", "Path to an optional TOML config file; explicitly set flags override it")

	numFiles := flag.Int("num-files", cfg.NumFiles, "Number of files to create")
	fileSize := flag.Int("file-size", cfg.FileSize, "Size of each file in bytes")
	waitTime := flag.Duration("wait-time", time.Duration(cfg.WaitTime), "Waiting time after file creation")
	numThreads := flag.Int("num-threads", cfg.NumThreads, "Number of workers for read operations")
	seed := flag.Uint64("seed", cfg.Seed, "Random seed for reproducible experiments")
	blockSize := flag.Int("block-size", cfg.BlockSize, "Size of blocks to read in bytes")
	numOperations := flag.Int("num-operations", cfg.NumOperations, "Number of read operations to perform")
	useMmap := flag.Bool("use-mmap", cfg.UseMmap, "Use memory-mapped files instead of standard I/O")
	filePrefix := flag.String("file-prefix", cfg.FilePrefix, "Prefix for test files")
	dir := flag.String("dir", cfg.Dir, "Directory to place test files in")
	dropCache := flag.Bool("drop-cache", cfg.DropCache, "Drop cached pages of the test files before measuring (linux only)")
	keepFiles := flag.Bool("keep-files", cfg.KeepFiles, "Keep the test files after the run")
	useExisting := flag.Bool("use-existing", false, "Run against test files created by an earlier invocation instead of creating them")
	jsonOutput := flag.Bool("json", false, "Emit the report as JSON instead of text")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")

	flag.Parse()

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			panic(err)
		}

		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "num-files":
			cfg.NumFiles = *numFiles
		case "file-size":
			cfg.FileSize = *fileSize
		case "wait-time":
			cfg.WaitTime = config.Duration(*waitTime)
		case "num-threads":
			cfg.NumThreads = *numThreads
		case "seed":
			cfg.Seed = *seed
		case "block-size":
			cfg.BlockSize = *blockSize
		case "num-operations":
			cfg.NumOperations = *numOperations
		case "use-mmap":
			cfg.UseMmap = *useMmap
		case "file-prefix":
			cfg.FilePrefix = *filePrefix
		case "dir":
			cfg.Dir = *dir
		case "drop-cache":
			cfg.DropCache = *dropCache
		case "keep-files":
			cfg.KeepFiles = *keepFiles
		}
	})

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	mode := "Standard I/O"
	if cfg.UseMmap {
		mode = "Memory-mapped"
	}

	if !*jsonOutput {
		fmt.Println("Random I/O tester starting...")
		fmt.Println("Configuration:")
		fmt.Printf("  Files: %v × %v bytes\n", cfg.NumFiles, cfg.FileSize)
		fmt.Printf("  Workers: %v\n", cfg.NumThreads)
		fmt.Printf("  Block size: %v bytes\n", cfg.BlockSize)
		fmt.Printf("  Operations: %v\n", cfg.NumOperations)
		fmt.Printf("  Mode: %v\n", mode)
		fmt.Printf("  Seed: %v\n", cfg.Seed)
	}

	var paths []string
	if *useExisting {
		paths = fileset.Paths(cfg.Dir, cfg.FilePrefix, cfg.NumFiles)
	} else {
		var err error

		before := time.Now()

		paths, err = fileset.Create(cfg.Dir, cfg.FilePrefix, cfg.NumFiles, cfg.FileSize)
		if err != nil {
			panic(err)
		}

		if *verbose {
			log.Printf("Created %v files in %v", len(paths), time.Since(before))
		}

		if !cfg.KeepFiles {
			defer func() {
				if err := fileset.Remove(paths); err != nil {
					panic(err)
				}
			}()
		}
	}

	if cfg.DropCache {
		if err := fileset.DropCaches(paths); err != nil {
			panic(err)
		}

		if *verbose {
			log.Printf("Dropped cached pages for %v files", len(paths))
		}
	}

	time.Sleep(time.Duration(cfg.WaitTime))

	var (
		rdr readers.Reader
		err error
	)
	if cfg.UseMmap {
		rdr, err = readers.NewMmapReader(paths, cfg.BlockSize)
	} else {
		rdr, err = readers.NewFileReader(paths, cfg.BlockSize)
	}
	if err != nil {
		panic(err)
	}
	defer rdr.Close()

	before := time.Now()

	results := bench.Run(cfg, rdr, *verbose)

	if *verbose {
		log.Printf("Completed %v of %v operations in %v", len(results), cfg.NumOperations, time.Since(before))
	}

	doc := report.New(cfg, stats.Summarize(results))

	if *jsonOutput {
		if err := doc.WriteJSON(os.Stdout); err != nil {
			panic(err)
		}

		return
	}

	if err := doc.WriteText(os.Stdout); err != nil {
		panic(err)
	}
}
