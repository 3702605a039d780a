package touch

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMarkAndCheckFirstThenRepeated(t *testing.T) {
	r := NewRegistry()

	if !r.MarkAndCheck(0, 0) {
		t.Fatal("expected first presentation to return true")
	}

	if r.MarkAndCheck(0, 0) {
		t.Fatal("expected second presentation to return false")
	}

	if !r.MarkAndCheck(0, 1) {
		t.Fatal("expected a distinct block to return true")
	}

	if !r.MarkAndCheck(1, 0) {
		t.Fatal("expected a distinct file to return true")
	}

	if r.Len() != 3 {
		t.Fatalf("expected 3 distinct keys, got %v", r.Len())
	}
}

func TestMarkAndCheckExactlyOnceUnderContention(t *testing.T) {
	const (
		workers = 16
		files   = 4
		blocks  = 64
	)

	r := NewRegistry()

	firsts := int64(0)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for f := 0; f < files; f++ {
				for b := 0; b < blocks; b++ {
					if r.MarkAndCheck(f, b) {
						atomic.AddInt64(&firsts, 1)
					}
				}
			}
		}()
	}
	wg.Wait()

	if firsts != files*blocks {
		t.Fatalf("expected exactly %v first touches, got %v", files*blocks, firsts)
	}

	if r.Len() != files*blocks {
		t.Fatalf("expected %v distinct keys, got %v", files*blocks, r.Len())
	}
}
