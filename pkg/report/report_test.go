package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/benchkit/randio/pkg/config"
	"github.com/benchkit/randio/pkg/stats"
)

func sampleReport() stats.RunReport {
	return stats.RunReport{
		All: stats.Summary{
			Count:  3,
			Avg:    4 * time.Microsecond,
			Median: 4 * time.Microsecond,
			P90:    6 * time.Microsecond,
			P95:    6 * time.Microsecond,
			P99:    6 * time.Microsecond,
			Min:    2 * time.Microsecond,
			Max:    6 * time.Microsecond,
		},
		First: stats.Summary{
			Count:  1,
			Avg:    6 * time.Microsecond,
			Median: 6 * time.Microsecond,
			P90:    6 * time.Microsecond,
			P95:    6 * time.Microsecond,
			P99:    6 * time.Microsecond,
			Min:    6 * time.Microsecond,
			Max:    6 * time.Microsecond,
		},
		Repeated: stats.Summary{
			Count:  2,
			Avg:    3 * time.Microsecond,
			Median: 4 * time.Microsecond,
			P90:    4 * time.Microsecond,
			P95:    4 * time.Microsecond,
			P99:    4 * time.Microsecond,
			Min:    2 * time.Microsecond,
			Max:    4 * time.Microsecond,
		},
	}
}

func TestWriteTextRendersAllSections(t *testing.T) {
	doc := New(config.Default(), sampleReport())

	var buf bytes.Buffer
	if err := doc.WriteText(&buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()

	for _, want := range []string{
		"All Reads (3 operations):",
		"First Reads (1 operations):",
		"Repeated Reads (2 operations):",
		"Average:   4.00µs",
		"90th %ile: 6.00µs",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%v", want, out)
		}
	}
}

func TestWriteTextOmitsEmptySubsets(t *testing.T) {
	rep := sampleReport()
	rep.First = stats.Summary{}

	doc := New(config.Default(), rep)

	var buf bytes.Buffer
	if err := doc.WriteText(&buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()

	if strings.Contains(out, "First Reads") {
		t.Errorf("empty first-read subset should be omitted:\n%v", out)
	}
	if !strings.Contains(out, "Repeated Reads") {
		t.Errorf("repeated-read section missing:\n%v", out)
	}
}

func TestWriteTextEmptyRun(t *testing.T) {
	doc := New(config.Default(), stats.RunReport{})

	var buf bytes.Buffer
	if err := doc.WriteText(&buf); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "No results") {
		t.Errorf("expected the empty-run notice, got:\n%v", buf.String())
	}
}

func TestNewTagsRuns(t *testing.T) {
	cfg := config.Default()

	a := New(cfg, sampleReport())
	b := New(cfg, sampleReport())

	if a.RunID == "" || b.RunID == "" {
		t.Fatal("expected run IDs to be set")
	}
	if a.RunID == b.RunID {
		t.Fatal("expected distinct run IDs per document")
	}

	if a.Mode != "standard" {
		t.Errorf("mode = %v, want standard", a.Mode)
	}

	cfg.UseMmap = true
	if c := New(cfg, sampleReport()); c.Mode != "mmap" {
		t.Errorf("mode = %v, want mmap", c.Mode)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	doc := New(config.Default(), sampleReport())

	var buf bytes.Buffer
	if err := doc.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		RunID  string `json:"runId"`
		Mode   string `json:"mode"`
		Report struct {
			All struct {
				Count int `json:"count"`
			} `json:"all"`
		} `json:"report"`
		Config struct {
			NumFiles int    `json:"numFiles"`
			WaitTime string `json:"waitTime"`
		} `json:"config"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded.RunID != doc.RunID {
		t.Errorf("run ID = %v, want %v", decoded.RunID, doc.RunID)
	}
	if decoded.Report.All.Count != 3 {
		t.Errorf("all count = %v, want 3", decoded.Report.All.Count)
	}
	if decoded.Config.NumFiles != 10 {
		t.Errorf("numFiles = %v, want 10", decoded.Config.NumFiles)
	}
	if decoded.Config.WaitTime != "1s" {
		t.Errorf("waitTime = %v, want 1s", decoded.Config.WaitTime)
	}
}
