// Package report renders benchmark results for the console, as plain text
// or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/benchkit/randio/pkg/config"
	"github.com/benchkit/randio/pkg/stats"
)

// Document is the JSON shape of one benchmark run.
type Document struct {
	RunID     string          `json:"runId"`
	Timestamp time.Time       `json:"timestamp"`
	Mode      string          `json:"mode"`
	Config    *config.Config  `json:"config"`
	Report    stats.RunReport `json:"report"`
}

// New builds a Document for a finished run, tagging it with a fresh run ID.
func New(cfg *config.Config, rep stats.RunReport) *Document {
	mode := "standard"
	if cfg.UseMmap {
		mode = "mmap"
	}

	return &Document{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Mode:      mode,
		Config:    cfg,
		Report:    rep,
	}
}

// WriteJSON writes the document as indented JSON.
func (d *Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(d)
}

// WriteText writes the document in the console layout of the original tool.
// The first- and repeated-read sections are omitted when their subsets are
// empty.
func (d *Document) WriteText(w io.Writer) error {
	if d.Report.All.Count == 0 {
		_, err := fmt.Fprintln(w, "No results to analyze")

		return err
	}

	if _, err := fmt.Fprintf(w, "\nAll Reads (%v operations):\n", d.Report.All.Count); err != nil {
		return err
	}
	if err := writeSummary(w, d.Report.All); err != nil {
		return err
	}

	if d.Report.First.Count > 0 {
		if _, err := fmt.Fprintf(w, "\nFirst Reads (%v operations):\n", d.Report.First.Count); err != nil {
			return err
		}
		if err := writeSummary(w, d.Report.First); err != nil {
			return err
		}
	}

	if d.Report.Repeated.Count > 0 {
		if _, err := fmt.Fprintf(w, "\nRepeated Reads (%v operations):\n", d.Report.Repeated.Count); err != nil {
			return err
		}
		if err := writeSummary(w, d.Report.Repeated); err != nil {
			return err
		}
	}

	return nil
}

func writeSummary(w io.Writer, s stats.Summary) error {
	_, err := fmt.Fprintf(
		w,
		`  Count:     %v
  Average:   %.2fµs
  Median:    %.2fµs
  90th %%ile: %.2fµs
  95th %%ile: %.2fµs
  99th %%ile: %.2fµs
  Min:       %.2fµs
  Max:       %.2fµs
`,
		s.Count,
		micros(s.Avg),
		micros(s.Median),
		micros(s.P90),
		micros(s.P95),
		micros(s.P99),
		micros(s.Min),
		micros(s.Max),
	)

	return err
}

func micros(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / float64(time.Microsecond)
}
