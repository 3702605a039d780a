// Package stats computes latency distributions over benchmark results.
package stats

import (
	"sort"
	"time"

	"github.com/benchkit/randio/pkg/bench"
)

// Summary describes one latency sample.
type Summary struct {
	Count  int           `json:"count"`
	Avg    time.Duration `json:"avg"`
	Median time.Duration `json:"median"`
	P90    time.Duration `json:"p90"`
	P95    time.Duration `json:"p95"`
	P99    time.Duration `json:"p99"`
	Min    time.Duration `json:"min"`
	Max    time.Duration `json:"max"`
}

// RunReport holds the three summaries of one run. First and Repeated have
// Count zero when their subset is empty; the rendering layer omits them in
// that case.
type RunReport struct {
	All      Summary `json:"all"`
	First    Summary `json:"first"`
	Repeated Summary `json:"repeated"`
}

// Compute summarizes a latency sample. The percentile at fraction k is the
// element at index floor(count*k) of the ascending-sorted sample, and the
// median is the element at index count/2; both rules are inherited from the
// original tool and intentionally bias low compared to ceiling-rank
// percentiles. An empty sample yields the zero Summary.
func Compute(latencies []time.Duration) Summary {
	if len(latencies) == 0 {
		return Summary{}
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	count := len(sorted)

	sum := time.Duration(0)
	for _, l := range sorted {
		sum += l
	}

	return Summary{
		Count:  count,
		Avg:    sum / time.Duration(count),
		Median: sorted[count/2],
		P90:    sorted[percentileIndex(count, 0.90)],
		P95:    sorted[percentileIndex(count, 0.95)],
		P99:    sorted[percentileIndex(count, 0.99)],
		Min:    sorted[0],
		Max:    sorted[count-1],
	}
}

func percentileIndex(count int, fraction float64) int {
	i := int(float64(count) * fraction)
	if i >= count {
		i = count - 1
	}

	return i
}

// Summarize splits the merged results into the all/first/repeated subsets
// and computes a Summary for each.
func Summarize(results []bench.Result) RunReport {
	all := make([]time.Duration, 0, len(results))
	first := []time.Duration{}
	repeated := []time.Duration{}

	for _, r := range results {
		all = append(all, r.Latency)

		if r.FirstRead {
			first = append(first, r.Latency)
		} else {
			repeated = append(repeated, r.Latency)
		}
	}

	return RunReport{
		All:      Compute(all),
		First:    Compute(first),
		Repeated: Compute(repeated),
	}
}
