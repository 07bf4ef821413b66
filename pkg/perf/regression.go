// Package perf holds rendering benchmarks for the component kit and the
// budgets they are checked against.
package perf

import "testing"

// Threshold defines a performance budget for a named render path.
type Threshold struct {
	// Name identifies the operation; it matches Result.Name.
	Name string

	// MaxNs is the maximum allowed nanoseconds per operation. Zero skips
	// the check.
	MaxNs int64

	// MaxAlloc is the maximum allowed bytes allocated per operation. Zero
	// skips the check.
	MaxAlloc int64
}

// Result is a benchmark result tagged with the threshold name it is
// measured against.
type Result struct {
	Name string
	testing.BenchmarkResult
}

// Violation records a threshold breach for a specific benchmark.
type Violation struct {
	Threshold Threshold
	Actual    int64

	// Field is "ns" for time or "alloc" for memory.
	Field string
}

// DefaultThresholds returns the budgets for the kit's render paths on a
// typical development machine. Every skeleton and molecule is redrawn on
// each gallery frame, so each one has to stay well under a millisecond.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Name: "skeleton_render", MaxNs: 500_000, MaxAlloc: 65536},
		{Name: "skeleton_render_8", MaxNs: 4_000_000, MaxAlloc: 524288},
		{Name: "component_progress", MaxNs: 100_000, MaxAlloc: 8192},
		{Name: "component_sparkline", MaxNs: 200_000, MaxAlloc: 16384},
		{Name: "component_card", MaxNs: 500_000, MaxAlloc: 32768},
		{Name: "molecule_scorecard", MaxNs: 1_000_000, MaxAlloc: 65536},
		{Name: "molecule_chart", MaxNs: 2_000_000, MaxAlloc: 131072},
		{Name: "molecule_table", MaxNs: 5_000_000, MaxAlloc: 262144},
		{Name: "layout_split", MaxNs: 50_000, MaxAlloc: 2048},
		{Name: "layout_grid", MaxNs: 1_000_000, MaxAlloc: 65536},
		{Name: "text_truncate", MaxNs: 50_000, MaxAlloc: 4096},
		{Name: "visible_len", MaxNs: 50_000, MaxAlloc: 2048},
		{Name: "tokens_to256", MaxNs: 200_000, MaxAlloc: 4096},
	}
}

// CheckRegression compares results against thresholds by name and returns
// every breach. Results without a threshold, and thresholds without a
// result, are ignored.
func CheckRegression(results []Result, thresholds []Threshold) []Violation {
	if len(results) == 0 || len(thresholds) == 0 {
		return nil
	}

	byName := make(map[string]Threshold, len(thresholds))
	for _, t := range thresholds {
		byName[t.Name] = t
	}

	var violations []Violation
	for _, r := range results {
		t, ok := byName[r.Name]
		if !ok {
			continue
		}
		if ns := r.NsPerOp(); t.MaxNs > 0 && ns > t.MaxNs {
			violations = append(violations, Violation{Threshold: t, Actual: ns, Field: "ns"})
		}
		if alloc := r.AllocedBytesPerOp(); t.MaxAlloc > 0 && alloc > t.MaxAlloc {
			violations = append(violations, Violation{Threshold: t, Actual: alloc, Field: "alloc"})
		}
	}
	return violations
}
