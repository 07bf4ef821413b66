// Package layout provides the page-level pieces of the pulse-ui kit: a
// proportional width splitter, a column grid, a page shell and a tab
// navigation bar.
//
// Split is the primitive the others build on. It divides a run of cells
// into weighted parts:
//
//	Split(80, 2, 1, 1, 1)  // three equal columns with 2-cell gutters
//	Split(80, 1, 2, 1)     // a 2:1 sidebar layout
//
// Remainder cells that do not divide evenly are handed out one each from
// the left, so the result always sums to exactly total minus the gaps.
package layout

// Split divides total cells into len(weights) parts separated by gap
// cells. Non-positive weights count as 1. It returns nil when no weights
// are given; parts are zero when the gaps alone exceed total.
func Split(total, gap int, weights ...int) []int {
	n := len(weights)
	if n == 0 {
		return nil
	}
	if cached := splits.get(total, gap, weights); cached != nil {
		return cached
	}

	if gap < 0 {
		gap = 0
	}
	available := total - gap*(n-1)
	parts := make([]int, n)
	if available <= 0 {
		splits.put(total, gap, weights, parts)
		return parts
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += normWeight(w)
	}

	used := 0
	for i, w := range weights {
		parts[i] = available * normWeight(w) / totalWeight
		used += parts[i]
	}
	for i := 0; used < available; i = (i + 1) % n {
		parts[i]++
		used++
	}

	splits.put(total, gap, weights, parts)
	return parts
}

// Even splits total into n equal parts.
func Even(total, gap, n int) []int {
	if n <= 0 {
		return nil
	}
	weights := make([]int, n)
	for i := range weights {
		weights[i] = 1
	}
	return Split(total, gap, weights...)
}

// Offsets returns the starting column of each part produced by Split.
func Offsets(parts []int, gap int) []int {
	out := make([]int, len(parts))
	pos := 0
	for i, p := range parts {
		out[i] = pos
		pos += p + gap
	}
	return out
}

func normWeight(w int) int {
	if w <= 0 {
		return 1
	}
	return w
}
