package analyze

import "sort"

// Histogram maps a per-page read count to the number of (write, page)
// pairs across the whole trace that experienced exactly that many reads
// before the page was overwritten.
type Histogram map[int]int64

// observe folds one per-page read count into the histogram.
func (h Histogram) observe(readCount int) { h[readCount]++ }

// Counts returns the distinct read-count values in ascending order.
// Sorted output keeps reports reproducible even though histogram
// construction is insertion-ordered.
func (h Histogram) Counts() []int {
	counts := make([]int, 0, len(h))
	for c := range h {
		counts = append(counts, c)
	}
	sort.Ints(counts)
	return counts
}

// TotalPages returns the sum of all frequencies, i.e. the total number
// of (write, page) pairs considered.
func (h Histogram) TotalPages() int64 {
	var total int64
	for _, freq := range h {
		total += freq
	}
	return total
}
