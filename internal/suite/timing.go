package suite

import (
	"math"
	"slices"
	"time"
)

// Timing summarizes how long the cases of one run took.
type Timing struct {
	Total  time.Duration
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	Median time.Duration
	P95    time.Duration
	Cases  int
}

func ComputeTiming(durations []time.Duration) Timing {
	if len(durations) == 0 {
		return Timing{}
	}

	sorted := slices.Clone(durations)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	return Timing{
		Total:  total,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   total / time.Duration(len(sorted)),
		Median: percentile(sorted, 50),
		P95:    percentile(sorted, 95),
		Cases:  len(sorted),
	}
}

// percentile interpolates linearly between the two closest ranks.
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := float64(p) / 100.0 * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return sorted[lower] + time.Duration(math.Round(weight*float64(sorted[upper]-sorted[lower])))
}
