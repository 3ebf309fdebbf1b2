package pricing

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Percentile returns the p-th percentile (p in [0,100]) of values using
// linear interpolation on the sorted data. It returns an error for an empty
// input or a p outside the range.
func Percentile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("percentile of empty slice")
	}
	if p < 0 || p > 100 {
		return 0, fmt.Errorf("percentile %v out of range [0,100]", p)
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo], nil
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac, nil
}

// TimeDecayWeight returns 0.5^(age/half_life) for a sample taken at ts.
// Samples from the future weigh 1.
func TimeDecayWeight(ts, now time.Time, halfLife time.Duration) float64 {
	age := now.Sub(ts)
	if age <= 0 || halfLife <= 0 {
		return 1
	}
	return math.Pow(0.5, float64(age)/float64(halfLife))
}

// WeightedPercentile returns the p-th percentile of values under the given
// weights: pairs are sorted by value and the result is the first value whose
// cumulative weight fraction reaches p/100.
func WeightedPercentile(values, weights []float64, p float64) (float64, error) {
	if len(values) != len(weights) {
		return 0, fmt.Errorf("values and weights length mismatch: %d != %d", len(values), len(weights))
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("weighted percentile of empty slice")
	}
	if p < 0 || p > 100 {
		return 0, fmt.Errorf("percentile %v out of range [0,100]", p)
	}

	type pair struct{ v, w float64 }
	pairs := make([]pair, len(values))
	total := 0.0
	for i := range values {
		pairs[i] = pair{values[i], weights[i]}
		total += weights[i]
	}
	if total <= 0 {
		return 0, fmt.Errorf("total weight must be positive")
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].v < pairs[j].v })

	target := p / 100 * total
	cum := 0.0
	for _, pr := range pairs {
		cum += pr.w
		if cum >= target {
			return pr.v, nil
		}
	}
	return pairs[len(pairs)-1].v, nil
}

// Mean returns the arithmetic mean, ignoring nothing; callers filter nulls.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// IQRBounds returns the [Q1 − 1.5·IQR, Q3 + 1.5·IQR] outlier bounds.
func IQRBounds(values []float64) (lower, upper float64, err error) {
	q1, err := Percentile(values, 25)
	if err != nil {
		return 0, 0, err
	}
	q3, err := Percentile(values, 75)
	if err != nil {
		return 0, 0, err
	}
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr, nil
}
