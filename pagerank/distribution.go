package pagerank

import "math"

// Distribution maps page IDs to non-negative probability mass.
// A well-formed Distribution sums to 1.0 within floating-point tolerance.
type Distribution map[string]float64

// Sum returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
	var total float64
	for _, p := range d {
		total += p
	}

	return total
}

// L1 returns the L1 (total variation × 2) distance between d and other:
// Σ |d[p] − other[p]| over the union of their keys.
func (d Distribution) L1(other Distribution) float64 {
	var dist float64
	for p, v := range d {
		dist += math.Abs(v - other[p])
	}
	for p, v := range other {
		if _, ok := d[p]; !ok {
			dist += math.Abs(v)
		}
	}

	return dist
}

// clone returns an independent copy of the distribution.
func (d Distribution) clone() Distribution {
	cp := make(Distribution, len(d))
	for p, v := range d {
		cp[p] = v
	}

	return cp
}
