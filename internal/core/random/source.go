package random

import "math/rand"

// Source is the random source consumed by simulations.
type Source interface {
	Float64() float64
	Uniform(lo, hi float64) float64
	IntRange(lo, hi int) int
	Intn(n int) int
	Weighted(weights []float64) int
}

// Rand is a Source backed by math/rand.
type Rand struct {
	rng *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// Uniform returns a value in [lo, hi).
func (r *Rand) Uniform(lo, hi float64) float64 {
	return Scale(r.rng.Float64(), lo, hi)
}

// IntRange returns an integer in [lo, hi]. It panics if hi < lo.
func (r *Rand) IntRange(lo, hi int) int {
	return ScaleInt(r.rng.Float64(), lo, hi)
}

// Intn returns an integer in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	return r.rng.Intn(n)
}

// Weighted returns an index into weights. It panics if no weight is positive.
func (r *Rand) Weighted(weights []float64) int {
	return PickWeighted(r.rng.Float64(), weights)
}

// Scale maps a draw u in [0, 1) onto [lo, hi).
func Scale(u, lo, hi float64) float64 {
	return lo + (hi-lo)*u
}

// ScaleInt maps a draw u in [0, 1) onto the inclusive range [lo, hi].
func ScaleInt(u float64, lo, hi int) int {
	if hi < lo {
		panic("random: invalid integer range")
	}
	n := hi - lo + 1
	offset := int(u * float64(n))
	if offset >= n {
		offset = n - 1
	}
	return lo + offset
}

// PickWeighted maps a draw u in [0, 1) onto an index of weights. Zero and
// negative weights are never selected.
func PickWeighted(u float64, weights []float64) int {
	total := 0.0
	last := -1
	for i, w := range weights {
		if w > 0 {
			total += w
			last = i
		}
	}
	if last < 0 {
		panic("random: weights must contain a positive value")
	}

	remaining := u * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		remaining -= w
		if remaining < 0 {
			return i
		}
	}
	// Float drift can leave a sliver past the last bucket.
	return last
}

// Choice returns a uniformly chosen element of items. It panics on an empty
// slice.
func Choice[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// WeightedChoice returns an element of items chosen with the matching weight.
// It panics if the slices differ in length.
func WeightedChoice[T any](src Source, items []T, weights []float64) T {
	if len(items) != len(weights) {
		panic("random: items and weights differ in length")
	}
	return items[src.Weighted(weights)]
}
