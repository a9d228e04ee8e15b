// Package randfake provides a scripted random.Source for deterministic tests.
package randfake

import "github.com/louisbranch/grandprix/internal/core/random"

// Sequence replays scripted draws in order. Every Source call consumes one
// draw and maps it the same way random.Rand does; once the script runs out
// the fallback draw is returned forever.
type Sequence struct {
	values   []float64
	fallback float64
	draws    int
}

var _ random.Source = (*Sequence)(nil)

// New returns a Sequence that replays values and then fallback.
func New(fallback float64, values ...float64) *Sequence {
	return &Sequence{values: append([]float64(nil), values...), fallback: fallback}
}

// Draws reports how many draws have been consumed.
func (s *Sequence) Draws() int {
	return s.draws
}

// Remaining reports how many scripted draws are still queued.
func (s *Sequence) Remaining() int {
	if s.draws >= len(s.values) {
		return 0
	}
	return len(s.values) - s.draws
}

func (s *Sequence) next() float64 {
	defer func() { s.draws++ }()
	if s.draws < len(s.values) {
		return s.values[s.draws]
	}
	return s.fallback
}

// Float64 returns the next draw.
func (s *Sequence) Float64() float64 {
	return s.next()
}

// Uniform scales the next draw onto [lo, hi).
func (s *Sequence) Uniform(lo, hi float64) float64 {
	return random.Scale(s.next(), lo, hi)
}

// IntRange scales the next draw onto [lo, hi].
func (s *Sequence) IntRange(lo, hi int) int {
	return random.ScaleInt(s.next(), lo, hi)
}

// Intn scales the next draw onto [0, n).
func (s *Sequence) Intn(n int) int {
	return random.ScaleInt(s.next(), 0, n-1)
}

// Weighted maps the next draw onto weights.
func (s *Sequence) Weighted(weights []float64) int {
	return random.PickWeighted(s.next(), weights)
}

// Repeat returns n copies of v, for scripting runs of identical draws.
func Repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Concat joins scripted runs into one slice.
func Concat(runs ...[]float64) []float64 {
	var out []float64
	for _, run := range runs {
		out = append(out, run...)
	}
	return out
}
