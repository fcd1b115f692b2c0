// Package dataset generates and holds the sample series the dashboard
// renders. Series are synthetic seeded random walks, so the same config
// always reproduces the same picture.
package dataset

import (
	"math/rand"

	"github.com/google/uuid"
)

// Series is one named stream of samples.
type Series struct {
	ID     uuid.UUID
	Name   string
	Unit   string
	Points []float64
}

// Push appends a sample, dropping the oldest ones beyond capacity.
func (s *Series) Push(v float64, capacity int) {
	s.Points = append(s.Points, v)
	if capacity > 0 && len(s.Points) > capacity {
		s.Points = s.Points[len(s.Points)-capacity:]
	}
}

// Last returns the most recent sample, or zero when the series is empty.
func (s *Series) Last() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1]
}

// NextPoint advances a walk by one sample, clamped at zero.
func NextPoint(rng *rand.Rand, last, step float64) float64 {
	v := last + (rng.Float64()*2-1)*step
	if v < 0 {
		return 0
	}
	return v
}

// Walk generates n samples of a seeded random walk starting near start.
func Walk(seed int64, n int, start, step float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, 0, n)
	v := start
	for i := 0; i < n; i++ {
		v = NextPoint(rng, v, step)
		out = append(out, v)
	}
	return out
}
