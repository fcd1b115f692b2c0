package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkIsDeterministic(t *testing.T) {
	a := Walk(42, 60, 100, 5)
	b := Walk(42, 60, 100, 5)

	require.Len(t, a, 60)
	assert.Equal(t, a, b)
}

func TestWalkSeedsDiverge(t *testing.T) {
	a := Walk(1, 60, 100, 5)
	b := Walk(2, 60, 100, 5)

	assert.NotEqual(t, a, b)
}

func TestWalkNeverGoesNegative(t *testing.T) {
	for _, v := range Walk(7, 200, 1, 50) {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestPushDropsOldestBeyondCapacity(t *testing.T) {
	s := &Series{Points: []float64{1, 2, 3}}

	s.Push(4, 3)

	assert.Equal(t, []float64{2, 3, 4}, s.Points)
	assert.Equal(t, 4.0, s.Last())
}

func TestPushWithoutCapacityGrows(t *testing.T) {
	s := &Series{}
	for i := 0; i < 10; i++ {
		s.Push(float64(i), 0)
	}
	assert.Len(t, s.Points, 10)
}

func TestLastOnEmptySeries(t *testing.T) {
	s := &Series{}
	assert.Zero(t, s.Last())
}
