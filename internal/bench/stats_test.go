package bench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcIntStats(t *testing.T) {
	s := CalcIntStats([]int{3, 1, 4, 2})
	assert.Equal(t, 4, s.N)
	assert.Equal(t, 1, s.Best)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), s.Std, 1e-12)

	one := CalcIntStats([]int{7})
	assert.Equal(t, IntStats{N: 1, Best: 7, Mean: 7}, one)

	assert.Equal(t, IntStats{}, CalcIntStats(nil))
}

func TestCalcFloatStats(t *testing.T) {
	s := CalcFloatStats([]float64{2, 2, 2})
	assert.Equal(t, 2.0, s.Best)
	assert.Equal(t, 2.0, s.Mean)
	assert.Zero(t, s.Std)

	assert.Equal(t, FloatStats{}, CalcFloatStats([]float64{}))
}
