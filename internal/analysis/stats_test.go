package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile(t *testing.T) {
	values := []float64{4, 1, 3, 2}

	// Linear interpolation between order statistics.
	assert.InDelta(t, 1.75, quantile(values, 0.25), 1e-9)
	assert.InDelta(t, 2.5, quantile(values, 0.5), 1e-9)
	assert.InDelta(t, 3.25, quantile(values, 0.75), 1e-9)
	assert.Equal(t, 1.0, quantile(values, 0))
	assert.Equal(t, 4.0, quantile(values, 1))

	assert.Equal(t, 7.0, quantile([]float64{7}, 0.25))
	assert.True(t, math.IsNaN(quantile(nil, 0.5)))
}

func TestSampleStd(t *testing.T) {
	assert.InDelta(t, 1.0, sampleStd([]float64{1, 2, 3}), 1e-9)
	assert.True(t, math.IsNaN(sampleStd([]float64{5})))
	assert.True(t, math.IsNaN(sampleStd(nil)))
}

func TestPopulationStd(t *testing.T) {
	assert.InDelta(t, math.Sqrt(2.0/3.0), populationStd([]float64{1, 2, 3}), 1e-9)
	assert.Equal(t, 0.0, populationStd([]float64{4, 4, 4}))
}

func TestMeanAndMinMax(t *testing.T) {
	assert.Equal(t, 2.0, mean([]float64{1, 2, 3}))
	assert.True(t, math.IsNaN(mean(nil)))

	lo, hi := minMax([]float64{3, 1, 2})
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 3.0, hi)
}
