package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLengthStatsEmpty(t *testing.T) {
	stats := ComputeLengthStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.Mean)
}

func TestComputeLengthStatsBasics(t *testing.T) {
	stats := ComputeLengthStats([]int{4, 8, 8, 10})

	assert.Equal(t, 4, stats.Total)
	assert.InDelta(t, 7.5, stats.Mean, 1e-9)
	assert.Equal(t, 8, stats.Mode)
	assert.Equal(t, 2, stats.ModeCount)
	assert.Equal(t, 3, stats.AtLeastMin)
	assert.Greater(t, stats.StdDev, 0.0)
}

func TestComputeLengthStatsModeTieIsDeterministic(t *testing.T) {
	// 5 and 9 both appear twice; the smaller length wins.
	stats := ComputeLengthStats([]int{9, 5, 9, 5, 12})
	assert.Equal(t, 5, stats.Mode)
	assert.Equal(t, 2, stats.ModeCount)
}

func TestComputeLengthStatsOutliers(t *testing.T) {
	lengths := []int{8, 8, 9, 9, 10, 10, 11, 11, 120}
	stats := ComputeLengthStats(lengths)

	assert.Equal(t, 1, stats.Outliers)
	assert.GreaterOrEqual(t, stats.LowerBound, 0.0)
	assert.Less(t, stats.UpperBound, 120.0)
}

func TestComputeLengthStatsSingleValue(t *testing.T) {
	stats := ComputeLengthStats([]int{8})

	assert.Equal(t, 1, stats.Total)
	assert.InDelta(t, 8.0, stats.Mean, 1e-9)
	assert.InDelta(t, 8.0, stats.Median, 1e-9)
	assert.Equal(t, 0.0, stats.StdDev)
	assert.Equal(t, 0, stats.Outliers)
}
