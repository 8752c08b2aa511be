package kstat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtremaTracksRollingMinMax(t *testing.T) {
	e, err := NewExtrema[float64](3)
	require.NoError(t, err)

	stream := []float64{5, 1, 4, 2, 8, 0}
	wantMin := []float64{5, 1, 1, 1, 2, 0}
	wantMax := []float64{5, 5, 5, 4, 8, 8}

	for i, x := range stream {
		_, err := e.Next(x)
		require.NoError(t, err)

		min, ok := e.Min()
		require.True(t, ok)
		assert.Equal(t, wantMin[i], min)

		max, ok := e.Max()
		require.True(t, ok)
		assert.Equal(t, wantMax[i], max)
	}
}

func TestExtremaEmptyHasNoValue(t *testing.T) {
	e, err := NewExtrema[float64](3)
	require.NoError(t, err)
	_, ok := e.Min()
	assert.False(t, ok)
	_, ok = e.Max()
	assert.False(t, ok)
}

func TestExtremaRejectsNonFinite(t *testing.T) {
	e, err := NewExtrema[float64](3)
	require.NoError(t, err)
	_, err = e.Next(math.NaN())
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestExtremaRecomputeMatchesIncremental(t *testing.T) {
	e, err := NewExtrema[float64](4)
	require.NoError(t, err)
	for _, x := range []float64{3, 1, 4, 1, 5, 9, 2} {
		_, err := e.Next(x)
		require.NoError(t, err)
	}
	beforeMin, _ := e.Min()
	beforeMax, _ := e.Max()
	e.Recompute()
	afterMin, ok := e.Min()
	require.True(t, ok)
	afterMax, ok := e.Max()
	require.True(t, ok)
	assert.Equal(t, beforeMin, afterMin)
	assert.Equal(t, beforeMax, afterMax)
}
