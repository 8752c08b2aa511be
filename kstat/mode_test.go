package kstat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeMajorityValue(t *testing.T) {
	md, err := NewMode[float64](6)
	require.NoError(t, err)
	for _, x := range []float64{1, 2, 2, 3, 2, 4} {
		_, err := md.Next(x)
		require.NoError(t, err)
	}
	value, freq, ok := md.Value()
	require.True(t, ok)
	assert.Equal(t, 2.0, value)
	assert.Equal(t, 3, freq)
}

func TestModeTieBreaksSmallestValue(t *testing.T) {
	md, err := NewMode[float64](4)
	require.NoError(t, err)
	for _, x := range []float64{5, 5, 1, 1} {
		_, err := md.Next(x)
		require.NoError(t, err)
	}
	value, freq, ok := md.Value()
	require.True(t, ok)
	assert.Equal(t, 1.0, value)
	assert.Equal(t, 2, freq)
}

func TestModeSlidesWithWindow(t *testing.T) {
	md, err := NewMode[float64](3)
	require.NoError(t, err)
	for _, x := range []float64{1, 1, 1, 2, 2} {
		_, err := md.Next(x)
		require.NoError(t, err)
	}
	// window is now [1, 2, 2]
	value, freq, ok := md.Value()
	require.True(t, ok)
	assert.Equal(t, 2.0, value)
	assert.Equal(t, 2, freq)
}

func TestModeEmptyHasNoValue(t *testing.T) {
	md, err := NewMode[float64](3)
	require.NoError(t, err)
	_, _, ok := md.Value()
	assert.False(t, ok)
}

func TestModeRejectsNonFinite(t *testing.T) {
	md, err := NewMode[float64](3)
	require.NoError(t, err)
	_, err = md.Next(math.Inf(-1))
	assert.ErrorIs(t, err, ErrNonFinite)
}
