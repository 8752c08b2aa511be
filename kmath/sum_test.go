package kmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumAddRemove(t *testing.T) {
	var s Sum[float64]
	s.Add(1)
	s.Add(2)
	s.Add(3)
	assert.InDelta(t, 6.0, s.Value(), 1e-12)

	s.Remove(1)
	assert.InDelta(t, 5.0, s.Value(), 1e-12)
}

func TestSumCompensatesCatastrophicCancellation(t *testing.T) {
	// A large outlier sandwiched between small values should not swallow them.
	var s Sum[float64]
	values := []float64{1, 1, 1, 1, 1, 1e16, 1, 1, 1, 1, 1}
	for _, v := range values {
		s.Add(v)
	}
	want := 1e16 + 10
	assert.InDelta(t, want, s.Value(), want*1e-15)
}

func TestSumRoundTripMatchesBatchSum(t *testing.T) {
	values := []float64{3.1, -2.4, 100.25, -99.9, 0.0001}
	var s Sum[float64]
	naive := 0.0
	for _, v := range values {
		s.Add(v)
		naive += v
	}
	assert.InDelta(t, naive, s.Value(), 1e-9)

	// remove everything back to zero
	for _, v := range values {
		s.Remove(v)
	}
	assert.InDelta(t, 0.0, s.Value(), 1e-9)
}

func TestSumReset(t *testing.T) {
	var s Sum[float64]
	s.Add(42)
	s.Reset()
	assert.Equal(t, 0.0, s.Value())
}
