package kstat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZScoreMatchesBatchFormula(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	z, err := NewZScore[float64](len(xs))
	require.NoError(t, err)
	for _, x := range xs {
		_, err := z.Next(x)
		require.NoError(t, err)
	}
	wantMean, wantVar, _, _ := batchMoments(xs, false)
	wantStd := math.Sqrt(wantVar)
	want := (xs[len(xs)-1] - wantMean) / wantStd

	got, ok := z.Value()
	require.True(t, ok)
	assert.InDelta(t, want, got, 1e-9)
}

func TestZScoreUndefinedWhileFilling(t *testing.T) {
	z, err := NewZScore[float64](4)
	require.NoError(t, err)
	_, err = z.Next(1)
	require.NoError(t, err)
	_, ok := z.Value()
	assert.False(t, ok)
}

func TestDrawdownTracksPeakRelativeDrop(t *testing.T) {
	d, err := NewDrawdown[float64](5)
	require.NoError(t, err)
	stream := []float64{100, 110, 90, 95, 80}
	for _, x := range stream {
		_, err := d.Next(x)
		require.NoError(t, err)
	}
	dd, ok := d.Value()
	require.True(t, ok)
	assert.InDelta(t, (80.0-110.0)/110.0, dd, 1e-9)
}

func TestDrawdownMaxDrawdownOverWindow(t *testing.T) {
	d, err := NewDrawdown[float64](5)
	require.NoError(t, err)
	stream := []float64{100, 110, 90, 95, 80}
	for _, x := range stream {
		_, err := d.Next(x)
		require.NoError(t, err)
	}
	maxDD, ok := d.MaxDrawdown()
	require.True(t, ok)
	assert.InDelta(t, (80.0-110.0)/110.0, maxDD, 1e-9)
}

func TestDrawdownUndefinedWhileFilling(t *testing.T) {
	d, err := NewDrawdown[float64](5)
	require.NoError(t, err)
	_, err = d.Next(1)
	require.NoError(t, err)
	_, ok := d.MaxDrawdown()
	assert.False(t, ok)
}

func batchLinearRegression(ys []float64) (slope, intercept float64) {
	n := float64(len(ys))
	var sumI, sumI2, sumY, sumIY float64
	for i, y := range ys {
		fi := float64(i)
		sumI += fi
		sumI2 += fi * fi
		sumY += y
		sumIY += fi * y
	}
	meanI := sumI / n
	meanY := sumY / n
	sxy := sumIY - n*meanI*meanY
	sxx := sumI2 - n*meanI*meanI
	slope = sxy / sxx
	intercept = meanY - slope*meanI
	return
}

func TestLinearRegressionMatchesBatchOLS(t *testing.T) {
	ys := []float64{1, 2, 4, 4, 5, 7, 8}
	l, err := NewLinearRegression[float64](len(ys))
	require.NoError(t, err)
	for _, y := range ys {
		_, err := l.Next(y)
		require.NoError(t, err)
	}
	wantSlope, wantIntercept := batchLinearRegression(ys)

	slope, ok := l.Slope()
	require.True(t, ok)
	assert.InDelta(t, wantSlope, slope, 1e-9)

	intercept, ok := l.Intercept()
	require.True(t, ok)
	assert.InDelta(t, wantIntercept, intercept, 1e-9)

	angle, ok := l.Angle()
	require.True(t, ok)
	assert.InDelta(t, math.Atan(wantSlope), angle, 1e-9)
}

func TestLinearRegressionSlidesAndMatchesBatch(t *testing.T) {
	l, err := NewLinearRegression[float64](4)
	require.NoError(t, err)
	stream := []float64{1, 2, 3, 10, 20, 30, 5}
	for i, y := range stream {
		_, err := l.Next(y)
		require.NoError(t, err)
		if i < 3 {
			continue
		}
		window := stream[i-3 : i+1]
		wantSlope, _ := batchLinearRegression(window)
		slope, ok := l.Slope()
		require.True(t, ok)
		assert.InDelta(t, wantSlope, slope, 1e-6)
	}
}

func TestLinearRegressionUndefinedWhileFilling(t *testing.T) {
	l, err := NewLinearRegression[float64](3)
	require.NoError(t, err)
	_, err = l.Next(1)
	require.NoError(t, err)
	_, ok := l.Slope()
	assert.False(t, ok)
}

func TestMomentsSharpeRatio(t *testing.T) {
	xs := []float64{0.01, 0.02, -0.01, 0.03, 0.0, 0.015}
	m, err := NewMoments[float64](len(xs), WithAnnualization[float64](math.Sqrt(252)))
	require.NoError(t, err)
	for _, x := range xs {
		_, err := m.Next(x)
		require.NoError(t, err)
	}
	mean, _ := m.Mean()
	std, _ := m.StdDev()
	want := (mean / std) * math.Sqrt(252)

	got, ok := m.Sharpe()
	require.True(t, ok)
	assert.InDelta(t, want, got, 1e-9)
}

func TestQuantileRankOfCurrent(t *testing.T) {
	q, err := NewQuantile[float64](5)
	require.NoError(t, err)
	xs := []float64{5, 3, 9, 1, 7}
	for _, x := range xs {
		_, err := q.Next(x)
		require.NoError(t, err)
	}
	// window sorted: 1,3,5,7,9 -> last pushed 7 has rank 3 (strictly less: 1,3,5)
	rank, ok := q.RankOfCurrent()
	require.True(t, ok)
	assert.Equal(t, 3, rank)

	pct, ok := q.PercentileOfCurrent()
	require.True(t, ok)
	assert.InDelta(t, 3.0/4.0, pct, 1e-9)
}
