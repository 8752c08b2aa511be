package kstat

import (
	"testing"

	"github.com/mtgnorton/rollstat/kslice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 每个估计器实例只被一个逻辑生产者拥有,但不同实例之间允许在不同
// goroutine上并行运行而互不协调。用kslice.LoopConc并发驱动多个独立的
// Moments实例,验证互不干扰。
func TestMomentsInstancesRunIndependentlyAcrossGoroutines(t *testing.T) {
	const instances = 8
	streams := make([][]float64, instances)
	for i := range streams {
		s := make([]float64, 20)
		for j := range s {
			s[j] = float64(i*100 + j)
		}
		streams[i] = s
	}

	results := make([]float64, instances)
	kslice.LoopConc(streams, func(idx int, stream []float64) {
		m, err := NewMoments[float64](5)
		require.NoError(t, err)
		for _, x := range stream {
			_, err := m.Next(x)
			require.NoError(t, err)
		}
		mean, ok := m.Mean()
		require.True(t, ok)
		results[idx] = mean
	}, 4)

	for i, stream := range streams {
		window := stream[len(stream)-5:]
		var sum float64
		for _, x := range window {
			sum += x
		}
		assert.InDelta(t, sum/5, results[i], 1e-9)
	}
}
