package kdeque

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDequeMinMatchesBatchExtremum(t *testing.T) {
	const period = 5
	stream := []float64{1, 2, 3, 4, 5, 6, 2, 9, 0, -1}

	min := NewMin[float64](period)
	max := NewMax[float64](period)

	var idx int64
	for i, x := range stream {
		if i >= period {
			min.Evict(idx - period)
			max.Evict(idx - period)
		}
		min.Push(x, idx)
		max.Push(x, idx)
		idx++

		if i >= period-1 {
			window := stream[i-period+1 : i+1]
			wantMin, wantMax := window[0], window[0]
			for _, v := range window {
				wantMin = math.Min(wantMin, v)
				wantMax = math.Max(wantMax, v)
			}
			gotMin, ok := min.Front()
			assert.True(t, ok)
			assert.Equal(t, wantMin, gotMin)

			gotMax, ok := max.Front()
			assert.True(t, ok)
			assert.Equal(t, wantMax, gotMax)
		}
	}
}

func TestDequeEmptyHasNoFront(t *testing.T) {
	d := NewMin[float64](3)
	_, ok := d.Front()
	assert.False(t, ok)
}

func TestDequeReset(t *testing.T) {
	d := NewMin[float64](3)
	d.Push(1, 0)
	d.Push(2, 1)
	d.Reset()
	assert.Equal(t, 0, d.Len())
	_, ok := d.Front()
	assert.False(t, ok)
}
