package kcollection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingFillsThenEvicts(t *testing.T) {
	r := NewRing[float64](3)
	assert.Equal(t, 3, r.Period())

	_, _, ok, seq := r.Push(1)
	assert.False(t, ok)
	assert.Equal(t, int64(0), seq)
	assert.Equal(t, 1, r.Len())
	assert.False(t, r.Filled())

	r.Push(2)
	r.Push(3)
	assert.True(t, r.Filled())
	assert.Equal(t, 3, r.Len())

	evicted, evictedSeq, ok, seq := r.Push(4)
	assert.True(t, ok)
	assert.Equal(t, 1.0, evicted)
	assert.Equal(t, int64(0), evictedSeq)
	assert.Equal(t, int64(3), seq)
	assert.Equal(t, 3, r.Len())
}

func TestRingEntriesOrderedOldestToNewest(t *testing.T) {
	r := NewRing[float64](3)
	r.Push(1)
	r.Push(2)
	r.Push(3)
	r.Push(4) // evicts 1

	entries := r.Entries()
	assert.Len(t, entries, 3)
	assert.Equal(t, []float64{2, 3, 4}, []float64{entries[0].Value, entries[1].Value, entries[2].Value})
	assert.Equal(t, []int64{1, 2, 3}, []int64{entries[0].Seq, entries[1].Seq, entries[2].Seq})
}

func TestRingReset(t *testing.T) {
	r := NewRing[float64](2)
	r.Push(1)
	r.Push(2)
	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Filled())
	_, _, ok, seq := r.Push(9)
	assert.False(t, ok)
	assert.Equal(t, int64(0), seq)
}
