package kmode

import (
	"github.com/mtgnorton/rollstat/kmap"
	"github.com/mtgnorton/rollstat/kmath"
)

// rangeBucketsInOrder 按频次升序遍历bucketOf,复用kmap.RangeInOrder以获得
// 确定性的遍历顺序(仅用于Snapshot诊断输出,不在热路径上)。
func rangeBucketsInOrder[T kmath.Number](buckets map[int]*bucketSet[T], fn func(freq int, b *bucketSet[T])) {
	kmap.RangeInOrder(buckets, func(b *bucketSet[T], freq int) {
		fn(freq, b)
	})
}
