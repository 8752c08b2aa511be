package kstat

import (
	"sync"

	"github.com/mtgnorton/rollstat/kcollection"
	"github.com/mtgnorton/rollstat/kmode"
)

// Mode 维护滑动窗口的众数,依托kmode的频次桶多重集合。
//
// 注意事项:
//   - 平局时取频次最高的值中最小的一个,沿用kmode.Tracker的tie-break约定
//   - Mode在部分窗口下也有定义(只要窗口非空),与Min/Max一致
type Mode[T Float] struct {
	mu      sync.Mutex
	ring    *kcollection.Ring[T]
	tracker *kmode.Tracker[T]
	ins     *instrumentation
}

// NewMode 创建一个窗口大小为period的滚动众数估计器。period必须>=1。
func NewMode[T Float](period int) (*Mode[T], error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	return &Mode[T]{
		ring:    kcollection.NewRing[T](period),
		tracker: kmode.New[T](),
		ins:     newInstrumentation(),
	}, nil
}

// Period 返回窗口大小W。
func (md *Mode[T]) Period() int { return md.ring.Period() }

// Next 推入一个新样本,更新频次桶;若窗口已满,淘汰最旧样本的频次。
func (md *Mode[T]) Next(x T) (*Mode[T], error) {
	if err := rejectNonFinite(x); err != nil {
		md.mu.Lock()
		md.ins.reject()
		md.mu.Unlock()
		return md, err
	}
	md.mu.Lock()
	defer md.mu.Unlock()
	evicted, _, evictedOK, _ := md.ring.Push(x)
	if evictedOK {
		md.tracker.Delete(evicted)
	}
	md.tracker.Insert(x)
	md.ins.accept()
	return md, nil
}

// Value 返回当前窗口的众数及其频次。窗口为空时返回(0, 0, false)。
func (md *Mode[T]) Value() (value T, freq int, ok bool) {
	md.mu.Lock()
	defer md.mu.Unlock()
	return md.tracker.Mode()
}

// Snapshot 返回按频次升序排列的(频次,值集合)诊断快照,不在热路径上调用。
func (md *Mode[T]) Snapshot() []kmode.FrequencyGroup[T] {
	md.mu.Lock()
	defer md.mu.Unlock()
	return md.tracker.Snapshot()
}

// Recompute 丢弃频次桶状态,按环形缓冲区当前内容重新构建。
func (md *Mode[T]) Recompute() {
	md.mu.Lock()
	defer md.mu.Unlock()
	md.ins.recompute(func() {
		md.tracker.Reset()
		for _, e := range md.ring.Entries() {
			md.tracker.Insert(e.Value)
		}
	})
}

// Diagnostics 返回最近一次Recompute的耗时诊断信息。
func (md *Mode[T]) Diagnostics() string {
	md.mu.Lock()
	defer md.mu.Unlock()
	return md.ins.Diagnostics()
}
