package kstat

import (
	"sync"

	"github.com/mtgnorton/rollstat/kcollection"
	"github.com/mtgnorton/rollstat/kdeque"
)

// Extrema 维护滑动窗口的最小值/最大值,依托两条单调双端队列。
//
// 注意事项:
//   - 与Moments/Quantile不同,Min/Max在部分窗口(填充阶段)下也是良定义的,
//     只要队列非空就返回值
type Extrema[T Float] struct {
	mu   sync.Mutex
	ring *kcollection.Ring[T]
	min  *kdeque.Deque[T]
	max  *kdeque.Deque[T]
	ins  *instrumentation
}

// NewExtrema 创建一个窗口大小为period的滚动最值估计器。period必须>=1。
func NewExtrema[T Float](period int) (*Extrema[T], error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	return &Extrema[T]{
		ring: kcollection.NewRing[T](period),
		min:  kdeque.NewMin[T](period),
		max:  kdeque.NewMax[T](period),
		ins:  newInstrumentation(),
	}, nil
}

// Period 返回窗口大小W。
func (e *Extrema[T]) Period() int { return e.ring.Period() }

// Next 推入一个新样本,更新min/max双端队列;若窗口已满,淘汰最旧样本。
func (e *Extrema[T]) Next(x T) (*Extrema[T], error) {
	if err := rejectNonFinite(x); err != nil {
		e.mu.Lock()
		e.ins.reject()
		e.mu.Unlock()
		return e, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	_, evictedSeq, evictedOK, seq := e.ring.Push(x)
	if evictedOK {
		e.min.Evict(evictedSeq)
		e.max.Evict(evictedSeq)
	}
	e.min.Push(x, seq)
	e.max.Push(x, seq)
	e.ins.accept()
	return e, nil
}

// Min 返回当前窗口的最小值。窗口为空时返回(0, false)。
func (e *Extrema[T]) Min() (T, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.min.Front()
}

// Max 返回当前窗口的最大值。窗口为空时返回(0, false)。
func (e *Extrema[T]) Max() (T, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.max.Front()
}

// Entries 以插入顺序返回当前窗口内容,供Drawdown等派生估计器按时间
// 顺序扫描窗口而不必维护自己的一份副本环形缓冲区。
func (e *Extrema[T]) Entries() []kcollection.Entry[T] {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ring.Entries()
}

// Recompute 丢弃双端队列状态,按环形缓冲区当前内容重新构建。
func (e *Extrema[T]) Recompute() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ins.recompute(func() {
		e.min.Reset()
		e.max.Reset()
		for _, entry := range e.ring.Entries() {
			e.min.Push(entry.Value, entry.Seq)
			e.max.Push(entry.Value, entry.Seq)
		}
	})
}

// Diagnostics 返回最近一次Recompute的耗时诊断信息。
func (e *Extrema[T]) Diagnostics() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ins.Diagnostics()
}
