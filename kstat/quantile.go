package kstat

import (
	"math"
	"sync"

	"github.com/mtgnorton/rollstat/kcollection"
	"github.com/mtgnorton/rollstat/kmath"
	"github.com/mtgnorton/rollstat/korder"
)

// Quantile 维护滑动窗口的中位数/任意分位数/IQR/MAD,依托两棵增广红黑树:
// values按样本值排序,devs按"相对于当前窗口中位数的绝对偏差"排序。
//
// MAD采用精确语义: 每次更新后,devs都相对*当前*窗口的中位数从头重建
// (O(W log W)),而不是保留早于本次淘汰/插入的历史中位数下计算出的偏差。
// 这保证了MAD与Recompute()重放同一窗口得到的结果完全一致。
//
// 注意事项:
//   - 中位数/分位数/IQR/MAD均要求窗口已满
type Quantile[T Float] struct {
	mu      sync.Mutex
	ring    *kcollection.Ring[T]
	values  *korder.Tree[T]
	devs    *korder.Tree[float64]
	lastVal T
	lastSeq uint64
	cfg     *config[T]
	snap    []QuantileLevel // WithQuantiles预注册的分位点对应的复用结果缓冲区
	ins     *instrumentation
}

// QuantileLevel 是Snapshot中一个预注册分位点及其当前取值。
type QuantileLevel struct {
	P     float64
	Value float64
}

// NewQuantile 创建一个窗口大小为period的滚动分位数估计器。period必须>=1。
func NewQuantile[T Float](period int, opts ...Option[T]) (*Quantile[T], error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	cfg := newConfig[T]()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Quantile[T]{
		ring:   kcollection.NewRing[T](period),
		values: korder.New[T](),
		devs:   korder.New[float64](),
		cfg:    cfg,
		snap:   make([]QuantileLevel, len(cfg.quantiles)),
		ins:    newInstrumentation(),
	}, nil
}

// Period 返回窗口大小W。
func (q *Quantile[T]) Period() int { return q.ring.Period() }

// Next 推入一个新样本,更新values树并以当前窗口的中位数重建devs树。
func (q *Quantile[T]) Next(x T) (*Quantile[T], error) {
	if err := rejectNonFinite(x); err != nil {
		q.mu.Lock()
		q.ins.reject()
		q.mu.Unlock()
		return q, err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	evicted, evictedSeq, evictedOK, seq := q.ring.Push(x)
	if evictedOK {
		q.values.Delete(evicted, uint64(evictedSeq))
	}
	q.values.Insert(x, uint64(seq))
	q.rebuildDevsLocked()
	q.lastVal, q.lastSeq = x, uint64(seq)
	q.ins.accept()
	return q, nil
}

// rebuildDevsLocked 以values树当前的中位数为基准,对窗口内每个样本重新计算
// 绝对偏差并重建devs树。调用方必须已持有q.mu。
func (q *Quantile[T]) rebuildDevsLocked() {
	q.devs = korder.New[float64]()
	median, ok := medianOf(q.values)
	if !ok {
		return
	}
	for _, e := range q.ring.Entries() {
		dev := math.Abs(float64(e.Value) - median)
		q.devs.Insert(dev, uint64(e.Seq))
	}
}

// medianOf 返回树t当前的中位数: 元素数为奇数时取中间元素,
// 为偶数时取中间两个元素的平均值。
func medianOf[T kmath.Number](t *korder.Tree[T]) (float64, bool) {
	n := t.Len()
	if n == 0 {
		return 0, false
	}
	if n%2 == 1 {
		v, _ := t.Select(n / 2)
		return float64(v), true
	}
	a, _ := t.Select(n/2 - 1)
	b, _ := t.Select(n / 2)
	return (float64(a) + float64(b)) / 2, true
}

func (q *Quantile[T]) ready() bool { return q.ring.Filled() }

// Median 返回当前窗口的中位数。窗口未满时返回(0, false)。
func (q *Quantile[T]) Median() (float64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.ready() {
		return 0, false
	}
	return medianOf(q.values)
}

// At 返回位置q∈[0,1]处的分位数,使用相邻顺序统计量间的线性插值(type-7插值)。
// 窗口未满时返回(0, false)。
func (q *Quantile[T]) At(p float64) (float64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.ready() {
		return 0, false
	}
	return q.quantileAtLocked(p)
}

func (q *Quantile[T]) quantileAtLocked(p float64) (float64, bool) {
	n := q.values.Len()
	if n == 0 {
		return 0, false
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo < 0 {
		lo = 0
	}
	if hi >= n {
		hi = n - 1
	}
	loVal, ok := q.values.Select(lo)
	if !ok {
		return 0, false
	}
	hiVal, ok := q.values.Select(hi)
	if !ok {
		return 0, false
	}
	frac := pos - float64(lo)
	return float64(loVal) + frac*(float64(hiVal)-float64(loVal)), true
}

// IQR 返回四分位距 Q3−Q1(q=0.75与q=0.25)。窗口未满时返回(0, false)。
func (q *Quantile[T]) IQR() (float64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.ready() {
		return 0, false
	}
	q3, _ := q.quantileAtLocked(0.75)
	q1, _ := q.quantileAtLocked(0.25)
	return q3 - q1, true
}

// MAD 返回中位数绝对偏差,相对当前窗口中位数精确计算(见本类型文档注释)。
// 窗口未满时返回(0, false)。
func (q *Quantile[T]) MAD() (float64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.ready() {
		return 0, false
	}
	return medianOf(q.devs)
}

// RankOfCurrent 返回最近一次Next样本在当前窗口中的0-indexed秩(严格小于它的
// 元素个数),直接复用values树已有的Rank,不引入新的累加器。
func (q *Quantile[T]) RankOfCurrent() (int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.ready() {
		return 0, false
	}
	return q.values.Rank(q.lastVal, q.lastSeq), true
}

// PercentileOfCurrent 返回最近一次Next样本的秩在[0,1]区间的归一化位置:
// rank/(n-1)。n<2时返回(0, false)。
func (q *Quantile[T]) PercentileOfCurrent() (float64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.ready() {
		return 0, false
	}
	n := q.values.Len()
	if n < 2 {
		return 0, false
	}
	rank := q.values.Rank(q.lastVal, q.lastSeq)
	return float64(rank) / float64(n-1), true
}

// Recompute 丢弃两棵树的状态,按环形缓冲区当前内容重新构建values树,
// 再以rebuildDevsLocked同样的规则(相对当前窗口中位数)重建devs树。
// 这与Next()每一步维护的状态定义完全一致,因此Recompute是幂等的。
func (q *Quantile[T]) Recompute() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ins.recompute(func() {
		q.values = korder.New[T]()
		entries := q.ring.Entries()
		for _, e := range entries {
			q.values.Insert(e.Value, uint64(e.Seq))
		}
		q.rebuildDevsLocked()
		if n := len(entries); n > 0 {
			last := entries[n-1]
			q.lastVal, q.lastSeq = last.Value, uint64(last.Seq)
		}
	})
}

// Snapshot 返回WithQuantiles预注册的各分位点在当前窗口下的取值,按注册顺序
// 写入复用的内部缓冲区(不逐次分配)。窗口未满或未注册任何分位点时返回nil。
func (q *Quantile[T]) Snapshot() []QuantileLevel {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.ready() || len(q.cfg.quantiles) == 0 {
		return nil
	}
	for i, p := range q.cfg.quantiles {
		v, _ := q.quantileAtLocked(p)
		q.snap[i] = QuantileLevel{P: p, Value: v}
	}
	return q.snap
}

// Diagnostics 返回最近一次Recompute的耗时诊断信息。
func (q *Quantile[T]) Diagnostics() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ins.Diagnostics()
}
