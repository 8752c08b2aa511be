package kstat

import (
	"math"
	"sync"

	"github.com/mtgnorton/rollstat/kcollection"
	"github.com/mtgnorton/rollstat/kmath"
)

// ZScore 维护最近样本相对滚动均值/标准差的z-score: (x_t − mean)/stddev,
// 直接建立在Moments已有的幂和之上,不引入新的累加器。
type ZScore[T Float] struct {
	mu      sync.Mutex
	moments *Moments[T]
	lastX   T
}

// NewZScore 创建一个窗口大小为period的滚动z-score估计器。
func NewZScore[T Float](period int, opts ...Option[T]) (*ZScore[T], error) {
	m, err := NewMoments[T](period, opts...)
	if err != nil {
		return nil, err
	}
	return &ZScore[T]{moments: m}, nil
}

// Period 返回窗口大小W。
func (z *ZScore[T]) Period() int { return z.moments.Period() }

// Next 推入一个新样本。
func (z *ZScore[T]) Next(x T) (*ZScore[T], error) {
	if _, err := z.moments.Next(x); err != nil {
		return z, err
	}
	z.mu.Lock()
	z.lastX = x
	z.mu.Unlock()
	return z, nil
}

// Value 返回最近样本的z-score。stddev为0或窗口未满时返回(0, false)。
func (z *ZScore[T]) Value() (float64, bool) {
	std, ok := z.moments.StdDev()
	if !ok || std == 0 {
		return 0, false
	}
	mean, ok := z.moments.Mean()
	if !ok {
		return 0, false
	}
	z.mu.Lock()
	x := z.lastX
	z.mu.Unlock()
	return (float64(x) - mean) / std, true
}

// Recompute 重建底层Moments的派生状态。
func (z *ZScore[T]) Recompute() { z.moments.Recompute() }

// Diagnostics 返回最近一次Recompute的耗时诊断信息。
func (z *ZScore[T]) Diagnostics() string { return z.moments.Diagnostics() }

// Drawdown 维护当前样本相对窗口滚动峰值的回撤,以及按需扫描得到的
// 窗口内最大回撤。运行峰值就是滚动最大值;最大回撤采用"仅在被请求时
// 扫描窗口"的策略,而不是维护一条额外的"回撤值单调队列"。
type Drawdown[T Float] struct {
	mu      sync.Mutex
	extrema *Extrema[T]
	lastX   T
}

// NewDrawdown 创建一个窗口大小为period的滚动回撤估计器。
func NewDrawdown[T Float](period int) (*Drawdown[T], error) {
	e, err := NewExtrema[T](period)
	if err != nil {
		return nil, err
	}
	return &Drawdown[T]{extrema: e}, nil
}

// Period 返回窗口大小W。
func (d *Drawdown[T]) Period() int { return d.extrema.Period() }

// Next 推入一个新样本。
func (d *Drawdown[T]) Next(x T) (*Drawdown[T], error) {
	if _, err := d.extrema.Next(x); err != nil {
		return d, err
	}
	d.mu.Lock()
	d.lastX = x
	d.mu.Unlock()
	return d, nil
}

// Value 返回最近样本相对当前窗口峰值的回撤: (x_t − peak)/peak。
// 峰值为0或窗口为空时返回(0, false)。
func (d *Drawdown[T]) Value() (float64, bool) {
	peak, ok := d.extrema.Max()
	if !ok || peak == 0 {
		return 0, false
	}
	d.mu.Lock()
	x := d.lastX
	d.mu.Unlock()
	return (float64(x) - float64(peak)) / float64(peak), true
}

// MaxDrawdown 按时间顺序扫描当前窗口,对每个位置计算"该位置之前(含)出现过的
// 峰值"下的回撤,返回其中的最小值(即回撤幅度最大的一次)。
// 窗口未满时返回(0, false)。
func (d *Drawdown[T]) MaxDrawdown() (float64, bool) {
	entries := d.extrema.Entries()
	if len(entries) < d.extrema.Period() {
		return 0, false
	}
	var (
		peak    float64
		hasPeak bool
		worst   float64
		hasAny  bool
	)
	for _, e := range entries {
		v := float64(e.Value)
		if !hasPeak || v > peak {
			peak = v
			hasPeak = true
		}
		if peak == 0 {
			continue
		}
		dd := (v - peak) / peak
		if !hasAny || dd < worst {
			worst = dd
			hasAny = true
		}
	}
	if !hasAny {
		return 0, false
	}
	return worst, true
}

// Recompute 重建底层Extrema的双端队列状态。
func (d *Drawdown[T]) Recompute() { d.extrema.Recompute() }

// Diagnostics 返回最近一次Recompute的耗时诊断信息。
func (d *Drawdown[T]) Diagnostics() string { return d.extrema.Diagnostics() }

// LinearRegression 维护窗口内样本对位置(x_i=i, y_i=samples)的一元线性回归,
// 通过闭式的Σi、Σi²与增量维护的Σiy计算斜率/截距/夹角。
//
// Σi与Σi²在n固定时是n的闭式函数,只有Σiy需要随窗口滑动增量维护:
// 窗口滑动一位时,保留样本的有效下标都减1,因此
// Σiy_new = Σiy_old − Σy_old + evicted + (n−1)·x_new(稳态阶段);
// 填充阶段没有淘汰,新样本直接以当前长度为下标追加: Σiy_new = Σiy_old + n·x_new。
type LinearRegression[T Float] struct {
	mu    sync.Mutex
	ring  *kcollection.Ring[T]
	sumY  kmath.Sum[float64]
	sumIY kmath.Sum[float64]
	ins   *instrumentation
}

// NewLinearRegression 创建一个窗口大小为period的滚动线性回归估计器。
func NewLinearRegression[T Float](period int) (*LinearRegression[T], error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	return &LinearRegression[T]{
		ring: kcollection.NewRing[T](period),
		ins:  newInstrumentation(),
	}, nil
}

// Period 返回窗口大小W。
func (l *LinearRegression[T]) Period() int { return l.ring.Period() }

// Next 推入一个新样本,按滑动恒等式维护Σy与Σiy。
func (l *LinearRegression[T]) Next(x T) (*LinearRegression[T], error) {
	if err := rejectNonFinite(x); err != nil {
		l.mu.Lock()
		l.ins.reject()
		l.mu.Unlock()
		return l, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	n := l.ring.Len()
	evicted, _, evictedOK, _ := l.ring.Push(x)
	if evictedOK {
		period := float64(l.ring.Period())
		sumYOld := l.sumY.Value()
		l.sumIY.Add(-sumYOld + float64(evicted) + (period-1)*float64(x))
		l.sumY.Remove(float64(evicted))
		l.sumY.Add(float64(x))
	} else {
		l.sumIY.Add(float64(n) * float64(x))
		l.sumY.Add(float64(x))
	}
	l.ins.accept()
	return l, nil
}

func (l *LinearRegression[T]) ready() bool { return l.ring.Filled() }

// coefficientsLocked在已持锁前提下返回slope与intercept。n<2时ok=false。
func (l *LinearRegression[T]) coefficientsLocked() (slope, intercept float64, ok bool) {
	n := l.ring.Len()
	if n < 2 {
		return 0, 0, false
	}
	nf := float64(n)
	meanI := (nf - 1) / 2
	meanY := l.sumY.Value() / nf
	sxy := l.sumIY.Value() - nf*meanI*meanY
	sumISquared := (nf - 1) * nf * (2*nf - 1) / 6
	sxx := sumISquared - nf*meanI*meanI
	if sxx == 0 {
		return 0, 0, false
	}
	slope = sxy / sxx
	intercept = meanY - slope*meanI
	return slope, intercept, true
}

// Slope 返回窗口内样本的回归斜率。窗口未满时返回(0, false)。
func (l *LinearRegression[T]) Slope() (float64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.ready() {
		return 0, false
	}
	slope, _, ok := l.coefficientsLocked()
	return slope, ok
}

// Intercept 返回窗口内样本的回归截距。窗口未满时返回(0, false)。
func (l *LinearRegression[T]) Intercept() (float64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.ready() {
		return 0, false
	}
	_, intercept, ok := l.coefficientsLocked()
	return intercept, ok
}

// Angle 返回回归斜率的反正切角(弧度)。窗口未满时返回(0, false)。
func (l *LinearRegression[T]) Angle() (float64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.ready() {
		return 0, false
	}
	slope, _, ok := l.coefficientsLocked()
	if !ok {
		return 0, false
	}
	return math.Atan(slope), true
}

// Recompute 丢弃Σy/Σiy,按环形缓冲区当前内容依插入顺序重新构建。
func (l *LinearRegression[T]) Recompute() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ins.recompute(func() {
		l.sumY.Reset()
		l.sumIY.Reset()
		for i, e := range l.ring.Entries() {
			l.sumY.Add(float64(e.Value))
			l.sumIY.Add(float64(i) * float64(e.Value))
		}
	})
}

// Diagnostics 返回最近一次Recompute的耗时诊断信息。
func (l *LinearRegression[T]) Diagnostics() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ins.Diagnostics()
}
