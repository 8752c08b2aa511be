package kstat

import (
	"math"
	"sync"

	"github.com/mtgnorton/rollstat/kcollection"
	"github.com/mtgnorton/rollstat/kmath"
)

// Paired 维护滑动窗口的协方差/相关系数/beta,在Moments的幂和基础上额外维护
// 补偿和Σy,Σy²,Σxy。x被视为自变量(例如市场收益率),
// beta按cov_sample(x,y)/var_sample(x)定义。
// kcollection.Ring is constrained to kmath.Number, so a struct like Pair[T]
// cannot back a single ring; Paired keeps two rings advancing in lockstep
// instead (identical push cadence, identical eviction timing).
type Paired[T Float] struct {
	mu    sync.Mutex
	ringX *kcollection.Ring[T]
	ringY *kcollection.Ring[T]
	sx1   kmath.Sum[float64]
	sx2   kmath.Sum[float64]
	sy1   kmath.Sum[float64]
	sy2   kmath.Sum[float64]
	sxy   kmath.Sum[float64]
	cfg   *config[T]
	ins   *instrumentation
}

// NewPaired 创建一个窗口大小为period的滚动协方差/相关系数/beta估计器。
func NewPaired[T Float](period int, opts ...Option[T]) (*Paired[T], error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	cfg := newConfig[T]()
	for _, o := range opts {
		o(cfg)
	}
	return &Paired[T]{
		ringX: kcollection.NewRing[T](period),
		ringY: kcollection.NewRing[T](period),
		cfg:   cfg,
		ins:   newInstrumentation(),
	}, nil
}

// Period 返回窗口大小W。
func (p *Paired[T]) Period() int { return p.ringX.Period() }

// SetDDOF 选择协方差使用样本(true,除数n-1)还是总体(false,除数n)。
// Beta不受此配置影响,始终使用样本协方差与样本方差。
func (p *Paired[T]) SetDDOF(sample bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.ddof = sample
}

// Next 推入一对新样本(x, y),更新五个补偿和;若窗口已满,同时移除被淘汰对的贡献。
// 任一分量非有限时整对被拒绝,状态保持不变。
func (p *Paired[T]) Next(x, y T) (*Paired[T], error) {
	if err := rejectNonFinite(x); err != nil {
		p.mu.Lock()
		p.ins.reject()
		p.mu.Unlock()
		return p, err
	}
	if err := rejectNonFinite(y); err != nil {
		p.mu.Lock()
		p.ins.reject()
		p.mu.Unlock()
		return p, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	evictedX, _, evictedOK, _ := p.ringX.Push(x)
	evictedY, _, _, _ := p.ringY.Push(y)
	p.addPair(float64(x), float64(y))
	if evictedOK {
		p.removePair(float64(evictedX), float64(evictedY))
	}
	p.ins.accept()
	return p, nil
}

func (p *Paired[T]) addPair(x, y float64) {
	p.sx1.Add(x)
	p.sx2.Add(x * x)
	p.sy1.Add(y)
	p.sy2.Add(y * y)
	p.sxy.Add(x * y)
}

func (p *Paired[T]) removePair(x, y float64) {
	p.sx1.Remove(x)
	p.sx2.Remove(x * x)
	p.sy1.Remove(y)
	p.sy2.Remove(y * y)
	p.sxy.Remove(x * y)
}

func (p *Paired[T]) ready() bool { return p.ringX.Filled() }

// covPop在已持锁前提下返回总体协方差(除数n)及相关中间量。
func (p *Paired[T]) covPop() (cov, varX, varY float64, n int) {
	n = p.ringX.Len()
	nf := float64(n)
	meanX := p.sx1.Value() / nf
	meanY := p.sy1.Value() / nf
	cov = p.sxy.Value()/nf - meanX*meanY
	varX = p.sx2.Value()/nf - meanX*meanX
	varY = p.sy2.Value()/nf - meanY*meanY
	if varX < 0 {
		varX = 0
	}
	if varY < 0 {
		varY = 0
	}
	return cov, varX, varY, n
}

// Covariance 返回窗口内(x,y)的协方差,按SetDDOF配置在总体(n)与样本(n-1)除数间切换。
// 窗口未满或(样本模式下)n<2时返回(0, false)。
func (p *Paired[T]) Covariance() (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready() {
		return 0, false
	}
	covPop, _, _, n := p.covPop()
	if !p.cfg.ddof {
		return covPop, true
	}
	if n < 2 {
		return 0, false
	}
	return covPop * float64(n) / float64(n-1), true
}

// Correlation 返回窗口内(x,y)的皮尔逊相关系数,分母为零时返回(0, false)。
func (p *Paired[T]) Correlation() (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready() {
		return 0, false
	}
	covPop, varX, varY, _ := p.covPop()
	if varX <= 0 || varY <= 0 {
		return 0, false
	}
	return covPop / (math.Sqrt(varX) * math.Sqrt(varY)), true
}

// Beta 返回cov_sample(x,y)/var_sample(x),x为自变量。
// var_sample(x)为零时返回(0, false)。
func (p *Paired[T]) Beta() (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready() {
		return 0, false
	}
	covPop, varX, _, n := p.covPop()
	if n < 2 {
		return 0, false
	}
	nf := float64(n)
	covSample := covPop * nf / float64(n-1)
	varXSample := varX * nf / float64(n-1)
	if varXSample <= 0 {
		return 0, false
	}
	return covSample / varXSample, true
}

// Recompute 丢弃全部派生状态,按环形缓冲区当前内容重新构建五个补偿和。
func (p *Paired[T]) Recompute() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ins.recompute(func() {
		p.sx1.Reset()
		p.sx2.Reset()
		p.sy1.Reset()
		p.sy2.Reset()
		p.sxy.Reset()
		xs := p.ringX.Entries()
		ys := p.ringY.Entries()
		for i := range xs {
			p.addPair(float64(xs[i].Value), float64(ys[i].Value))
		}
	})
}

// Diagnostics 返回最近一次Recompute的耗时诊断信息。
func (p *Paired[T]) Diagnostics() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ins.Diagnostics()
}
