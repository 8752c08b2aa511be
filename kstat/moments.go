package kstat

import (
	"math"
	"sync"

	"github.com/mtgnorton/rollstat/kcollection"
	"github.com/mtgnorton/rollstat/kmath"
)

// Moments 维护滑动窗口的均值/方差/标准差/偏度/峰度,基于四个补偿幂和
// S1=Σx,S2=Σx²,S3=Σx³,S4=Σx⁴。
//
// 选择幂和形式而非Welford递推,是因为幂和支持精确的remove(x)
// (对称的补偿减法),而Welford的递推关系不能干净地支持滑动窗口的淘汰。
//
// 参数说明:
//   - T: 样本的浮点类型
//
// 注意事项:
//   - 构造时一次性分配period大小的环形缓冲区,稳态阶段不再分配内存
//   - 单线程同步模型,但内部仍保留一把互斥锁,沿用"每个可变状态都有锁保护"的约定
type Moments[T Float] struct {
	mu   sync.Mutex
	ring *kcollection.Ring[T]
	s1   kmath.Sum[float64]
	s2   kmath.Sum[float64]
	s3   kmath.Sum[float64]
	s4   kmath.Sum[float64]
	cfg  *config[T]
	ins  *instrumentation
}

// NewMoments 创建一个窗口大小为period的滚动矩估计器。period必须>=1。
func NewMoments[T Float](period int, opts ...Option[T]) (*Moments[T], error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	cfg := newConfig[T]()
	for _, o := range opts {
		o(cfg)
	}
	return &Moments[T]{
		ring: kcollection.NewRing[T](period),
		cfg:  cfg,
		ins:  newInstrumentation(),
	}, nil
}

// Period 返回窗口大小W。
func (m *Moments[T]) Period() int {
	return m.ring.Period()
}

// SetDDOF 选择方差族估计量使用样本(true,除数n-1)还是总体(false,除数n)。
func (m *Moments[T]) SetDDOF(sample bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg.ddof = sample
}

// Next 推入一个新样本,更新四个幂和;若窗口已满,同时移除被淘汰样本的贡献。
// 非有限值(NaN/±Inf)会被拒绝,状态保持不变,返回ErrNonFinite。
//
// 返回值说明:
//   - *Moments[T]: 返回自身,便于链式调用
func (m *Moments[T]) Next(x T) (*Moments[T], error) {
	if err := rejectNonFinite(x); err != nil {
		m.mu.Lock()
		m.ins.reject()
		m.mu.Unlock()
		return m, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	evicted, _, evictedOK, _ := m.ring.Push(x)
	m.addPowers(float64(x))
	if evictedOK {
		m.removePowers(float64(evicted))
	}
	m.ins.accept()
	return m, nil
}

func (m *Moments[T]) addPowers(x float64) {
	m.s1.Add(x)
	m.s2.Add(x * x)
	m.s3.Add(x * x * x)
	m.s4.Add(x * x * x * x)
}

func (m *Moments[T]) removePowers(x float64) {
	m.s1.Remove(x)
	m.s2.Remove(x * x)
	m.s3.Remove(x * x * x)
	m.s4.Remove(x * x * x * x)
}

// ready 报告窗口是否已满,这是各accessor统一采用的就绪策略。
func (m *Moments[T]) ready() bool {
	return m.ring.Filled()
}

// Mean 返回窗口内样本的算术平均值。窗口未满时返回(0, false)。
func (m *Moments[T]) Mean() (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready() {
		return 0, false
	}
	n := float64(m.ring.Len())
	return m.s1.Value() / n, true
}

// variancePop 在已持锁的前提下返回总体方差(除数n)。
func (m *Moments[T]) variancePop() (float64, float64, int) {
	n := m.ring.Len()
	nf := float64(n)
	mean := m.s1.Value() / nf
	v := m.s2.Value()/nf - mean*mean
	if v < 0 {
		v = 0
	}
	return v, mean, n
}

// Variance 返回窗口内样本的方差,按SetDDOF配置在总体(n)与样本(n-1)除数间切换。
// 窗口未满或n<2时返回(0, false)。
func (m *Moments[T]) Variance() (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready() {
		return 0, false
	}
	vPop, _, n := m.variancePop()
	if n < 2 {
		return 0, false
	}
	if !m.cfg.ddof {
		return vPop, true
	}
	return vPop * float64(n) / float64(n-1), true
}

// StdDev 返回方差的平方根。当方差因舍入落在零附近而<=0时,
// 返回(0, true)而不是"undefined"。
func (m *Moments[T]) StdDev() (float64, bool) {
	v, ok := m.Variance()
	if !ok {
		return 0, false
	}
	if v <= 0 {
		return 0, true
	}
	return math.Sqrt(v), true
}

// Skewness 返回总体偏度(未做偏差修正),与SetDDOF配置无关。
// 要求窗口已满且n>=3,否则返回(0, false)。
func (m *Moments[T]) Skewness() (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready() {
		return 0, false
	}
	n := m.ring.Len()
	if n < 3 {
		return 0, false
	}
	nf := float64(n)
	mean := m.s1.Value() / nf
	vPop := m.s2.Value()/nf - mean*mean
	if vPop <= 0 {
		return 0, false
	}
	std := math.Sqrt(vPop)
	num := m.s3.Value()/nf - 3*mean*m.s2.Value()/nf + 2*mean*mean*mean
	return num / (std * std * std), true
}

// Kurtosis 返回超额峰度(population,excess),与SetDDOF配置无关。
// 要求窗口已满且n>=4,否则返回(0, false)。
func (m *Moments[T]) Kurtosis() (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready() {
		return 0, false
	}
	n := m.ring.Len()
	if n < 4 {
		return 0, false
	}
	nf := float64(n)
	mean := m.s1.Value() / nf
	vPop := m.s2.Value()/nf - mean*mean
	if vPop <= 0 {
		return 0, false
	}
	num := m.s4.Value()/nf - 4*mean*m.s3.Value()/nf + 6*mean*mean*m.s2.Value()/nf - 3*mean*mean*mean*mean
	return num/(vPop*vPop) - 3, true
}

// Sharpe 返回滚动夏普比率mean/stddev,按WithAnnualization配置的因子缩放
// (例如日频数据用sqrt(252)把日度夏普年化)。这是C7派生估计器之一,直接建立
// 在Moments已有的均值/标准差之上,不引入新的累加器。stddev为0时返回(0, false)。
func (m *Moments[T]) Sharpe() (float64, bool) {
	mean, ok := m.Mean()
	if !ok {
		return 0, false
	}
	std, ok := m.StdDev()
	if !ok || std == 0 {
		return 0, false
	}
	m.mu.Lock()
	annualization := float64(m.cfg.annualization)
	m.mu.Unlock()
	return (mean / std) * annualization, true
}

// Recompute 丢弃全部派生状态,按环形缓冲区当前内容重新构建四个幂和,
// 用于在长期运行后纠正可能累积的浮点误差。
func (m *Moments[T]) Recompute() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ins.recompute(func() {
		m.s1.Reset()
		m.s2.Reset()
		m.s3.Reset()
		m.s4.Reset()
		for _, e := range m.ring.Entries() {
			m.addPowers(float64(e.Value))
		}
	})
}

// Diagnostics 返回最近一次Recompute的耗时诊断信息。
func (m *Moments[T]) Diagnostics() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ins.Diagnostics()
}
