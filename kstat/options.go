package kstat

// Option 是kstat估计器的函数式配置项,沿用teacher kcollection的
// RollingWindowOption[T, B]惯例。
type Option[T Float] func(*config[T])

type config[T Float] struct {
	ddof          bool      // false=population(默认), true=sample
	annualization T         // 夏普比率的年化因子,默认1(不年化)
	quantiles     []float64 // Quantile窗口预注册的分位点,避免逐次调用时分配
}

func newConfig[T Float]() *config[T] {
	return &config[T]{annualization: 1}
}

// WithDDOF 选择方差族估计量使用样本(true, 除数n-1)还是总体(false, 除数n)。
// 默认值为false(总体)。
func WithDDOF[T Float](sample bool) Option[T] {
	return func(c *config[T]) {
		c.ddof = sample
	}
}

// WithAnnualization 设置夏普比率的年化因子(例如日频数据用sqrt(252))。
func WithAnnualization[T Float](factor T) Option[T] {
	return func(c *config[T]) {
		c.annualization = factor
	}
}

// WithQuantiles 预注册Quantile窗口要追踪的分位点(例如0.25/0.5/0.75),
// 供Snapshot按固定顺序批量返回,避免每次调用都重新分配结果切片。
func WithQuantiles[T Float](qs []float64) Option[T] {
	return func(c *config[T]) {
		c.quantiles = append([]float64(nil), qs...)
	}
}
