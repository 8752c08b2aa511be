// kstat 提供了一组滑动窗口增量统计估计器,面向高频回测/实盘交易场景:
// 新样本到达后,派生统计量以增量方式刷新;各类型的内存分配情况见下方注意事项。
//
// 主要功能:
//   - Moments: 滚动均值/方差/标准差/偏度/峰度
//   - Paired: 滚动协方差/相关系数/beta
//   - Extrema: 滚动最小值/最大值
//   - Mode: 滚动众数
//   - Quantile: 滚动中位数/分位数/IQR/MAD
//   - 派生估计器: z-score,回撤/最大回撤,线性回归,夏普比率,分位秩
//
// 注意事项:
//   - Moments、Paired、Extrema及基于它们的派生估计器在构造时一次性分配到period大小,
//     稳态阶段不分配内存;Mode(频次追踪器按需分配链表节点与频次集合)和Quantile
//     (每次插入分配树节点,且每次Next都重建偏差树)在稳态阶段仍会分配内存
//   - 单线程同步模型: 每个实例仅由一个调用方更新,不提供跨goroutine的数据保护
//     之外的正确性保证;内部仍保留一把sync.Mutex,沿用kcollection.RollingWindow、
//     kmonitor.RealtimeCounter等"每个可变状态都有锁保护"的一贯约定,
//     未改变步骤的渐近复杂度
package kstat

// Float 约束了本包估计器可处理的样本类型:64位或32位浮点数。
// 形状上对应golang.org/x/exp/constraints.Float(kalgo.go、kmap.go用的是同一包中的constraints.Ordered),
// 这里单独声明是因为Pair/Option等类型也要对同一个约束做泛型参数。
type Float interface {
	~float32 | ~float64
}

// Pair 是一个原子更新的有序样本对(x, y)。
type Pair[T Float] struct {
	X, Y T
}
