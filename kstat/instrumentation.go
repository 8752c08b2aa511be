package kstat

import (
	"github.com/mtgnorton/rollstat/kmonitor"
	"github.com/mtgnorton/rollstat/kreflect"
	"github.com/mtgnorton/rollstat/kunique"
)

// instrumentation 是各估计器内嵌的可观测性组件,复用teacher kmonitor的
// RollingResultCounter(Next接受/拒绝样本的滚动计数)与ConsumeTimeStatistics
// (Recompute耗时)惯例,而不是自造一套监控原语。
//
// 注意事项:
//   - accept/reject统计的是Next的样本,不是业务意义上的"成功/失败"请求,
//     沿用RollingResultCounter的字段语义但改变了它的使用场景
//   - recompute每次调用都会生成一个kunique雪花ID,写入lastRecompute,
//     便于在日志中把一次Recompute与其耗时统计行关联起来
type instrumentation struct {
	outcomes      *kmonitor.RollingResultCounter[int64]
	lastRecompute string
}

func newInstrumentation() *instrumentation {
	return &instrumentation{
		outcomes: kmonitor.NewRollingResultCounter[int64](),
	}
}

// accept 记录一次被接受的样本(Next未拒绝)。
func (ins *instrumentation) accept() {
	ins.outcomes.AddSuccess(1)
}

// reject 记录一次被拒绝的样本(Next因非有限值或其他原因拒绝)。
func (ins *instrumentation) reject() {
	ins.outcomes.AddFail(1)
}

// recompute 执行fn并将其耗时与一个关联ID记录到lastRecompute,供Diagnostics查询。
func (ins *instrumentation) recompute(fn func()) {
	id := kunique.GenerateUniqueID()
	stats := kmonitor.ConsumeTimeStatistics("recompute")
	fn()
	ins.lastRecompute = stats(kreflect.ToString(id))
}

// Outcomes 返回底层的滚动接受/拒绝计数器,便于调用方自行Reduce或打印Info。
func (ins *instrumentation) Outcomes() *kmonitor.RollingResultCounter[int64] {
	return ins.outcomes
}

// Diagnostics 返回最近一次Recompute的耗时诊断字符串,尚未发生过Recompute时为空串。
func (ins *instrumentation) Diagnostics() string {
	return ins.lastRecompute
}
