package kstat

import (
	"math"

	"github.com/pkg/errors"
)

// 错误分三类: 无效配置在构造时失败;非有限输入在Next时被拒绝;
// 数据不足/退化统计量不是错误,而是各accessor返回的(value, ok)哨兵中的ok=false。
var (
	// ErrInvalidPeriod 表示构造时传入的窗口大小不满足W>=1。
	ErrInvalidPeriod = errors.New("kstat: period must be >= 1")
	// ErrNonFinite 表示Next收到了NaN或±Inf样本,已被拒绝,状态未发生变化。
	ErrNonFinite = errors.New("kstat: sample is not finite")
)

func validatePeriod(period int) error {
	if period < 1 {
		return errors.Wrapf(ErrInvalidPeriod, "got %d", period)
	}
	return nil
}

// errNonFinite 包装ErrNonFinite,供Next在拒绝NaN/±Inf样本时返回。
func errNonFinite() error {
	return errors.WithStack(ErrNonFinite)
}

// rejectNonFinite 在x为NaN或±Inf时返回errNonFinite(),否则返回nil。
// 所有估计器的Next都先调用它,统一"拒绝非有限输入"的策略。
func rejectNonFinite[T Float](x T) error {
	xf := float64(x)
	if math.IsNaN(xf) || math.IsInf(xf, 0) {
		return errNonFinite()
	}
	return nil
}
