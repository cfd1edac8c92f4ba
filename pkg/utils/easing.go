package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数接受进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 逐帧跟随（ApproachThreshold）和指数衰减（Decay）用于没有固定时长的效果。

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（内容面板展开）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 把 v 限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ApproachThreshold 带阈值的逐帧线性插值
// 差值大于 threshold 时向 target 移动 rate 比例，否则直接对齐 target
//
// 参数:
//   - current: 当前值
//   - target: 目标值
//   - rate: 每帧插值比例 (0, 1]
//   - threshold: 对齐阈值
//
// 返回:
//   - float64: 新的值
//   - bool: 是否已到达目标
func ApproachThreshold(current, target, rate, threshold float64) (float64, bool) {
	if math.Abs(target-current) <= threshold {
		return target, true
	}
	return current + (target-current)*rate, false
}

// Decay 指数衰减一帧
// factor ∈ [0, 1)，绝对值小于 1e-6 时归零，保证幅度单调趋近 0
func Decay(v, factor float64) float64 {
	v *= factor
	if math.Abs(v) < 1e-6 {
		return 0
	}
	return v
}
