// Package geometry 生成点云使用的三维形状
//
// 每个生成器都返回恰好 n 个点。形状本身是确定的，
// 只有填充点使用随机数。区域数量无法整除时，
// 通过复制最后一个点补齐（见 fitCount）。
package geometry

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultPointCount 默认点数量
const DefaultPointCount = 100

// PointSet 点集
//
// Base 是当前形状的静止位置，Current 是每帧渲染的扰动位置。
// 两个序列长度始终相同；Replace 一次性替换两者。
type PointSet struct {
	Base    []mgl64.Vec3
	Current []mgl64.Vec3
}

// NewPointSet 使用给定点创建点集
func NewPointSet(points []mgl64.Vec3) *PointSet {
	ps := &PointSet{}
	ps.Replace(points)
	return ps
}

// Len 返回点数量
func (ps *PointSet) Len() int {
	return len(ps.Base)
}

// Replace 用新的点替换 Base 和 Current
// Current 是 Base 的副本而不是别名，逐帧修改 Current 不会污染 Base
func (ps *PointSet) Replace(points []mgl64.Vec3) {
	base := make([]mgl64.Vec3, len(points))
	copy(base, points)
	current := make([]mgl64.Vec3, len(points))
	copy(current, points)

	ps.Base, ps.Current = base, current
}

// Regenerate 使用指定形状重新生成点集
func (ps *PointSet) Regenerate(shape Shape, rng *rand.Rand, n int, opts Options) error {
	points, err := shape.Generate(rng, n, opts)
	if err != nil {
		return err
	}
	ps.Replace(points)
	return nil
}

// fitCount 把点序列修正为恰好 n 个
// 多余的截断，不足的复制最后一个点补齐（没有点时使用原点）
func fitCount(points []mgl64.Vec3, n int) []mgl64.Vec3 {
	n = clampCount(n)
	if len(points) > n {
		return points[:n]
	}
	last := mgl64.Vec3{}
	if len(points) > 0 {
		last = points[len(points)-1]
	}
	for len(points) < n {
		points = append(points, last)
	}
	return points
}

// clampCount 点数下限为 1
func clampCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// splitEven 把 total 平均分成 parts 份，前 total%parts 份各多 1 个
func splitEven(total, parts int) []int {
	counts := make([]int, parts)
	if parts == 0 {
		return counts
	}
	for i := range counts {
		counts[i] = total / parts
		if i < total%parts {
			counts[i]++
		}
	}
	return counts
}

// lerpVec 在 a 和 b 之间线性插值
func lerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// edgePoints 沿边均匀分布 count 个点
func edgePoints(edges [][2]mgl64.Vec3, count int) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, 0, count)
	for e, c := range splitEven(count, len(edges)) {
		for k := 0; k < c; k++ {
			t := float64(k) / float64(c)
			points = append(points, lerpVec(edges[e][0], edges[e][1], t))
		}
	}
	return points
}

// faceFill 在三角面上随机采样 count 个点（重心坐标均匀分布）
func faceFill(rng *rand.Rand, faces [][3]mgl64.Vec3, count int) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, 0, count)
	if len(faces) == 0 {
		return points
	}
	for i := 0; i < count; i++ {
		f := faces[i%len(faces)]
		r1, r2 := rng.Float64(), rng.Float64()
		if r1+r2 > 1 {
			r1, r2 = 1-r1, 1-r2
		}
		p := f[0].Add(f[1].Sub(f[0]).Mul(r1)).Add(f[2].Sub(f[0]).Mul(r2))
		points = append(points, p)
	}
	return points
}
