package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Torus 圆环
// 点沿一条绕管螺旋排列：绕主环一圈的同时绕管约 sqrt(n) 圈
func Torus(n int, major, minor float64) []mgl64.Vec3 {
	n = clampCount(n)
	windings := math.Max(1, math.Round(math.Sqrt(float64(n))))
	points := make([]mgl64.Vec3, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		u := 2 * math.Pi * t
		v := 2 * math.Pi * t * windings
		ring := major + minor*math.Cos(v)
		points = append(points, mgl64.Vec3{
			ring * math.Cos(u),
			minor * math.Sin(v),
			ring * math.Sin(u),
		})
	}
	return fitCount(points, n)
}

// DoubleHelix 双螺旋
// 第一条链自下而上，第二条链相位差 π 并自上而下，连线首尾相接
func DoubleHelix(n int, radius, height, turns float64) []mgl64.Vec3 {
	n = clampCount(n)
	counts := splitEven(n, 2)
	points := make([]mgl64.Vec3, 0, n)

	strand := func(count int, phase float64, reverse bool) {
		for k := 0; k < count; k++ {
			idx := k
			if reverse {
				idx = count - 1 - k
			}
			t := 0.5
			if count > 1 {
				t = float64(idx) / float64(count-1)
			}
			angle := 2*math.Pi*turns*t + phase
			points = append(points, mgl64.Vec3{
				radius * math.Cos(angle),
				-height/2 + height*t,
				radius * math.Sin(angle),
			})
		}
	}
	strand(counts[0], 0, false)
	strand(counts[1], math.Pi, true)

	return fitCount(points, n)
}
