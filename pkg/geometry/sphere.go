package geometry

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// goldenAngle 黄金角（弧度）
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// VolumeSphere 在半径为 radius 的球体内部均匀随机分布 n 个点
func VolumeSphere(rng *rand.Rand, n int, radius float64) []mgl64.Vec3 {
	n = clampCount(n)
	points := make([]mgl64.Vec3, 0, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * rng.Float64()
		cosPhi := 2*rng.Float64() - 1
		sinPhi := math.Sqrt(1 - cosPhi*cosPhi)
		r := radius * math.Cbrt(rng.Float64())
		points = append(points, mgl64.Vec3{
			r * sinPhi * math.Cos(theta),
			r * cosPhi,
			r * sinPhi * math.Sin(theta),
		})
	}
	return fitCount(points, n)
}

// FibonacciSphere 斐波那契球面分布
// 相邻序号的点沿螺旋线排列，连线后形成一条球面螺旋
func FibonacciSphere(n int, radius float64) []mgl64.Vec3 {
	n = clampCount(n)
	points := make([]mgl64.Vec3, 0, n)
	for i := 0; i < n; i++ {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		ring := math.Sqrt(1 - y*y)
		theta := goldenAngle * float64(i)
		points = append(points, mgl64.Vec3{
			radius * ring * math.Cos(theta),
			radius * y,
			radius * ring * math.Sin(theta),
		})
	}
	return fitCount(points, n)
}

// SpikySphere 尖刺球
// 在斐波那契球面上每隔一段距离把一个点向外推出 spikeLength，共约 spikes 根尖刺
func SpikySphere(n int, radius float64, spikes int, spikeLength float64) []mgl64.Vec3 {
	n = clampCount(n)
	points := FibonacciSphere(n, radius)
	if spikes < 1 {
		return points
	}
	every := n / spikes
	if every < 1 {
		every = 1
	}
	scale := (radius + spikeLength) / radius
	for i := 0; i < len(points); i += every {
		points[i] = points[i].Mul(scale)
	}
	return points
}
