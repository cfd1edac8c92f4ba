package geometry

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// faceRegion 人脸中的一个部位
type faceRegion struct {
	share  float64                    // 占总点数的比例
	sample func(t float64) mgl64.Vec3 // t ∈ [0, 1) 沿部位轮廓取点
}

// faceDepth 面部沿 Z 方向的凸起程度
const faceDepth = 0.35

// Face 人脸：椭圆轮廓、双眼、鼻子、嘴、下巴、双耳
// 各部位按固定比例分配点数，剩余点随机填充到脸部椭圆内
func Face(rng *rand.Rand, n int, scale float64) []mgl64.Vec3 {
	n = clampCount(n)
	ellipse := func(cx, cy, rx, ry float64) func(float64) mgl64.Vec3 {
		return func(t float64) mgl64.Vec3 {
			a := 2 * math.Pi * t
			return mgl64.Vec3{cx + rx*math.Cos(a), cy + ry*math.Sin(a), 0}
		}
	}

	regions := []faceRegion{
		{0.40, ellipse(0, 0, 0.75, 1.0)},
		{0.08, ellipse(-0.3, 0.25, 0.12, 0.07)},
		{0.08, ellipse(0.3, 0.25, 0.12, 0.07)},
		{0.06, func(t float64) mgl64.Vec3 {
			return mgl64.Vec3{0.04 * math.Sin(math.Pi*t), 0.15 - 0.3*t, 0}
		}},
		{0.10, func(t float64) mgl64.Vec3 {
			x := -0.3 + 0.6*t
			return mgl64.Vec3{x, -0.4 - 0.15*(1-(x/0.3)*(x/0.3)), 0}
		}},
		{0.06, func(t float64) mgl64.Vec3 {
			x := -0.2 + 0.4*t
			return mgl64.Vec3{x, -0.82 + 0.5*x*x, 0}
		}},
		{0.05, ellipse(-0.8, 0.05, 0.08, 0.2)},
		{0.05, ellipse(0.8, 0.05, 0.08, 0.2)},
	}

	points := make([]mgl64.Vec3, 0, n)
	for _, region := range regions {
		count := int(math.Floor(region.share * float64(n)))
		for k := 0; k < count; k++ {
			points = append(points, region.sample(float64(k)/float64(count)))
		}
	}

	for len(points) < n {
		// 椭圆内均匀采样
		a := 2 * math.Pi * rng.Float64()
		r := math.Sqrt(rng.Float64())
		points = append(points, mgl64.Vec3{0.7 * r * math.Cos(a), 0.95 * r * math.Sin(a), 0})
	}

	for i, p := range points {
		points[i] = mgl64.Vec3{p[0] * scale, p[1] * scale, bulge(p[0], p[1]) * scale}
	}
	return fitCount(points, n)
}

// bulge 返回脸部椭球面在 (x, y) 处的 Z 值，轮廓外为 0
func bulge(x, y float64) float64 {
	d := 1 - (x*x)/(0.75*0.75) - y*y
	if d <= 0 {
		return 0
	}
	return faceDepth * math.Sqrt(d)
}
