package geometry

import (
	"math"
	"math/bits"

	"github.com/go-gl/mathgl/mgl64"
)

// tesseractTilt 投影前在 XW 和 YW 平面上的固定旋转角（弧度）
// 不旋转时内外立方体的对应顶点会完全重叠在一条视线上
const tesseractTilt = 0.45

// Tesseract 超立方体
// 16 个四维顶点经透视投影落到三维，点数平均分配到 32 条棱上
func Tesseract(n int, size, distance float64) []mgl64.Vec3 {
	n = clampCount(n)
	var verts [16]mgl64.Vec3
	for i := range verts {
		v := mgl64.Vec4{-1, -1, -1, -1}
		for axis := 0; axis < 4; axis++ {
			if i&(1<<axis) != 0 {
				v[axis] = 1
			}
		}
		verts[i] = project4D(rotate4D(v, tesseractTilt), size, distance)
	}

	// 两个顶点仅在一个坐标上不同即为一条棱
	edges := make([][2]mgl64.Vec3, 0, 32)
	for i := 0; i < 16; i++ {
		for j := i + 1; j < 16; j++ {
			if bits.OnesCount(uint(i^j)) == 1 {
				edges = append(edges, [2]mgl64.Vec3{verts[i], verts[j]})
			}
		}
	}

	return fitCount(edgePoints(edges, n), n)
}

func rotate4D(v mgl64.Vec4, angle float64) mgl64.Vec4 {
	c, s := math.Cos(angle), math.Sin(angle)
	// XW 平面
	x, w := v[0]*c-v[3]*s, v[0]*s+v[3]*c
	// YW 平面
	y, w2 := v[1]*c-w*s, v[1]*s+w*c
	return mgl64.Vec4{x, y, v[2], w2}
}

func project4D(v mgl64.Vec4, size, distance float64) mgl64.Vec3 {
	k := size / (distance - v[3])
	return mgl64.Vec3{v[0] * k, v[1] * k, v[2] * k}
}
