package geometry

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// edgeShare 棱上点所占的比例，其余点随机填充到面上
const edgeShare = 0.6

// Cube 立方体表面网格
// 点数平均分配到 6 个面，每个面按网格排列
func Cube(n int, side float64) []mgl64.Vec3 {
	n = clampCount(n)
	h := side / 2
	// 每个面用 (u, v) 映射到三维坐标
	faces := []func(u, v float64) mgl64.Vec3{
		func(u, v float64) mgl64.Vec3 { return mgl64.Vec3{u, v, h} },
		func(u, v float64) mgl64.Vec3 { return mgl64.Vec3{-u, v, -h} },
		func(u, v float64) mgl64.Vec3 { return mgl64.Vec3{h, v, -u} },
		func(u, v float64) mgl64.Vec3 { return mgl64.Vec3{-h, v, u} },
		func(u, v float64) mgl64.Vec3 { return mgl64.Vec3{u, h, -v} },
		func(u, v float64) mgl64.Vec3 { return mgl64.Vec3{u, -h, v} },
	}

	points := make([]mgl64.Vec3, 0, n)
	for f, count := range splitEven(n, len(faces)) {
		if count == 0 {
			continue
		}
		grid := int(math.Ceil(math.Sqrt(float64(count))))
		for k := 0; k < count; k++ {
			row, col := k/grid, k%grid
			u := -h + side*(float64(col)+0.5)/float64(grid)
			v := -h + side*(float64(row)+0.5)/float64(grid)
			points = append(points, faces[f](u, v))
		}
	}
	return fitCount(points, n)
}

// Pyramid 四棱锥：正方形底面加顶点
// 约 60% 的点分布在 8 条棱上，其余随机填充到面上
func Pyramid(rng *rand.Rand, n int, base, height float64) []mgl64.Vec3 {
	n = clampCount(n)
	b := base / 2
	bottom := -height / 2
	apex := mgl64.Vec3{0, height / 2, 0}
	c := []mgl64.Vec3{
		{-b, bottom, -b},
		{b, bottom, -b},
		{b, bottom, b},
		{-b, bottom, b},
	}

	edges := [][2]mgl64.Vec3{
		{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]},
		{c[0], apex}, {c[1], apex}, {c[2], apex}, {c[3], apex},
	}
	faces := [][3]mgl64.Vec3{
		{c[0], c[1], apex}, {c[1], c[2], apex}, {c[2], c[3], apex}, {c[3], c[0], apex},
		{c[0], c[1], c[2]}, {c[0], c[2], c[3]},
	}
	return polyhedron(rng, n, edges, faces)
}

// Tetrahedron 正四面体，边长约为 size
func Tetrahedron(rng *rand.Rand, n int, size float64) []mgl64.Vec3 {
	n = clampCount(n)
	s := size / (2 * math.Sqrt2)
	v := []mgl64.Vec3{
		{s, s, s},
		{s, -s, -s},
		{-s, s, -s},
		{-s, -s, s},
	}

	edges := [][2]mgl64.Vec3{
		{v[0], v[1]}, {v[0], v[2]}, {v[0], v[3]},
		{v[1], v[2]}, {v[1], v[3]}, {v[2], v[3]},
	}
	faces := [][3]mgl64.Vec3{
		{v[0], v[1], v[2]}, {v[0], v[1], v[3]}, {v[0], v[2], v[3]}, {v[1], v[2], v[3]},
	}
	return polyhedron(rng, n, edges, faces)
}

func polyhedron(rng *rand.Rand, n int, edges [][2]mgl64.Vec3, faces [][3]mgl64.Vec3) []mgl64.Vec3 {
	onEdges := int(math.Round(float64(n) * edgeShare))
	if onEdges < 1 {
		onEdges = 1
	}
	if onEdges > n {
		onEdges = n
	}

	points := edgePoints(edges, onEdges)
	points = append(points, faceFill(rng, faces, n-onEdges)...)
	return fitCount(points, n)
}
