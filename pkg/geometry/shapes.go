package geometry

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape 形状标识，对应配置文件中的 shape 字段
type Shape string

const (
	ShapeCloud       Shape = "cloud"       // 球体内随机分布（初始填充）
	ShapeSphere      Shape = "sphere"      // 斐波那契球面
	ShapeCube        Shape = "cube"        // 立方体表面网格
	ShapePyramid     Shape = "pyramid"     // 四棱锥
	ShapeTorus       Shape = "torus"       // 圆环
	ShapeHelix       Shape = "helix"       // 双螺旋
	ShapeTesseract   Shape = "tesseract"   // 超立方体投影
	ShapeTetrahedron Shape = "tetrahedron" // 正四面体
	ShapeSpiky       Shape = "spiky"       // 尖刺球
	ShapeFace        Shape = "face"        // 人脸
)

// AllShapes 返回所有支持的形状（顺序固定）
func AllShapes() []Shape {
	return []Shape{
		ShapeCloud, ShapeSphere, ShapeCube, ShapePyramid, ShapeTorus,
		ShapeHelix, ShapeTesseract, ShapeTetrahedron, ShapeSpiky, ShapeFace,
	}
}

// ParseShape 解析形状名称
func ParseShape(name string) (Shape, error) {
	for _, s := range AllShapes() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown shape %q", name)
}

// Options 生成器参数
type Options struct {
	Radius float64 // 基准尺寸，各形状按比例派生自己的参数
}

// DefaultOptions 返回默认参数
func DefaultOptions() Options {
	return Options{Radius: 1.5}
}

// NewRand 创建随机数生成器，seed 为 0 时使用当前时间
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate 生成 n 个点
// n < 1 时按 1 处理
func (s Shape) Generate(rng *rand.Rand, n int, opts Options) ([]mgl64.Vec3, error) {
	if n < 1 {
		n = 1
	}
	if rng == nil {
		rng = NewRand(0)
	}
	r := opts.Radius
	if r <= 0 {
		r = DefaultOptions().Radius
	}

	switch s {
	case ShapeCloud:
		return VolumeSphere(rng, n, r), nil
	case ShapeSphere:
		return FibonacciSphere(n, r), nil
	case ShapeCube:
		return Cube(n, r*1.3), nil
	case ShapePyramid:
		return Pyramid(rng, n, r*1.6, r*1.6), nil
	case ShapeTorus:
		return Torus(n, r*0.75, r*0.3), nil
	case ShapeHelix:
		return DoubleHelix(n, r*0.5, r*2, 3), nil
	case ShapeTesseract:
		return Tesseract(n, r*0.9, 3), nil
	case ShapeTetrahedron:
		return Tetrahedron(rng, n, r*1.2), nil
	case ShapeSpiky:
		return SpikySphere(n, r*0.8, 12, r*0.5), nil
	case ShapeFace:
		return Face(rng, n, r), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", string(s))
	}
}
