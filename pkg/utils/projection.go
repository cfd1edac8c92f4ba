package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera 透视相机
// 相机位于 (0, height, distance)，看向原点，Y 轴向上
type Camera struct {
	FOV      float64 // 垂直视角（度）
	Distance float64
	Height   float64
	Near     float64
	Far      float64

	width, height float64
	viewProj      mgl64.Mat4
}

// NewCamera 创建透视相机并按屏幕尺寸计算投影矩阵
func NewCamera(fov, distance, height, near, far float64, screenWidth, screenHeight int) *Camera {
	c := &Camera{
		FOV:      fov,
		Distance: distance,
		Height:   height,
		Near:     near,
		Far:      far,
	}
	c.Resize(screenWidth, screenHeight)
	return c
}

// Resize 按新的屏幕尺寸更新宽高比
func (c *Camera) Resize(screenWidth, screenHeight int) {
	c.width = math.Max(1, float64(screenWidth))
	c.height = math.Max(1, float64(screenHeight))

	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), c.width/c.height, c.Near, c.Far)
	view := mgl64.LookAtV(
		mgl64.Vec3{0, c.Height, c.Distance},
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)
	c.viewProj = proj.Mul4(view)
}

// Project 把世界坐标投影到屏幕坐标
// 返回: 屏幕 x, y（像素），以及点是否位于相机前方
func (c *Camera) Project(p mgl64.Vec3) (float64, float64, bool) {
	return c.ProjectWith(mgl64.Ident4(), p)
}

// ProjectWith 先用 model 变换点再投影
func (c *Camera) ProjectWith(model mgl64.Mat4, p mgl64.Vec3) (float64, float64, bool) {
	clip := c.viewProj.Mul4(model).Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, false
	}
	ndcX, ndcY := clip[0]/clip[3], clip[1]/clip[3]
	x := (ndcX + 1) / 2 * c.width
	y := (1 - ndcY) / 2 * c.height
	return x, y, true
}
