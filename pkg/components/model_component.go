package components

import (
	"github.com/digitorumflex/folio/pkg/game"
	"github.com/go-gl/mathgl/mgl64"
)

// ModelComponent 可选 3D 模型
// 位置和旋转每帧向目标插值，差值低于阈值时直接对齐
type ModelComponent struct {
	Mesh *game.Mesh

	Position mgl64.Vec3
	Target   mgl64.Vec3

	RotationY       float64
	TargetRotationY float64

	Scale float64
}

// Transform 返回模型矩阵：平移 × 旋转 × 缩放
func (m *ModelComponent) Transform() mgl64.Mat4 {
	return mgl64.Translate3D(m.Position[0], m.Position[1], m.Position[2]).
		Mul4(mgl64.HomogRotate3DY(m.RotationY)).
		Mul4(mgl64.Scale3D(m.Scale, m.Scale, m.Scale))
}

// Settled 位置和旋转是否都已到达目标
func (m *ModelComponent) Settled() bool {
	return m.Position == m.Target && m.RotationY == m.TargetRotationY
}
