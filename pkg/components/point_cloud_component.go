package components

import (
	"github.com/digitorumflex/folio/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// PointCloudComponent 点云组件
// 保存点集、下一次形变的目标形状以及每帧重建的闭合连线
type PointCloudComponent struct {
	Points *geometry.PointSet

	// TargetShape 下一次生成时使用的形状
	// 由场景在登录成功、选中或取消选中菜单项时设置
	TargetShape geometry.Shape

	// LineLoop 闭合连线：Current 的所有点再加上第一个点
	LineLoop []mgl64.Vec3

	// Regenerations 已完成的生成次数
	Regenerations int
}
