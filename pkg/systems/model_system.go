package systems

import (
	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// ModelSystem 模型入场和选中偏移的插值
type ModelSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.ModelConfig

	entered  bool
	selected bool
}

// NewModelSystem 创建模型系统
func NewModelSystem(em *ecs.EntityManager, cfg config.ModelConfig) *ModelSystem {
	return &ModelSystem{
		entityManager: em,
		cfg:           cfg,
	}
}

// Enter 模型移动到入场位置并转正
func (s *ModelSystem) Enter() {
	s.entered = true
	s.retarget()
}

// SetSelected 选中菜单项时模型下移 SelectionOffsetY
func (s *ModelSystem) SetSelected(selected bool) {
	s.selected = selected
	s.retarget()
}

// TargetPosition 返回当前状态下的目标位置
func (s *ModelSystem) TargetPosition() mgl64.Vec3 {
	if !s.entered {
		return mgl64.Vec3(s.cfg.StartPosition)
	}
	target := mgl64.Vec3(s.cfg.EntryPosition)
	if s.selected {
		target[1] += s.cfg.SelectionOffsetY
	}
	return target
}

func (s *ModelSystem) retarget() {
	target := s.TargetPosition()
	for _, id := range ecs.GetEntitiesWith1[*components.ModelComponent](s.entityManager) {
		model, _ := ecs.GetComponent[*components.ModelComponent](s.entityManager, id)
		model.Target = target
		if s.entered {
			model.TargetRotationY = 0
		}
	}
}

// Update 各轴和旋转独立插值，差值低于阈值时对齐
func (s *ModelSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ModelComponent](s.entityManager) {
		model, _ := ecs.GetComponent[*components.ModelComponent](s.entityManager, id)
		StepModel(model, s.cfg.EaseRate, s.cfg.Threshold)
	}
}

// StepModel 推进一帧模型插值
// 返回: 是否已到达目标
func StepModel(model *components.ModelComponent, rate, threshold float64) bool {
	settled := true
	for axis := 0; axis < 3; axis++ {
		var done bool
		model.Position[axis], done = utils.ApproachThreshold(model.Position[axis], model.Target[axis], rate, threshold)
		settled = settled && done
	}

	var done bool
	model.RotationY, done = utils.ApproachThreshold(model.RotationY, model.TargetRotationY, rate, threshold)
	return settled && done
}
