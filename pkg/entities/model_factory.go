package entities

import (
	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/game"
	"github.com/go-gl/mathgl/mgl64"
)

// NewModel 创建 3D 模型实体
// 模型从 StartPosition 出发；入场前目标位置与起点相同，保持静止
func NewModel(em *ecs.EntityManager, mesh *game.Mesh, cfg config.ModelConfig) ecs.EntityID {
	start := mgl64.Vec3(cfg.StartPosition)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.ModelComponent{
		Mesh:            mesh,
		Position:        start,
		Target:          start,
		RotationY:       cfg.StartRotationY,
		TargetRotationY: cfg.StartRotationY,
		Scale:           cfg.Scale,
	})
	return entity
}
