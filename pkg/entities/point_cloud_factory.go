package entities

import (
	"fmt"
	"math/rand"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/geometry"
)

// NewPointCloud 创建点云实体
//
// 参数：
//   - em: 实体管理器
//   - cfg: 点云配置（初始形状、点数、尺寸）
//   - rng: 随机源（填充点）
//
// 返回：
//   - 点云实体ID（同时拥有 PointCloudComponent 和 AnimationParams）
//   - 错误信息（形状名称无效）
func NewPointCloud(em *ecs.EntityManager, cfg config.ParticleConfig, rng *rand.Rand) (ecs.EntityID, error) {
	initial, err := geometry.ParseShape(cfg.InitialShape)
	if err != nil {
		return 0, fmt.Errorf("invalid initial shape: %w", err)
	}
	if _, err := geometry.ParseShape(cfg.IdleShape); err != nil {
		return 0, fmt.Errorf("invalid idle shape: %w", err)
	}

	points, err := initial.Generate(rng, cfg.PointCount, geometry.Options{Radius: cfg.ShapeRadius})
	if err != nil {
		return 0, err
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PointCloudComponent{
		Points:      geometry.NewPointSet(points),
		TargetShape: initial,
	})
	ecs.AddComponent(em, entity, components.NewAnimationParams(cfg.SpreadEndSize))

	return entity, nil
}
