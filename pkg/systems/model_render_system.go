package systems

import (
	"image/color"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var wireframeColor = color.RGBA{R: 120, G: 170, B: 210, A: 200}

// ModelRenderSystem 以线框绘制模型
type ModelRenderSystem struct {
	entityManager *ecs.EntityManager
	camera        *utils.Camera
}

// NewModelRenderSystem 创建模型渲染系统
func NewModelRenderSystem(em *ecs.EntityManager, camera *utils.Camera) *ModelRenderSystem {
	return &ModelRenderSystem{
		entityManager: em,
		camera:        camera,
	}
}

// Draw 绘制所有模型的边
func (s *ModelRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ModelComponent](s.entityManager) {
		model, _ := ecs.GetComponent[*components.ModelComponent](s.entityManager, id)
		if model.Mesh == nil {
			continue
		}

		projected := ProjectPoints(s.camera, model.Transform(), model.Mesh.Vertices)
		for _, edge := range model.Mesh.Edges {
			if edge[0] >= len(projected) || edge[1] >= len(projected) {
				continue
			}
			a, b := projected[edge[0]], projected[edge[1]]
			if !a.Visible || !b.Visible {
				continue
			}
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, wireframeColor, true)
		}
	}
}
