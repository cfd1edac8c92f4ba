package systems

import (
	"image/color"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	pointColor = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	lineColor  = color.RGBA{R: 160, G: 160, B: 175, A: 160}
)

// ScreenPoint 投影后的屏幕坐标
type ScreenPoint struct {
	X, Y    float64
	Visible bool // 是否位于相机前方
}

// ProjectPoints 把点投影到屏幕
func ProjectPoints(camera *utils.Camera, model mgl64.Mat4, points []mgl64.Vec3) []ScreenPoint {
	out := make([]ScreenPoint, len(points))
	for i, p := range points {
		x, y, ok := camera.ProjectWith(model, p)
		out[i] = ScreenPoint{X: x, Y: y, Visible: ok}
	}
	return out
}

// PointCloudRenderSystem 点云渲染系统
// 绘制闭合连线和每个点
type PointCloudRenderSystem struct {
	entityManager *ecs.EntityManager
	camera        *utils.Camera
	pointRadius   float32
	lineWidth     float32
}

// NewPointCloudRenderSystem 创建点云渲染系统
func NewPointCloudRenderSystem(em *ecs.EntityManager, camera *utils.Camera, cfg config.ParticleConfig) *PointCloudRenderSystem {
	return &PointCloudRenderSystem{
		entityManager: em,
		camera:        camera,
		pointRadius:   float32(cfg.PointRadius),
		lineWidth:     float32(cfg.LineWidth),
	}
}

// Draw 绘制所有点云
func (s *PointCloudRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.PointCloudComponent](s.entityManager) {
		cloud, _ := ecs.GetComponent[*components.PointCloudComponent](s.entityManager, id)
		if len(cloud.LineLoop) == 0 {
			continue
		}

		projected := ProjectPoints(s.camera, mgl64.Ident4(), cloud.LineLoop)
		for i := 1; i < len(projected); i++ {
			a, b := projected[i-1], projected[i]
			if !a.Visible || !b.Visible {
				continue
			}
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), s.lineWidth, lineColor, true)
		}

		// 最后一个点与第一个点重合
		for _, p := range projected[:len(projected)-1] {
			if p.Visible {
				vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), s.pointRadius, pointColor, true)
			}
		}
	}
}
