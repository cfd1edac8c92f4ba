package entities

import (
	"math"
	"math/rand"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
)

// ContentPanelHeight 内容面板高度（像素）
const ContentPanelHeight = 440.0

// RadialMenuEntities 环形菜单相关实体
type RadialMenuEntities struct {
	Menu    ecs.EntityID   // RadialMenuComponent
	Buttons []ecs.EntityID // MenuButtonComponent，按序号排列
	Panel   ecs.EntityID   // ContentPanelComponent
}

// NewRadialMenu 创建环形菜单、按钮和内容面板实体
//
// 参数：
//   - em: 实体管理器
//   - items: 菜单项（每项一个按钮）
//   - cfg: 菜单配置
//   - rng: 随机源（初始旋转角）
//   - screenWidth, screenHeight: 屏幕尺寸（计算环中心）
//
// 初始状态：环和面板都隐藏，旋转角在 [0, 2π) 内随机
func NewRadialMenu(
	em *ecs.EntityManager,
	items []config.MenuItem,
	cfg config.MenuConfig,
	rng *rand.Rand,
	screenWidth, screenHeight int,
) RadialMenuEntities {
	result := RadialMenuEntities{Menu: em.CreateEntity()}

	cx, cy := float64(screenWidth)/2, float64(screenHeight)/2
	ecs.AddComponent(em, result.Menu, &components.RadialMenuComponent{
		Ring:          components.MenuHidden,
		Content:       components.MenuHidden,
		Rotation:      rng.Float64() * 2 * math.Pi,
		RotationSpeed: cfg.BaseRotationSpeed,
		HoverIndex:    -1,
		CenterX:       cx,
		CenterY:       cy,
		Radius:        cfg.Radius,
		ItemCount:     len(items),
	})

	for i, item := range items {
		button := em.CreateEntity()
		ecs.AddComponent(em, button, &components.MenuButtonComponent{
			Index: i,
			Label: item.Label,
			X:     cx,
			Y:     cy,
			Scale: cfg.HiddenScale,
		})
		result.Buttons = append(result.Buttons, button)
	}

	result.Panel = em.CreateEntity()
	ecs.AddComponent(em, result.Panel, &components.ContentPanelComponent{
		Scale:       cfg.HiddenScale,
		Width:       cfg.PanelWidth,
		Height:      ContentPanelHeight,
		CloseRadius: 16,
	})

	return result
}
