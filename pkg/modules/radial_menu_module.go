package modules

import (
	"log"
	"math/rand"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/entities"
	"github.com/digitorumflex/folio/pkg/game"
	"github.com/digitorumflex/folio/pkg/systems"
	"github.com/digitorumflex/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// RadialMenuModule 环形菜单模块
// 封装菜单实体、状态机系统和渲染，选中时把菜单项内容填入面板
type RadialMenuModule struct {
	entityManager *ecs.EntityManager

	system       *systems.RadialMenuSystem
	renderSystem *systems.RadialMenuRenderSystem
	ents         entities.RadialMenuEntities
	items        []config.MenuItem

	onSelect   func(index int, item config.MenuItem)
	onDeselect func()
}

// RadialMenuCallbacks 环形菜单回调函数集合
type RadialMenuCallbacks struct {
	OnSelect   func(index int, item config.MenuItem) // 选中菜单项
	OnDeselect func()                                // 关闭内容面板
}

// NewRadialMenuModule 创建环形菜单模块
// 菜单初始隐藏，调用 Reveal 后出现
func NewRadialMenuModule(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	scheduler *game.Scheduler,
	items []config.MenuItem,
	cfg config.MenuConfig,
	rng *rand.Rand,
	windowWidth, windowHeight int,
	callbacks RadialMenuCallbacks,
) *RadialMenuModule {
	m := &RadialMenuModule{
		entityManager: em,
		items:         items,
		onSelect:      callbacks.OnSelect,
		onDeselect:    callbacks.OnDeselect,
	}

	m.ents = entities.NewRadialMenu(em, items, cfg, rng, windowWidth, windowHeight)
	m.system = systems.NewRadialMenuSystem(em, scheduler, cfg, m.ents.Menu)
	m.system.SetCallbacks(m.handleSelect, m.handleDeselect)
	if rm != nil {
		m.renderSystem = systems.NewRadialMenuRenderSystem(em, rm, cfg)
	}

	log.Printf("[RadialMenuModule] 初始化完成 (%d 个菜单项)", len(items))
	return m
}

// System 返回菜单状态机
func (m *RadialMenuModule) System() *systems.RadialMenuSystem {
	return m.system
}

// Reveal 显示菜单
func (m *RadialMenuModule) Reveal() bool {
	return m.system.Reveal()
}

func (m *RadialMenuModule) handleSelect(index int) {
	item := m.items[index]
	if panel, ok := ecs.GetComponent[*components.ContentPanelComponent](m.entityManager, m.ents.Panel); ok {
		panel.ItemIndex = index
		panel.Heading = item.Heading
		panel.Paragraphs = utils.Paragraphs(item.Body)
	}
	log.Printf("[RadialMenuModule] 选中 %d (%s)", index, item.Label)

	if m.onSelect != nil {
		m.onSelect(index, item)
	}
}

func (m *RadialMenuModule) handleDeselect() {
	if m.onDeselect != nil {
		m.onDeselect()
	}
}

// HandleInput 处理指针移动和点击
// 返回: 点击是否触发了菜单动作
func (m *RadialMenuModule) HandleInput(state utils.InputState) bool {
	x, y := float64(state.X), float64(state.Y)
	m.system.SetPointer(x, y)
	if !state.JustPressed {
		return false
	}
	return m.system.HandlePress(x, y)
}

// Update 推进悬停、旋转和弹簧动画
func (m *RadialMenuModule) Update(deltaTime float64) {
	m.system.Update(deltaTime)
}

// Resize 窗口尺寸变化时重新计算环中心
func (m *RadialMenuModule) Resize(width, height int) {
	m.system.Resize(width, height)
}

// Draw 绘制按钮和内容面板
func (m *RadialMenuModule) Draw(screen *ebiten.Image) {
	if m.renderSystem != nil {
		m.renderSystem.Draw(screen)
	}
}
