package systems

import (
	"log"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/game"
)

// TimedTransition 定时状态转移：进入 From 后经过 Delay 自动变为 To
type TimedTransition struct {
	From  components.MenuState
	To    components.MenuState
	Delay time.Duration
}

// RingTransitions 按钮环的定时转移表
func RingTransitions(cfg config.MenuConfig) []TimedTransition {
	return []TimedTransition{
		{From: components.MenuEntering, To: components.MenuVisible, Delay: cfg.RingEnterDelay.Std()},
		{From: components.MenuExiting, To: components.MenuHidden, Delay: cfg.RingExitDelay.Std()},
	}
}

// ContentTransitions 内容面板的定时转移表
func ContentTransitions(cfg config.MenuConfig) []TimedTransition {
	return []TimedTransition{
		{From: components.MenuEntering, To: components.MenuVisible, Delay: cfg.ContentEnterDelay.Std()},
		{From: components.MenuExiting, To: components.MenuHidden, Delay: cfg.ContentExitDelay.Std()},
	}
}

func findTransition(table []TimedTransition, from components.MenuState) (TimedTransition, bool) {
	for _, tr := range table {
		if tr.From == from {
			return tr, true
		}
	}
	return TimedTransition{}, false
}

// RotationSpeed 根据指针到环中心的距离计算旋转速度
// 中心处为 MaxRotationSpeed，到 Radius+OuterRadiusPadding 处线性降为 0，之外保持 0
func RotationSpeed(distance float64, cfg config.MenuConfig) float64 {
	outer := cfg.Radius + cfg.OuterRadiusPadding
	if outer <= 0 {
		return 0
	}
	return math.Max(0, cfg.MaxRotationSpeed*(1-math.Min(distance, outer)/outer))
}

// ButtonAngle 返回第 index 个按钮的角度（弧度）
func ButtonAngle(index, count int, rotation float64) float64 {
	if count <= 0 {
		return rotation
	}
	return 2*math.Pi*float64(index)/float64(count) + rotation
}

// RadialMenuSystem 环形菜单状态机
//
// 动作（Reveal、Click、Close）立即进入过渡状态，并在 Scheduler 上
// 按转移表安排下一个状态。任一状态机有未完成的转移时，新的动作被忽略。
type RadialMenuSystem struct {
	entityManager *ecs.EntityManager
	scheduler     *game.Scheduler
	cfg           config.MenuConfig

	menuEntity   ecs.EntityID
	ringTable    []TimedTransition
	contentTable []TimedTransition
	ringTimer    game.TimerID
	contentTimer game.TimerID

	spring harmonica.Spring

	pointerX   float64
	pointerY   float64
	pointerSet bool

	onSelect   func(index int)
	onDeselect func()
}

// NewRadialMenuSystem 创建环形菜单系统
// menuEntity 必须拥有 RadialMenuComponent
func NewRadialMenuSystem(
	em *ecs.EntityManager,
	scheduler *game.Scheduler,
	cfg config.MenuConfig,
	menuEntity ecs.EntityID,
) *RadialMenuSystem {
	return &RadialMenuSystem{
		entityManager: em,
		scheduler:     scheduler,
		cfg:           cfg,
		menuEntity:    menuEntity,
		ringTable:     RingTransitions(cfg),
		contentTable:  ContentTransitions(cfg),
		spring:        harmonica.NewSpring(harmonica.FPS(60), cfg.SpringFrequency, cfg.SpringDamping),
	}
}

// SetCallbacks 设置选中和取消选中的回调
func (s *RadialMenuSystem) SetCallbacks(onSelect func(index int), onDeselect func()) {
	s.onSelect = onSelect
	s.onDeselect = onDeselect
}

func (s *RadialMenuSystem) menu() *components.RadialMenuComponent {
	menu, _ := ecs.GetComponent[*components.RadialMenuComponent](s.entityManager, s.menuEntity)
	return menu
}

// Menu 返回菜单组件
func (s *RadialMenuSystem) Menu() *components.RadialMenuComponent {
	return s.menu()
}

// InFlight 是否有未完成的定时转移
func (s *RadialMenuSystem) InFlight() bool {
	return s.scheduler.IsPending(s.ringTimer) || s.scheduler.IsPending(s.contentTimer)
}

// Reveal 显示按钮环（hidden → entering → visible）
func (s *RadialMenuSystem) Reveal() bool {
	menu := s.menu()
	if menu == nil {
		return false
	}
	if menu.Ring != components.MenuHidden || s.InFlight() {
		log.Printf("[RadialMenu] 忽略 Reveal: ring=%v content=%v", menu.Ring, menu.Content)
		return false
	}
	s.setRing(menu, components.MenuEntering)
	return true
}

// Click 选中第 index 个菜单项
// 只在按钮环可见、内容面板隐藏且没有进行中的转移时生效
func (s *RadialMenuSystem) Click(index int) bool {
	menu := s.menu()
	if menu == nil || index < 0 || index >= menu.ItemCount {
		return false
	}
	if menu.Ring != components.MenuVisible || menu.Content != components.MenuHidden || s.InFlight() {
		log.Printf("[RadialMenu] 忽略 Click(%d): ring=%v content=%v", index, menu.Ring, menu.Content)
		return false
	}

	menu.Selection = components.Selection{Index: index, Active: true}
	menu.HoverIndex = -1
	s.setRing(menu, components.MenuExiting)
	s.setContent(menu, components.MenuEntering)

	if s.onSelect != nil {
		s.onSelect(index)
	}
	return true
}

// Close 关闭内容面板，面板隐藏后按钮环重新进入
func (s *RadialMenuSystem) Close() bool {
	menu := s.menu()
	if menu == nil {
		return false
	}
	if menu.Content != components.MenuVisible || s.InFlight() {
		log.Printf("[RadialMenu] 忽略 Close: ring=%v content=%v", menu.Ring, menu.Content)
		return false
	}

	menu.Selection.Active = false
	s.setContent(menu, components.MenuExiting)

	if s.onDeselect != nil {
		s.onDeselect()
	}
	return true
}

func (s *RadialMenuSystem) setRing(menu *components.RadialMenuComponent, state components.MenuState) {
	log.Printf("[RadialMenu] ring: %v → %v", menu.Ring, state)
	menu.Ring = state

	if tr, ok := findTransition(s.ringTable, state); ok {
		s.ringTimer = s.scheduler.After(tr.Delay, func() {
			s.setRing(menu, tr.To)
		})
	}
}

func (s *RadialMenuSystem) setContent(menu *components.RadialMenuComponent, state components.MenuState) {
	log.Printf("[RadialMenu] content: %v → %v", menu.Content, state)
	menu.Content = state

	if tr, ok := findTransition(s.contentTable, state); ok {
		s.contentTimer = s.scheduler.After(tr.Delay, func() {
			s.setContent(menu, tr.To)
			// 关闭链：面板隐藏后按钮环重新进入
			if tr.To == components.MenuHidden && menu.Ring == components.MenuHidden {
				s.setRing(menu, components.MenuEntering)
			}
		})
	}
}

// SetPointer 更新指针位置，并据此更新旋转速度
func (s *RadialMenuSystem) SetPointer(x, y float64) {
	s.pointerX, s.pointerY = x, y
	s.pointerSet = true

	if menu := s.menu(); menu != nil {
		menu.RotationSpeed = RotationSpeed(math.Hypot(x-menu.CenterX, y-menu.CenterY), s.cfg)
	}
}

// Resize 窗口尺寸变化时重新计算环中心
func (s *RadialMenuSystem) Resize(width, height int) {
	if menu := s.menu(); menu != nil {
		menu.CenterX = float64(width) / 2
		menu.CenterY = float64(height) / 2
	}
}

// HitTest 返回指针下的按钮序号，按钮环不可见或未命中时返回 -1
func (s *RadialMenuSystem) HitTest(x, y float64) int {
	menu := s.menu()
	if menu == nil || menu.Ring != components.MenuVisible {
		return -1
	}
	for _, id := range ecs.GetEntitiesWith1[*components.MenuButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.MenuButtonComponent](s.entityManager, id)
		if button.Contains(x, y, s.cfg.ButtonRadius) {
			return button.Index
		}
	}
	return -1
}

// HandlePress 处理指针按下：点中关闭按钮则关闭面板，点中菜单按钮则选中
// 返回: 是否触发了动作
func (s *RadialMenuSystem) HandlePress(x, y float64) bool {
	menu := s.menu()
	if menu == nil {
		return false
	}

	if menu.Content == components.MenuVisible {
		for _, id := range ecs.GetEntitiesWith1[*components.ContentPanelComponent](s.entityManager) {
			panel, _ := ecs.GetComponent[*components.ContentPanelComponent](s.entityManager, id)
			if panel.CloseContains(x, y) {
				return s.Close()
			}
		}
		return false
	}

	if index := s.HitTest(x, y); index >= 0 {
		return s.Click(index)
	}
	return false
}

// Update 更新悬停、旋转以及按钮和面板的弹簧动画
func (s *RadialMenuSystem) Update(deltaTime float64) {
	menu := s.menu()
	if menu == nil {
		return
	}

	menu.HoverIndex = -1
	if s.pointerSet {
		menu.HoverIndex = s.HitTest(s.pointerX, s.pointerY)
	}

	// 悬停时冻结旋转
	if menu.Ring == components.MenuVisible && !menu.Hovered() {
		menu.Rotation = math.Mod(menu.Rotation+menu.RotationSpeed, 2*math.Pi)
	}

	s.updateButtons(menu)
	s.updatePanels(menu)
}

// ButtonTargets 返回按钮的目标 Presence、Scale 和 Alpha
func (s *RadialMenuSystem) ButtonTargets(menu *components.RadialMenuComponent, index int) (presence, scale, alpha float64) {
	if menu.Ring != components.MenuVisible {
		return 0, s.cfg.HiddenScale, 0
	}
	if menu.HoverIndex == index {
		return 1, s.cfg.HoverScale, 1
	}
	return 1, s.cfg.RestScale, 1
}

func (s *RadialMenuSystem) updateButtons(menu *components.RadialMenuComponent) {
	for _, id := range ecs.GetEntitiesWith1[*components.MenuButtonComponent](s.entityManager) {
		b, _ := ecs.GetComponent[*components.MenuButtonComponent](s.entityManager, id)

		presence, scale, alpha := s.ButtonTargets(menu, b.Index)
		b.Presence, b.PresenceVel = s.spring.Update(b.Presence, b.PresenceVel, presence)
		b.Scale, b.ScaleVel = s.spring.Update(b.Scale, b.ScaleVel, scale)
		b.Alpha, b.AlphaVel = s.spring.Update(b.Alpha, b.AlphaVel, alpha)

		angle := ButtonAngle(b.Index, menu.ItemCount, menu.Rotation)
		r := menu.Radius * b.Presence
		b.X = menu.CenterX + r*math.Cos(angle)
		b.Y = menu.CenterY + r*math.Sin(angle)
	}
}

func (s *RadialMenuSystem) updatePanels(menu *components.RadialMenuComponent) {
	scale, alpha := s.cfg.HiddenScale, 0.0
	if menu.Content == components.MenuVisible {
		scale, alpha = 1, 1
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ContentPanelComponent](s.entityManager) {
		p, _ := ecs.GetComponent[*components.ContentPanelComponent](s.entityManager, id)
		p.Scale, p.ScaleVel = s.spring.Update(p.Scale, p.ScaleVel, scale)
		p.Alpha, p.AlphaVel = s.spring.Update(p.Alpha, p.AlphaVel, alpha)

		p.CenterX, p.CenterY = menu.CenterX, menu.CenterY
		p.CloseX = p.CenterX + p.Width/2 - p.CloseRadius - 8
		p.CloseY = p.CenterY - p.Height/2 + p.CloseRadius + 8
	}
}
