package modules

import (
	"fmt"
	"log"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/entities"
	"github.com/digitorumflex/folio/pkg/game"
	"github.com/digitorumflex/folio/pkg/gate"
	"github.com/digitorumflex/folio/pkg/systems"
	"github.com/digitorumflex/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 输入框字体大小
const gateFontSize = 18.0

// GateModule 密码门模块
// 封装密码输入框、虚拟键盘（移动端）和校验控制器：
//   - 输入框文本变化时通知控制器（抖动、自动提交）
//   - 回车或虚拟键盘 Enter 提交
//   - 控制器的提示信息显示在输入框下方
//   - 校验通过后隐藏输入框
type GateModule struct {
	entityManager *ecs.EntityManager

	controller *gate.Controller

	textInputSystem       *systems.TextInputSystem
	textInputRenderSystem *systems.TextInputRenderSystem
	keyboardSystem        *systems.VirtualKeyboardSystem
	keyboardRenderSystem  *systems.VirtualKeyboardRenderSystem

	inputEntity    ecs.EntityID
	keyboardEntity ecs.EntityID
	mobile         bool

	hidden bool
}

// GateCallbacks 密码门回调函数集合
type GateCallbacks struct {
	OnShake   func() // 每次输入
	OnGranted func() // 校验通过
	OnDenied  func() // 密码错误
	OnFailed  func() // 网络错误或超时
}

// NewGateModule 创建密码门模块
//
// 参数:
//   - em: EntityManager 实例
//   - rm: ResourceManager 实例（加载字体）
//   - scheduler: 虚拟时钟（超时和防抖）
//   - verifier: 远程校验器
//   - cfg: 密码门配置
//   - windowWidth, windowHeight: 窗口尺寸
//   - callbacks: 回调函数集合
//
// 返回:
//   - *GateModule: 新创建的模块实例
//   - error: 字体加载失败
func NewGateModule(
	em *ecs.EntityManager,
	rm *game.ResourceManager,
	scheduler *game.Scheduler,
	verifier gate.Verifier,
	cfg config.GateConfig,
	windowWidth, windowHeight int,
	callbacks GateCallbacks,
) (*GateModule, error) {
	font, err := rm.LoadFont(gateFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load gate font: %w", err)
	}

	m := &GateModule{
		entityManager:         em,
		textInputSystem:       systems.NewTextInputSystem(em),
		textInputRenderSystem: systems.NewTextInputRenderSystem(em, font),
		mobile:                utils.IsMobile(),
	}

	m.controller = gate.NewController(verifier, scheduler, cfg, gate.Callbacks{
		OnShake: callbacks.OnShake,
		OnGranted: func() {
			m.hide()
			if callbacks.OnGranted != nil {
				callbacks.OnGranted()
			}
		},
		OnDenied: callbacks.OnDenied,
		OnFailed: func(err error) {
			if callbacks.OnFailed != nil {
				callbacks.OnFailed()
			}
		},
	})

	m.inputEntity = entities.NewPasswordInput(em, cfg, windowWidth, windowHeight)

	if m.mobile {
		m.keyboardSystem = systems.NewVirtualKeyboardSystem(em)
		m.keyboardRenderSystem = systems.NewVirtualKeyboardRenderSystem(em, font)
		m.keyboardEntity = entities.NewVirtualKeyboard(em, m.inputEntity, windowWidth, windowHeight)
	}

	log.Printf("[GateModule] 初始化完成 (endpoint=%s, mobile=%v)", cfg.Endpoint, m.mobile)
	return m, nil
}

func (m *GateModule) input() *components.TextInputComponent {
	input, _ := ecs.GetComponent[*components.TextInputComponent](m.entityManager, m.inputEntity)
	return input
}

// Controller 返回校验控制器
func (m *GateModule) Controller() *gate.Controller {
	return m.controller
}

// IsGranted 是否已通过校验
func (m *GateModule) IsGranted() bool {
	return m.controller.State() == gate.StateGranted
}

// ConsumeInput 本帧点击是否被虚拟键盘消费
func (m *GateModule) ConsumeInput() bool {
	return m.keyboardSystem != nil && m.keyboardSystem.ConsumeInput()
}

// Update 更新输入框并把输入事件交给控制器
func (m *GateModule) Update(deltaTime float64) {
	if m.hidden {
		m.controller.Update()
		return
	}

	m.textInputSystem.Update(deltaTime)
	if m.keyboardSystem != nil {
		m.keyboardSystem.Update(deltaTime)
	}
	m.process()
}

// process 把输入框的标记交给控制器，再同步提示信息
func (m *GateModule) process() {
	input := m.input()
	if input == nil {
		return
	}

	if input.Changed {
		m.controller.OnInput(input.Text)
	}
	if input.Submitted {
		m.controller.Submit(input.Text)
	}

	m.controller.Update()
	input.Message = m.controller.Message()
}

func (m *GateModule) hide() {
	m.hidden = true
	if input := m.input(); input != nil {
		input.IsFocused = false
		input.Message = ""
	}
	if m.keyboardSystem != nil {
		m.keyboardSystem.HideKeyboard()
	}
}

// Resize 窗口尺寸变化时重新居中输入框
func (m *GateModule) Resize(width, height int) {
	if input := m.input(); input != nil {
		entities.CenterTextInput(input, width, height)
	}
	if m.keyboardSystem != nil {
		m.keyboardSystem.Resize(width, height)
	}
}

// Draw 绘制输入框和虚拟键盘
func (m *GateModule) Draw(screen *ebiten.Image) {
	if m.hidden {
		return
	}
	if input := m.input(); input != nil {
		m.textInputRenderSystem.DrawInputBox(screen, input)
	}
	if m.keyboardRenderSystem != nil {
		m.keyboardRenderSystem.Draw(screen)
	}
}
