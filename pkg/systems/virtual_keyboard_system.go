package systems

import (
	"log"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/entities"
	"github.com/digitorumflex/folio/pkg/utils"
)

// 按键高亮持续时间（秒）
const keyPressHighlightDuration = 0.1

// VirtualKeyboardSystem 虚拟键盘系统
// 处理屏幕键盘的触摸输入，把按键写入目标输入框
type VirtualKeyboardSystem struct {
	entityManager *ecs.EntityManager
}

// NewVirtualKeyboardSystem 创建虚拟键盘系统
func NewVirtualKeyboardSystem(em *ecs.EntityManager) *VirtualKeyboardSystem {
	return &VirtualKeyboardSystem{
		entityManager: em,
	}
}

// Update 更新虚拟键盘系统
func (s *VirtualKeyboardSystem) Update(deltaTime float64) {
	s.UpdateWithInput(deltaTime, utils.GetInputState())
}

// UpdateWithInput 使用给定的输入状态更新（便于测试）
func (s *VirtualKeyboardSystem) UpdateWithInput(deltaTime float64, state utils.InputState) {
	for _, id := range ecs.GetEntitiesWith1[*components.VirtualKeyboardComponent](s.entityManager) {
		kb, _ := ecs.GetComponent[*components.VirtualKeyboardComponent](s.entityManager, id)

		kb.InputConsumedThisFrame = false

		if kb.PressedKey != "" {
			kb.PressedTimer -= deltaTime
			if kb.PressedTimer <= 0 {
				kb.PressedKey = ""
				kb.PressedTimer = 0
			}
		}

		if !state.JustPressed {
			continue
		}
		x, y := float64(state.X), float64(state.Y)

		if !kb.IsVisible {
			s.checkInputBoxClick(kb, x, y)
			continue
		}
		s.handlePress(kb, x, y)
	}
}

func (s *VirtualKeyboardSystem) target(kb *components.VirtualKeyboardComponent) *components.TextInputComponent {
	input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, kb.TargetInputEntity)
	if !ok {
		return nil
	}
	return input
}

// checkInputBoxClick 点击输入框时重新显示键盘
func (s *VirtualKeyboardSystem) checkInputBoxClick(kb *components.VirtualKeyboardComponent, x, y float64) {
	input := s.target(kb)
	if input == nil {
		return
	}
	if x >= input.X && x <= input.X+input.Width && y >= input.Y && y <= input.Y+input.Height {
		kb.IsVisible = true
		kb.InputConsumedThisFrame = true
		input.IsFocused = true
		log.Printf("[VirtualKeyboardSystem] 点击输入框，重新显示键盘")
	}
}

// handlePress 键盘可见时消费所有点击：点中按键则输入，点在键盘外则收起
func (s *VirtualKeyboardSystem) handlePress(kb *components.VirtualKeyboardComponent, x, y float64) {
	kb.InputConsumedThisFrame = true

	for _, key := range entities.GetAllKeys(kb) {
		if key.Contains(x, y) {
			kb.PressedKey = key.Action
			kb.PressedTimer = keyPressHighlightDuration
			if input := s.target(kb); input != nil {
				ApplyKey(kb, input, key.Action)
			}
			return
		}
	}

	if y < kb.KeyboardY-VirtualKeyboardMargin {
		log.Printf("[VirtualKeyboardSystem] 点击键盘外部，收起键盘")
		kb.IsVisible = false
	}
}

// VirtualKeyboardMargin 键盘背景的上边距
const VirtualKeyboardMargin = 10.0

// ApplyKey 把一次按键应用到输入框
func ApplyKey(kb *components.VirtualKeyboardComponent, input *components.TextInputComponent, action string) {
	switch action {
	case components.KeyActionShift:
		kb.ShiftActive = !kb.ShiftActive
	case components.KeyActionBackspace:
		input.DeleteBefore()
	case components.KeyActionSpace:
		input.Insert(" ")
	case components.KeyActionDone:
		input.Submitted = true
	case components.KeyActionNumeric:
		kb.NumericMode = true
	case components.KeyActionAlpha:
		kb.NumericMode = false
	default:
		input.Insert(FilterInput(action))
	}
}

// Resize 屏幕尺寸变化时重新布局
func (s *VirtualKeyboardSystem) Resize(width, height int) {
	for _, id := range ecs.GetEntitiesWith1[*components.VirtualKeyboardComponent](s.entityManager) {
		kb, _ := ecs.GetComponent[*components.VirtualKeyboardComponent](s.entityManager, id)
		entities.LayoutVirtualKeyboard(kb, width, height)
	}
}

// ConsumeInput 本帧的点击是否已被虚拟键盘消费
func (s *VirtualKeyboardSystem) ConsumeInput() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.VirtualKeyboardComponent](s.entityManager) {
		kb, _ := ecs.GetComponent[*components.VirtualKeyboardComponent](s.entityManager, id)
		if kb.InputConsumedThisFrame {
			return true
		}
	}
	return false
}

// HideKeyboard 隐藏所有虚拟键盘
func (s *VirtualKeyboardSystem) HideKeyboard() {
	for _, id := range ecs.GetEntitiesWith1[*components.VirtualKeyboardComponent](s.entityManager) {
		kb, _ := ecs.GetComponent[*components.VirtualKeyboardComponent](s.entityManager, id)
		kb.IsVisible = false
	}
}
