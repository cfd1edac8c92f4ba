package entities

import (
	"log"
	"math"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/ecs"
)

// 虚拟键盘布局常量（像素）
const (
	VirtualKeyboardKeyWidth  = 65.0
	VirtualKeyboardKeyHeight = 42.0
	VirtualKeyboardSpacing   = 5.0
	VirtualKeyboardPadding   = 10.0
)

// NewVirtualKeyboard 创建虚拟键盘实体并绑定到目标输入框
// 仅在移动端创建，初始可见
func NewVirtualKeyboard(em *ecs.EntityManager, target ecs.EntityID, screenWidth, screenHeight int) ecs.EntityID {
	entity := em.CreateEntity()

	kb := &components.VirtualKeyboardComponent{
		IsVisible:         true,
		TargetInputEntity: target,
		KeyHeight:         VirtualKeyboardKeyHeight,
		KeySpacing:        VirtualKeyboardSpacing,
	}
	LayoutVirtualKeyboard(kb, screenWidth, screenHeight)
	ecs.AddComponent(em, entity, kb)

	log.Printf("[VirtualKeyboardFactory] 创建虚拟键盘 (ID=%d, keyboardY=%.1f)", entity, kb.KeyboardY)
	return entity
}

// LayoutVirtualKeyboard 根据屏幕尺寸计算按键宽度和键盘位置
// 最宽的一行（10 个按键）需要放进屏幕宽度
func LayoutVirtualKeyboard(kb *components.VirtualKeyboardComponent, screenWidth, screenHeight int) {
	kb.ScreenWidth = float64(screenWidth)
	kb.ScreenHeight = float64(screenHeight)

	available := kb.ScreenWidth - 2*VirtualKeyboardPadding - 9*kb.KeySpacing
	kb.KeyWidth = math.Max(1, math.Min(VirtualKeyboardKeyWidth, available/10))

	rows := float64(len(components.KeyboardLayoutLower))
	height := rows*kb.KeyHeight + (rows-1)*kb.KeySpacing
	kb.KeyboardY = kb.ScreenHeight - height - VirtualKeyboardPadding
}

// CalculateKeyboardLayout 计算当前模式下每一行按键的位置和尺寸
func CalculateKeyboardLayout(kb *components.VirtualKeyboardComponent) [][]components.KeyInfo {
	layout := kb.CurrentLayout()
	result := make([][]components.KeyInfo, len(layout))
	rowY := kb.KeyboardY

	for rowIdx, row := range layout {
		rowKeys := make([]components.KeyInfo, len(row))

		// 每行居中
		totalWidth := float64(len(row)-1) * kb.KeySpacing
		for _, action := range row {
			totalWidth += kb.KeyWidth * components.GetKeyWidthFactor(action)
		}
		keyX := (kb.ScreenWidth - totalWidth) / 2

		for keyIdx, action := range row {
			factor := components.GetKeyWidthFactor(action)
			width := kb.KeyWidth * factor
			rowKeys[keyIdx] = components.KeyInfo{
				Label:       components.GetKeyLabel(action),
				Action:      action,
				X:           keyX,
				Y:           rowY,
				Width:       width,
				Height:      kb.KeyHeight,
				WidthFactor: factor,
			}
			keyX += width + kb.KeySpacing
		}

		result[rowIdx] = rowKeys
		rowY += kb.KeyHeight + kb.KeySpacing
	}

	return result
}

// GetAllKeys 当前布局的所有按键（扁平化）
func GetAllKeys(kb *components.VirtualKeyboardComponent) []components.KeyInfo {
	var all []components.KeyInfo
	for _, row := range CalculateKeyboardLayout(kb) {
		all = append(all, row...)
	}
	return all
}
