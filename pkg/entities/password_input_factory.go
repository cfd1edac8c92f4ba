package entities

import (
	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
)

// 密码输入框尺寸（像素）
const (
	PasswordInputWidth  = 320.0
	PasswordInputHeight = 44.0
)

// NewPasswordInput 创建密码输入框实体
// 输入框位于屏幕中心，默认获得焦点
func NewPasswordInput(em *ecs.EntityManager, cfg config.GateConfig, screenWidth, screenHeight int) ecs.EntityID {
	entity := em.CreateEntity()
	input := &components.TextInputComponent{
		Width:         PasswordInputWidth,
		Height:        PasswordInputHeight,
		MaxLength:     cfg.MaxLength,
		Placeholder:   "password",
		Masked:        true,
		IsFocused:     true,
		CursorVisible: true,
		PaddingLeft:   12,
		PaddingTop:    12,
	}
	CenterTextInput(input, screenWidth, screenHeight)
	ecs.AddComponent(em, entity, input)
	return entity
}

// CenterTextInput 把输入框放到屏幕中心
func CenterTextInput(input *components.TextInputComponent, screenWidth, screenHeight int) {
	input.X = (float64(screenWidth) - input.Width) / 2
	input.Y = (float64(screenHeight) - input.Height) / 2
}
