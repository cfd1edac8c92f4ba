package systems

import (
	"unicode"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 光标闪烁间隔（秒）
const cursorBlinkInterval = 0.5

// TextInputSystem 文本输入系统
// 处理文本输入框的键盘输入、光标闪烁，并设置 Changed/Submitted 标记
type TextInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager)

	for _, entityID := range entities {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		// 标记只保留一帧
		input.Changed = false
		input.Submitted = false

		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		UpdateCursorBlink(input, deltaTime)

		// 移动端：由 VirtualKeyboardSystem 处理输入
		if utils.IsMobile() {
			continue
		}

		s.handleKeyboardInput(input)
	}
}

// UpdateCursorBlink 推进光标闪烁计时
func UpdateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= cursorBlinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// repeating 第 1 帧立即响应，按住 30 帧后每 3 帧响应一次
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	if runes := ebiten.AppendInputChars(nil); len(runes) > 0 {
		input.Insert(FilterInput(string(runes)))
	}

	if repeating(ebiten.KeyBackspace) {
		input.DeleteBefore()
	}
	if repeating(ebiten.KeyDelete) {
		input.DeleteAfter()
	}
	if repeating(ebiten.KeyArrowLeft) {
		input.MoveCursor(-1)
	}
	if repeating(ebiten.KeyArrowRight) {
		input.MoveCursor(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		input.CursorHome()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		input.CursorEnd()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		input.Submitted = true
	}
}

// FilterInput 去掉控制字符，保留所有可打印字符
func FilterInput(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsPrint(r) {
			out = append(out, r)
		}
	}
	return string(out)
}
