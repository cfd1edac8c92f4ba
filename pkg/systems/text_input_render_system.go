package systems

import (
	"image/color"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	inputBorderColor      = color.RGBA{R: 200, G: 200, B: 215, A: 255}
	inputFillColor        = color.RGBA{R: 10, G: 10, B: 14, A: 220}
	inputTextColor        = color.RGBA{R: 240, G: 240, B: 245, A: 255}
	inputPlaceholderColor = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	inputMessageColor     = color.RGBA{R: 230, G: 110, B: 110, A: 255}
)

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制输入框边框、背景、文本、光标和下方的提示信息
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager, font *text.GoTextFace) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
		font:          font,
	}
}

// Draw 绘制所有文本输入框
func (s *TextInputRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		s.DrawInputBox(screen, input)
	}
}

// DrawInputBox 绘制单个输入框
func (s *TextInputRenderSystem) DrawInputBox(screen *ebiten.Image, input *components.TextInputComponent) {
	x, y := float32(input.X), float32(input.Y)
	w, h := float32(input.Width), float32(input.Height)

	vector.DrawFilledRect(screen, x, y, w, h, inputFillColor, true)
	vector.StrokeRect(screen, x, y, w, h, 1, inputBorderColor, true)

	textX := input.X + input.PaddingLeft
	textY := input.Y + input.Height/2

	display := input.DisplayText()
	if display == "" && input.Placeholder != "" {
		s.drawText(screen, input.Placeholder, textX, textY, inputPlaceholderColor, text.AlignStart)
	} else {
		s.drawText(screen, display, textX, textY, inputTextColor, text.AlignStart)
	}

	if input.IsFocused && input.CursorVisible {
		s.drawCursor(screen, input, textX, textY)
	}

	if input.Message != "" {
		s.drawText(screen, input.Message, input.X+input.Width/2, input.Y+input.Height+20, inputMessageColor, text.AlignCenter)
	}
}

func (s *TextInputRenderSystem) drawText(screen *ebiten.Image, txt string, x, y float64, clr color.Color, align text.Align) {
	if s.font == nil || txt == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, txt, s.font, op)
}

// drawCursor 光标位于第 CursorPosition 个字符之后
func (s *TextInputRenderSystem) drawCursor(screen *ebiten.Image, input *components.TextInputComponent, textX, textY float64) {
	if s.font == nil {
		return
	}

	runes := []rune(input.DisplayText())
	pos := clampInt(input.CursorPosition, 0, len(runes))

	var width float64
	if pos > 0 {
		width, _ = text.Measure(string(runes[:pos]), s.font, 0)
	}

	cursorX := float32(textX + width)
	top := float32(textY - input.Height/4)
	bottom := float32(textY + input.Height/4)
	vector.StrokeLine(screen, cursorX, top, cursorX, bottom, 2, inputTextColor, true)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
