package systems

import (
	"image/color"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	keyboardBackgroundColor = color.RGBA{R: 30, G: 30, B: 40, A: 230}
	keyNormalColor          = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	keyPressedColor         = color.RGBA{R: 40, G: 40, B: 50, A: 255}
	keySpecialColor         = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	keyShiftActiveColor     = color.RGBA{R: 80, G: 100, B: 120, A: 255}
	keyDoneColor            = color.RGBA{R: 60, G: 100, B: 60, A: 255}
	keyBorderColor          = color.RGBA{R: 100, G: 100, B: 110, A: 255}
	keyTextColor            = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// VirtualKeyboardRenderSystem 虚拟键盘渲染系统
type VirtualKeyboardRenderSystem struct {
	entityManager *ecs.EntityManager
	keyFont       *text.GoTextFace
}

// NewVirtualKeyboardRenderSystem 创建虚拟键盘渲染系统
func NewVirtualKeyboardRenderSystem(em *ecs.EntityManager, font *text.GoTextFace) *VirtualKeyboardRenderSystem {
	return &VirtualKeyboardRenderSystem{
		entityManager: em,
		keyFont:       font,
	}
}

// Draw 渲染可见的虚拟键盘
func (s *VirtualKeyboardRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.VirtualKeyboardComponent](s.entityManager) {
		kb, _ := ecs.GetComponent[*components.VirtualKeyboardComponent](s.entityManager, id)
		if kb.IsVisible {
			s.drawKeyboard(screen, kb)
		}
	}
}

func (s *VirtualKeyboardRenderSystem) drawKeyboard(screen *ebiten.Image, kb *components.VirtualKeyboardComponent) {
	top := kb.KeyboardY - VirtualKeyboardMargin
	vector.DrawFilledRect(screen, 0, float32(top), float32(kb.ScreenWidth), float32(kb.ScreenHeight-top), keyboardBackgroundColor, true)

	for _, key := range entities.GetAllKeys(kb) {
		x, y := float32(key.X), float32(key.Y)
		w, h := float32(key.Width), float32(key.Height)
		vector.DrawFilledRect(screen, x, y, w, h, keyBackgroundColor(kb, key), true)
		vector.StrokeRect(screen, x, y, w, h, 1, keyBorderColor, true)

		if s.keyFont == nil || key.Label == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(key.X+key.Width/2, key.Y+key.Height/2)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(keyTextColor)
		text.Draw(screen, key.Label, s.keyFont, op)
	}
}

// keyBackgroundColor 按键背景颜色
func keyBackgroundColor(kb *components.VirtualKeyboardComponent, key components.KeyInfo) color.RGBA {
	if kb.PressedKey == key.Action {
		return keyPressedColor
	}

	switch key.Action {
	case components.KeyActionShift:
		if kb.ShiftActive {
			return keyShiftActiveColor
		}
		return keySpecialColor
	case components.KeyActionDone:
		return keyDoneColor
	case components.KeyActionNumeric, components.KeyActionAlpha, components.KeyActionBackspace:
		return keySpecialColor
	default:
		return keyNormalColor
	}
}
