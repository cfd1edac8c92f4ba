package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/game"
	"github.com/digitorumflex/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 字体大小
const (
	menuLabelFontSize   = 14.0
	panelHeadingSize    = 26.0
	panelBodyFontSize   = 16.0
	panelPadding        = 28.0
	panelParagraphSpace = 12.0
)

var (
	buttonFillColor   = color.RGBA{R: 20, G: 20, B: 28, A: 255}
	buttonBorderColor = color.RGBA{R: 200, G: 200, B: 215, A: 255}
	menuTextColor     = color.RGBA{R: 240, G: 240, B: 245, A: 255}
	panelFillColor    = color.RGBA{R: 14, G: 14, B: 20, A: 255}
	panelBorderColor  = color.RGBA{R: 90, G: 90, B: 110, A: 255}
)

// fade 按 alpha 缩放颜色（RGBA 为预乘格式）
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := utils.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// RadialMenuRenderSystem 绘制环形菜单按钮和内容面板
type RadialMenuRenderSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.MenuConfig

	labelFont   *text.GoTextFace
	headingFont *text.GoTextFace
	bodyFont    *text.GoTextFace

	// 换行结果缓存，面板宽度或菜单项变化时失效
	wrapped      [][]string
	wrappedItem  int
	wrappedWidth float64
}

// NewRadialMenuRenderSystem 创建环形菜单渲染系统
func NewRadialMenuRenderSystem(em *ecs.EntityManager, rm *game.ResourceManager, cfg config.MenuConfig) *RadialMenuRenderSystem {
	s := &RadialMenuRenderSystem{
		entityManager: em,
		cfg:           cfg,
		wrappedItem:   -1,
	}

	var err error
	if s.labelFont, err = rm.LoadFont(menuLabelFontSize); err != nil {
		log.Printf("[RadialMenuRenderSystem] 加载字体失败: %v", err)
	}
	s.headingFont, _ = rm.LoadFont(panelHeadingSize)
	s.bodyFont, _ = rm.LoadFont(panelBodyFontSize)
	return s
}

// Draw 绘制按钮和面板
func (s *RadialMenuRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.MenuButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.MenuButtonComponent](s.entityManager, id)
		s.drawButton(screen, button)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ContentPanelComponent](s.entityManager) {
		panel, _ := ecs.GetComponent[*components.ContentPanelComponent](s.entityManager, id)
		s.drawPanel(screen, panel)
	}
}

func (s *RadialMenuRenderSystem) drawButton(screen *ebiten.Image, b *components.MenuButtonComponent) {
	if b.Alpha <= 0.01 {
		return
	}

	r := float32(s.cfg.ButtonRadius * math.Max(0, b.Scale))
	x, y := float32(b.X), float32(b.Y)
	vector.DrawFilledCircle(screen, x, y, r, fade(buttonFillColor, b.Alpha), true)
	vector.StrokeCircle(screen, x, y, r, 1.5, fade(buttonBorderColor, b.Alpha), true)

	if s.labelFont == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(b.X, b.Y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(menuTextColor)
	op.ColorScale.ScaleAlpha(float32(utils.Clamp(b.Alpha, 0, 1)))
	text.Draw(screen, b.Label, s.labelFont, op)
}

// panelLines 返回面板正文的换行结果
func (s *RadialMenuRenderSystem) panelLines(panel *components.ContentPanelComponent) [][]string {
	width := panel.Width - 2*panelPadding
	if s.wrappedItem == panel.ItemIndex && s.wrappedWidth == width && s.wrapped != nil {
		return s.wrapped
	}

	s.wrapped = s.wrapped[:0]
	for _, paragraph := range panel.Paragraphs {
		s.wrapped = append(s.wrapped, utils.WrapText(paragraph, s.bodyFont, width))
	}
	s.wrappedItem = panel.ItemIndex
	s.wrappedWidth = width
	return s.wrapped
}

func (s *RadialMenuRenderSystem) drawPanel(screen *ebiten.Image, panel *components.ContentPanelComponent) {
	if panel.Alpha <= 0.01 {
		return
	}

	// 以面板中心为原点缩放
	cx, cy := panel.CenterX, panel.CenterY
	w, h := panel.Width*panel.Scale, panel.Height*panel.Scale
	left, top := cx-w/2, cy-h/2

	vector.DrawFilledRect(screen, float32(left), float32(top), float32(w), float32(h), fade(panelFillColor, panel.Alpha), true)
	vector.StrokeRect(screen, float32(left), float32(top), float32(w), float32(h), 1, fade(panelBorderColor, panel.Alpha), true)

	// 关闭按钮（×）
	cr := float32(panel.CloseRadius * panel.Scale * 0.5)
	closeX := float32(cx + (panel.CloseX-cx)*panel.Scale)
	closeY := float32(cy + (panel.CloseY-cy)*panel.Scale)
	vector.StrokeLine(screen, closeX-cr, closeY-cr, closeX+cr, closeY+cr, 2, fade(menuTextColor, panel.Alpha), true)
	vector.StrokeLine(screen, closeX-cr, closeY+cr, closeX+cr, closeY-cr, 2, fade(menuTextColor, panel.Alpha), true)

	if s.headingFont == nil || s.bodyFont == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(panelPadding, panelPadding)
	op.GeoM.Scale(panel.Scale, panel.Scale)
	op.GeoM.Translate(left, top)
	op.ColorScale.ScaleWithColor(menuTextColor)
	op.ColorScale.ScaleAlpha(float32(utils.Clamp(panel.Alpha, 0, 1)))
	text.Draw(screen, panel.Heading, s.headingFont, op)

	lineHeight := panelBodyFontSize * 1.4
	y := panelPadding + panelHeadingSize*1.6
	for _, lines := range s.panelLines(panel) {
		for _, line := range lines {
			if y+lineHeight > panel.Height-panelPadding {
				return
			}
			op := &text.DrawOptions{}
			op.GeoM.Translate(panelPadding, y)
			op.GeoM.Scale(panel.Scale, panel.Scale)
			op.GeoM.Translate(left, top)
			op.ColorScale.ScaleWithColor(menuTextColor)
			op.ColorScale.ScaleAlpha(float32(utils.Clamp(panel.Alpha, 0, 1)))
			text.Draw(screen, line, s.bodyFont, op)
			y += lineHeight
		}
		y += panelParagraphSpace
	}
}
