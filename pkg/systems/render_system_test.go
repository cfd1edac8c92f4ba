package systems

import (
	"image/color"
	"testing"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

func TestProjectPoints(t *testing.T) {
	camera := utils.NewCamera(60, 6, 0, 0.1, 100, 800, 600)

	points := ProjectPoints(camera, mgl64.Ident4(), []mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0, 0, 10}, // 相机后方
	})

	if !points[0].Visible || points[0].X != 400 || points[0].Y != 300 {
		t.Errorf("原点应投影到屏幕中心，实际 %+v", points[0])
	}
	if !points[1].Visible || points[1].X <= 400 {
		t.Errorf("+X 方向的点应在中心右侧，实际 %+v", points[1])
	}
	if points[2].Visible {
		t.Error("相机后方的点不可见")
	}

	moved := ProjectPoints(camera, mgl64.Translate3D(0, 1, 0), []mgl64.Vec3{{0, 0, 0}})
	if moved[0].Y >= 300 {
		t.Errorf("上移后的点应在中心上方，实际 %+v", moved[0])
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	tests := []struct {
		name     string
		alpha    float64
		expected color.RGBA
	}{
		{"不透明", 1, c},
		{"全透明", 0, color.RGBA{}},
		{"超出范围按 1 处理", 2, c},
		{"一半", 0.5, color.RGBA{R: 100, G: 50, B: 25, A: 127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fade(c, tt.alpha); got != tt.expected {
				t.Errorf("fade(%v) = %v, 期望 %v", tt.alpha, got, tt.expected)
			}
		})
	}
}

func TestKeyBackgroundColor(t *testing.T) {
	kb := &components.VirtualKeyboardComponent{PressedKey: "a"}

	if got := keyBackgroundColor(kb, components.KeyInfo{Action: "a"}); got != keyPressedColor {
		t.Error("按下的按键应使用按下颜色")
	}
	if got := keyBackgroundColor(kb, components.KeyInfo{Action: components.KeyActionDone}); got != keyDoneColor {
		t.Error("回车键颜色错误")
	}
	kb.ShiftActive = true
	if got := keyBackgroundColor(kb, components.KeyInfo{Action: components.KeyActionShift}); got != keyShiftActiveColor {
		t.Error("Shift 激活颜色错误")
	}
}
