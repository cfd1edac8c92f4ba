package entities

import (
	"math"
	"math/rand"
	"testing"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/game"
	"github.com/go-gl/mathgl/mgl64"
)

func TestNewPointCloud(t *testing.T) {
	cfg := config.DefaultPortfolioConfig().Particles
	em := ecs.NewEntityManager()

	id, err := NewPointCloud(em, cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewPointCloud 失败: %v", err)
	}

	cloud, ok := ecs.GetComponent[*components.PointCloudComponent](em, id)
	if !ok {
		t.Fatal("缺少 PointCloudComponent")
	}
	if cloud.Points.Len() != cfg.PointCount {
		t.Errorf("期望 %d 点，实际 %d", cfg.PointCount, cloud.Points.Len())
	}
	if string(cloud.TargetShape) != cfg.InitialShape {
		t.Errorf("目标形状 = %q, 期望 %q", cloud.TargetShape, cfg.InitialShape)
	}

	params, ok := ecs.GetComponent[*components.AnimationParams](em, id)
	if !ok {
		t.Fatal("缺少 AnimationParams")
	}
	if params.Morph != components.MorphResting {
		t.Errorf("初始阶段应为 resting，实际 %v", params.Morph)
	}
}

func TestNewPointCloud_InvalidShape(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.ParticleConfig)
	}{
		{"无效初始形状", func(c *config.ParticleConfig) { c.InitialShape = "blob" }},
		{"无效空闲形状", func(c *config.ParticleConfig) { c.IdleShape = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultPortfolioConfig().Particles
			tt.mutate(&cfg)
			if _, err := NewPointCloud(ecs.NewEntityManager(), cfg, rand.New(rand.NewSource(1))); err == nil {
				t.Error("期望返回错误")
			}
		})
	}
}

func TestNewRadialMenu(t *testing.T) {
	cfg := config.DefaultPortfolioConfig()
	em := ecs.NewEntityManager()

	items := []config.MenuItem{{Label: "a"}, {Label: "b"}, {Label: "c"}}
	ents := NewRadialMenu(em, items, cfg.Menu, rand.New(rand.NewSource(9)), 1280, 800)

	menu, ok := ecs.GetComponent[*components.RadialMenuComponent](em, ents.Menu)
	if !ok {
		t.Fatal("缺少 RadialMenuComponent")
	}
	if menu.Ring != components.MenuHidden || menu.Content != components.MenuHidden {
		t.Errorf("初始状态应为隐藏: ring=%v content=%v", menu.Ring, menu.Content)
	}
	if menu.Rotation < 0 || menu.Rotation >= 2*math.Pi {
		t.Errorf("初始旋转角应在 [0, 2π)，实际 %v", menu.Rotation)
	}
	if menu.RotationSpeed != cfg.Menu.BaseRotationSpeed {
		t.Errorf("初始旋转速度 = %v, 期望 %v", menu.RotationSpeed, cfg.Menu.BaseRotationSpeed)
	}
	if menu.CenterX != 640 || menu.CenterY != 400 {
		t.Errorf("环中心 = (%v, %v), 期望 (640, 400)", menu.CenterX, menu.CenterY)
	}
	if menu.HoverIndex != -1 {
		t.Errorf("初始不应有悬停按钮")
	}

	if len(ents.Buttons) != len(items) {
		t.Fatalf("期望 %d 个按钮，实际 %d", len(items), len(ents.Buttons))
	}
	for i, id := range ents.Buttons {
		button, _ := ecs.GetComponent[*components.MenuButtonComponent](em, id)
		if button.Index != i || button.Label != items[i].Label {
			t.Errorf("按钮 %d = {%d, %q}, 期望 {%d, %q}", i, button.Index, button.Label, i, items[i].Label)
		}
	}

	if !ecs.HasComponent[*components.ContentPanelComponent](em, ents.Panel) {
		t.Error("缺少 ContentPanelComponent")
	}
}

func TestNewPasswordInput(t *testing.T) {
	cfg := config.DefaultPortfolioConfig().Gate
	em := ecs.NewEntityManager()

	id := NewPasswordInput(em, cfg, 800, 600)
	input, ok := ecs.GetComponent[*components.TextInputComponent](em, id)
	if !ok {
		t.Fatal("缺少 TextInputComponent")
	}
	if !input.Masked || !input.IsFocused {
		t.Error("密码输入框应为掩码显示并获得焦点")
	}
	if input.MaxLength != cfg.MaxLength {
		t.Errorf("MaxLength = %d, 期望 %d", input.MaxLength, cfg.MaxLength)
	}
	if input.X != (800-PasswordInputWidth)/2 || input.Y != (600-PasswordInputHeight)/2 {
		t.Errorf("输入框未居中: (%v, %v)", input.X, input.Y)
	}
}

func TestNewModel(t *testing.T) {
	cfg := config.DefaultPortfolioConfig().Model
	em := ecs.NewEntityManager()
	mesh := &game.Mesh{Vertices: []mgl64.Vec3{{0, 0, 0}}}

	id := NewModel(em, mesh, cfg)
	model, ok := ecs.GetComponent[*components.ModelComponent](em, id)
	if !ok {
		t.Fatal("缺少 ModelComponent")
	}
	if model.Position != mgl64.Vec3(cfg.StartPosition) || !model.Settled() {
		t.Errorf("模型应静止在起点，位置 %v 目标 %v", model.Position, model.Target)
	}
}

func TestVirtualKeyboardLayout(t *testing.T) {
	em := ecs.NewEntityManager()
	input := NewPasswordInput(em, config.DefaultPortfolioConfig().Gate, 1280, 800)
	id := NewVirtualKeyboard(em, input, 1280, 800)

	kb, ok := ecs.GetComponent[*components.VirtualKeyboardComponent](em, id)
	if !ok {
		t.Fatal("缺少 VirtualKeyboardComponent")
	}
	if !kb.IsVisible || kb.TargetInputEntity != input {
		t.Errorf("键盘应可见并绑定输入框: visible=%v target=%d", kb.IsVisible, kb.TargetInputEntity)
	}
	if kb.KeyWidth != VirtualKeyboardKeyWidth {
		t.Errorf("宽屏下按键宽度 = %v, 期望 %v", kb.KeyWidth, VirtualKeyboardKeyWidth)
	}

	layout := CalculateKeyboardLayout(kb)
	if len(layout) != len(components.KeyboardLayoutLower) {
		t.Fatalf("行数 = %d", len(layout))
	}
	for _, row := range layout {
		first, last := row[0], row[len(row)-1]
		left := first.X
		right := 1280 - (last.X + last.Width)
		if math.Abs(left-right) > 1e-9 {
			t.Errorf("行未居中: left=%v right=%v", left, right)
		}
	}

	bottom := layout[len(layout)-1][0]
	if got := bottom.Y + bottom.Height; math.Abs(got-(800-VirtualKeyboardPadding)) > 1e-9 {
		t.Errorf("键盘底部 = %v, 期望 %v", got, 800-VirtualKeyboardPadding)
	}

	kb.NumericMode = true
	if keys := GetAllKeys(kb); keys[0].Action != "1" {
		t.Errorf("数字模式第一个按键 = %q", keys[0].Action)
	}
}
