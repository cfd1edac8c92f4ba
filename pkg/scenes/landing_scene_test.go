package scenes

import (
	"context"
	"testing"
	"time"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/game"
	"github.com/digitorumflex/folio/pkg/gate"
	"github.com/digitorumflex/folio/pkg/geometry"
	"github.com/digitorumflex/folio/pkg/utils"
)

const frameTime = 1.0 / 60.0

type stubVerifier struct {
	timestamp float64
}

func (v stubVerifier) Verify(ctx context.Context, password string) (gate.Response, error) {
	return gate.Response{Timestamp: v.timestamp}, nil
}

func testConfig() *config.PortfolioConfig {
	cfg := config.DefaultPortfolioConfig()
	cfg.Particles.Seed = 3
	cfg.Items = []config.MenuItem{
		{Label: "one", Heading: "One", Body: "body", Shape: "cube"},
		{Label: "two", Heading: "Two", Body: "body", Shape: "torus"},
		{Label: "three", Heading: "Three", Body: "body", Shape: "helix"},
	}
	return cfg
}

func newTestScene(t *testing.T, timestamp float64) *LandingScene {
	t.Helper()
	s, err := NewLandingScene(game.NewResourceManager(), testConfig(), stubVerifier{timestamp: timestamp}, 800, 600)
	if err != nil {
		t.Fatalf("NewLandingScene 失败: %v", err)
	}
	return s
}

// submit 提交密码并推进到校验结束
func submit(t *testing.T, s *LandingScene, password string) {
	t.Helper()
	ctrl := s.gateModule.Controller()
	ctrl.Submit(password)

	deadline := time.Now().Add(time.Second)
	for ctrl.State() == gate.StatePending {
		if time.Now().After(deadline) {
			t.Fatal("等待校验结果超时")
		}
		time.Sleep(time.Millisecond)
		s.update(frameTime, utils.InputState{})
	}
}

func TestLandingScene_DeniedSpreads(t *testing.T) {
	s := newTestScene(t, 1)
	submit(t, s, "nope")

	_, params := s.cloud()
	if !params.SpreadActive {
		t.Error("校验失败后应开始扩散")
	}
	if s.menuModule.System().Menu().Ring != components.MenuHidden {
		t.Error("校验失败后菜单不应出现")
	}
}

func TestLandingScene_GrantedRevealsMenu(t *testing.T) {
	cfg := testConfig()
	s := newTestScene(t, float64(cfg.Gate.AccessToken))
	submit(t, s, "yes")

	cloud, params := s.cloud()
	if cloud.TargetShape != geometry.ShapeFace {
		t.Errorf("通过后目标形状 = %v, 期望 %v", cloud.TargetShape, geometry.ShapeFace)
	}
	if !params.IsMorphing() {
		t.Error("通过后应开始形变")
	}

	reveal := int(cfg.Gate.RevealDelay.Seconds()/frameTime + 0.5)
	for i := 0; i < reveal+20; i++ {
		s.update(frameTime, utils.InputState{})
	}
	if ring := s.menuModule.System().Menu().Ring; ring != components.MenuVisible {
		t.Fatalf("RevealDelay 后菜单应可见，实际 %v", ring)
	}

	// 点击菜单项 → 点云变形为该项的形状
	s.menuModule.System().Click(1)
	if cloud.TargetShape != geometry.ShapeTorus {
		t.Errorf("选中后目标形状 = %v, 期望 torus", cloud.TargetShape)
	}
}

func TestLandingScene_WheelAndResize(t *testing.T) {
	s := newTestScene(t, 0)

	s.update(frameTime, utils.InputState{WheelY: 2})
	_, params := s.cloud()
	if params.ScrollDelta <= 0 {
		t.Errorf("向上滚动应增加 ScrollDelta，实际 %v", params.ScrollDelta)
	}

	s.Resize(1000, 500)
	if menu := s.menuModule.System().Menu(); menu.CenterX != 500 || menu.CenterY != 250 {
		t.Errorf("Resize 后环中心 = (%v, %v)", menu.CenterX, menu.CenterY)
	}
}

func TestLandingScene_InvalidIdleShape(t *testing.T) {
	cfg := testConfig()
	cfg.Particles.IdleShape = "blob"
	if _, err := NewLandingScene(game.NewResourceManager(), cfg, stubVerifier{}, 800, 600); err == nil {
		t.Error("无效的空闲形状应返回错误")
	}
}
