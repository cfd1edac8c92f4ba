package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// mockResizableScene 记录收到的尺寸
type mockResizableScene struct {
	MockScene
	resizes [][2]int
}

func (m *mockResizableScene) Resize(width, height int) {
	m.resizes = append(m.resizes, [2]int{width, height})
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no current scene initially")
	}
}

func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60.0
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %f, got %f", deltaTime, mockScene.deltaTime)
	}
}

func TestSceneManagerWithoutScene(t *testing.T) {
	sm := NewSceneManager()
	// 没有场景时不应 panic
	sm.Update(0.016)
	sm.Resize(800, 600)
}

func TestSceneManagerResize(t *testing.T) {
	tests := []struct {
		name    string
		sizes   [][2]int
		wantLen int
	}{
		{"首次尺寸", [][2]int{{800, 600}}, 1},
		{"相同尺寸只通知一次", [][2]int{{800, 600}, {800, 600}}, 1},
		{"尺寸变化再次通知", [][2]int{{800, 600}, {1024, 768}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			scene := &mockResizableScene{}
			sm.SwitchTo(scene)
			for _, s := range tt.sizes {
				sm.Resize(s[0], s[1])
			}
			if len(scene.resizes) != tt.wantLen {
				t.Errorf("Expected %d resize calls, got %d", tt.wantLen, len(scene.resizes))
			}
		})
	}
}

func TestSceneManagerSwitchToAppliesKnownSize(t *testing.T) {
	sm := NewSceneManager()
	sm.Resize(1280, 800)

	scene := &mockResizableScene{}
	sm.SwitchTo(scene)

	if len(scene.resizes) != 1 || scene.resizes[0] != [2]int{1280, 800} {
		t.Errorf("Expected one resize to 1280x800 on switch, got %v", scene.resizes)
	}
}
