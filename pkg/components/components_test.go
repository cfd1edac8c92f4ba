package components

import "testing"

func TestAnimationParams_StartCollapse(t *testing.T) {
	tests := []struct {
		name      string
		phase     MorphPhase
		wantStart bool
		wantPhase MorphPhase
	}{
		{"静止时开始", MorphResting, true, MorphCollapsing},
		{"展开中重新开始", MorphRegenerated, true, MorphCollapsing},
		{"收缩中忽略", MorphCollapsing, false, MorphCollapsing},
		{"等待生成时忽略", MorphAwaitingRegeneration, false, MorphAwaitingRegeneration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewAnimationParams(1)
			p.Morph = tt.phase
			if got := p.StartCollapse(); got != tt.wantStart {
				t.Errorf("StartCollapse() = %v, 期望 %v", got, tt.wantStart)
			}
			if p.Morph != tt.wantPhase {
				t.Errorf("Morph = %v, 期望 %v", p.Morph, tt.wantPhase)
			}
		})
	}
}

func TestAnimationParams_RestScale(t *testing.T) {
	p := NewAnimationParams(1)
	if got := p.RestScale(1, 0.2); got != 1 {
		t.Errorf("RestScale() = %v, 期望 1", got)
	}

	p.AddScroll(0.5)
	if got := p.RestScale(1, 0.2); got != 1.5 {
		t.Errorf("滚轮后 RestScale() = %v, 期望 1.5", got)
	}

	p.ScrollDelta = -5
	if got := p.RestScale(1, 0.2); got != 0.2 {
		t.Errorf("RestScale() 应不小于 minScale，实际 %v", got)
	}
}

func TestAnimationParams_StartSpread(t *testing.T) {
	p := NewAnimationParams(1)
	p.CollapseMagnitude = 0.4
	p.StartSpread(1.2)

	if !p.SpreadActive || p.SpreadMagnitude != 1.2 || p.CollapseMagnitude != 1.2 {
		t.Errorf("StartSpread 后状态错误: %+v", p)
	}
}

func TestMenuState_String(t *testing.T) {
	states := map[MenuState]string{
		MenuHidden:    "hidden",
		MenuEntering:  "entering",
		MenuVisible:   "visible",
		MenuExiting:   "exiting",
		MenuState(42): "unknown",
	}
	for state, want := range states {
		if got := state.String(); got != want {
			t.Errorf("MenuState(%d).String() = %q, 期望 %q", int(state), got, want)
		}
	}
}

func TestMenuButton_Contains(t *testing.T) {
	b := &MenuButtonComponent{X: 100, Y: 100, Scale: 1}
	if !b.Contains(110, 110, 34) {
		t.Error("按钮范围内的点应被命中")
	}
	if b.Contains(140, 140, 34) {
		t.Error("按钮范围外的点不应被命中")
	}

	b.Scale = 0.2
	if b.Contains(110, 110, 34) {
		t.Error("缩小后的按钮点击范围应随之缩小")
	}
}

func TestTextInput_DisplayText(t *testing.T) {
	input := &TextInputComponent{Text: "pässwd", Masked: true}
	if got := input.DisplayText(); got != "••••••" {
		t.Errorf("DisplayText() = %q, 期望 6 个圆点", got)
	}

	input.Masked = false
	if got := input.DisplayText(); got != "pässwd" {
		t.Errorf("DisplayText() = %q, 期望原文", got)
	}
}
