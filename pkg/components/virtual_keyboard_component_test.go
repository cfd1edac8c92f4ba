package components

import "testing"

func TestVirtualKeyboard_CurrentLayout(t *testing.T) {
	tests := []struct {
		name     string
		kb       VirtualKeyboardComponent
		firstKey string
	}{
		{"小写", VirtualKeyboardComponent{}, "q"},
		{"大写", VirtualKeyboardComponent{ShiftActive: true}, "Q"},
		{"数字优先于大写", VirtualKeyboardComponent{ShiftActive: true, NumericMode: true}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kb.CurrentLayout()[0][0]; got != tt.firstKey {
				t.Errorf("第一个按键 = %q, 期望 %q", got, tt.firstKey)
			}
		})
	}
}

func TestKeyboardLayouts_EndWithDone(t *testing.T) {
	for _, layout := range [][][]string{KeyboardLayoutLower, KeyboardLayoutUpper, KeyboardLayoutNumeric} {
		last := layout[len(layout)-1]
		if last[len(last)-1] != KeyActionDone {
			t.Errorf("最后一行应以 DONE 结尾: %v", last)
		}
	}
}

func TestKeyHelpers(t *testing.T) {
	tests := []struct {
		action  string
		width   float64
		label   string
		special bool
	}{
		{"a", 1.0, "a", false},
		{"@", 1.0, "@", false},
		{KeyActionShift, 1.5, "Shift", true},
		{KeyActionBackspace, 1.5, "Del", true},
		{KeyActionSpace, 4.0, "", true},
		{KeyActionDone, 2.0, "Enter", true},
		{KeyActionNumeric, 1.5, "123", true},
		{KeyActionAlpha, 1.5, "ABC", true},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			if got := GetKeyWidthFactor(tt.action); got != tt.width {
				t.Errorf("宽度倍数 = %v, 期望 %v", got, tt.width)
			}
			if got := GetKeyLabel(tt.action); got != tt.label {
				t.Errorf("标签 = %q, 期望 %q", got, tt.label)
			}
			if got := IsSpecialKey(tt.action); got != tt.special {
				t.Errorf("IsSpecialKey = %v, 期望 %v", got, tt.special)
			}
		})
	}
}

func TestKeyInfo_Contains(t *testing.T) {
	key := KeyInfo{X: 10, Y: 20, Width: 30, Height: 40}
	if !key.Contains(10, 20) || !key.Contains(40, 60) {
		t.Error("边界点应命中")
	}
	if key.Contains(9, 20) || key.Contains(41, 30) {
		t.Error("外部点不应命中")
	}
}
