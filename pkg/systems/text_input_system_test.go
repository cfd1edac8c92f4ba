package systems

import (
	"testing"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/ecs"
)

func TestFilterInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"字母数字", "abc123", "abc123"},
		{"保留符号", "p@ss-w0rd!", "p@ss-w0rd!"},
		{"保留空格", "a b", "a b"},
		{"去掉控制字符", "a\tb\nc\x7f", "abc"},
		{"保留非 ASCII", "密码", "密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterInput(tt.input); got != tt.expected {
				t.Errorf("FilterInput(%q) = %q, 期望 %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTextInputEditing(t *testing.T) {
	input := &components.TextInputComponent{MaxLength: 8}

	if !input.Insert("abcd") || input.Text != "abcd" || input.CursorPosition != 4 {
		t.Fatalf("插入后 Text=%q Cursor=%d", input.Text, input.CursorPosition)
	}
	if !input.Changed {
		t.Error("插入后 Changed 应为 true")
	}

	input.MoveCursor(-2)
	input.Insert("XY")
	if input.Text != "abXYcd" || input.CursorPosition != 4 {
		t.Errorf("中间插入后 Text=%q Cursor=%d", input.Text, input.CursorPosition)
	}

	if input.Insert("123") {
		t.Error("超过最大长度的插入应被拒绝")
	}
	if input.Text != "abXYcd" {
		t.Errorf("拒绝后文本不应改变: %q", input.Text)
	}

	input.DeleteBefore()
	if input.Text != "abXcd" || input.CursorPosition != 3 {
		t.Errorf("退格后 Text=%q Cursor=%d", input.Text, input.CursorPosition)
	}

	input.DeleteAfter()
	if input.Text != "abXd" || input.CursorPosition != 3 {
		t.Errorf("删除后 Text=%q Cursor=%d", input.Text, input.CursorPosition)
	}

	input.CursorHome()
	if input.DeleteBefore() {
		t.Error("光标在开头时退格应无效")
	}
	input.MoveCursor(-5)
	if input.CursorPosition != 0 {
		t.Errorf("光标不应小于 0: %d", input.CursorPosition)
	}

	input.CursorEnd()
	if input.DeleteAfter() {
		t.Error("光标在结尾时删除应无效")
	}
	if input.CursorPosition != 4 {
		t.Errorf("CursorEnd 后 Cursor=%d", input.CursorPosition)
	}
}

func TestTextInputSystem_ResetsFlags(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	input := &components.TextInputComponent{Changed: true, Submitted: true}
	ecs.AddComponent(em, id, input)

	NewTextInputSystem(em).Update(frameTime)

	if input.Changed || input.Submitted {
		t.Error("每帧开始时应重置 Changed/Submitted")
	}
	if input.CursorVisible {
		t.Error("未获得焦点时光标不可见")
	}
}

func TestUpdateCursorBlink(t *testing.T) {
	input := &components.TextInputComponent{CursorVisible: true}

	UpdateCursorBlink(input, 0.3)
	if !input.CursorVisible {
		t.Error("未到闪烁间隔时光标保持可见")
	}
	UpdateCursorBlink(input, 0.3)
	if input.CursorVisible {
		t.Error("到达闪烁间隔后光标应切换")
	}
}
