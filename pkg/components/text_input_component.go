package components

// TextInputComponent 文本输入框组件
// 用于输入访问密码
type TextInputComponent struct {
	// 输入框文本
	Text string // 当前输入的文本

	// 输入框布局（屏幕坐标，左上角）
	X      float64
	Y      float64
	Width  float64 // 输入框宽度（像素）
	Height float64 // 输入框高度（像素）

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）
	CursorPosition   int     // 光标位置（字符索引）

	// 输入限制
	MaxLength   int    // 最大字符数（0 = 无限制）
	Placeholder string // 占位符文本（输入框为空时显示）
	Masked      bool   // 以圆点显示（密码）

	// 焦点状态
	IsFocused bool // 是否获得焦点（接收键盘输入）

	// Changed 本帧文本是否发生变化，由 TextInputSystem 每帧重置
	Changed bool

	// Submitted 本帧是否按下了回车，由 TextInputSystem 每帧重置
	Submitted bool

	// 提示信息（显示在输入框下方）
	Message string

	// 内边距
	PaddingLeft float64 // 左内边距（像素）
	PaddingTop  float64 // 上内边距（像素）
}

// DisplayText 返回用于显示的文本（密码模式下为圆点）
func (t *TextInputComponent) DisplayText() string {
	if !t.Masked {
		return t.Text
	}
	n := len([]rune(t.Text))
	dots := make([]rune, n)
	for i := range dots {
		dots[i] = '•'
	}
	return string(dots)
}

// Insert 在光标位置插入文本，超出 MaxLength 时整体拒绝
// 返回: 是否插入成功
func (t *TextInputComponent) Insert(text string) bool {
	newRunes := []rune(text)
	if len(newRunes) == 0 {
		return false
	}

	runes := []rune(t.Text)
	if t.MaxLength > 0 && len(runes)+len(newRunes) > t.MaxLength {
		return false
	}
	t.CursorPosition = clampCursor(t.CursorPosition, len(runes))

	result := make([]rune, 0, len(runes)+len(newRunes))
	result = append(result, runes[:t.CursorPosition]...)
	result = append(result, newRunes...)
	result = append(result, runes[t.CursorPosition:]...)

	t.Text = string(result)
	t.CursorPosition += len(newRunes)
	t.touch()
	return true
}

// DeleteBefore 删除光标前的字符（退格）
func (t *TextInputComponent) DeleteBefore() bool {
	runes := []rune(t.Text)
	t.CursorPosition = clampCursor(t.CursorPosition, len(runes))
	if t.CursorPosition == 0 {
		return false
	}

	t.Text = string(append(runes[:t.CursorPosition-1:t.CursorPosition-1], runes[t.CursorPosition:]...))
	t.CursorPosition--
	t.touch()
	return true
}

// DeleteAfter 删除光标后的字符（Delete 键）
func (t *TextInputComponent) DeleteAfter() bool {
	runes := []rune(t.Text)
	t.CursorPosition = clampCursor(t.CursorPosition, len(runes))
	if t.CursorPosition >= len(runes) {
		return false
	}

	t.Text = string(append(runes[:t.CursorPosition:t.CursorPosition], runes[t.CursorPosition+1:]...))
	t.touch()
	return true
}

// MoveCursor 移动光标 delta 个字符，限制在文本范围内
func (t *TextInputComponent) MoveCursor(delta int) {
	t.CursorPosition = clampCursor(t.CursorPosition+delta, len([]rune(t.Text)))
	t.showCursor()
}

// CursorHome 光标移到开头
func (t *TextInputComponent) CursorHome() {
	t.CursorPosition = 0
	t.showCursor()
}

// CursorEnd 光标移到结尾
func (t *TextInputComponent) CursorEnd() {
	t.CursorPosition = len([]rune(t.Text))
	t.showCursor()
}

// touch 标记文本变化，输入时光标保持可见
func (t *TextInputComponent) touch() {
	t.Changed = true
	t.showCursor()
}

func (t *TextInputComponent) showCursor() {
	t.CursorBlinkTimer = 0
	t.CursorVisible = true
}

func clampCursor(pos, length int) int {
	if pos < 0 {
		return 0
	}
	if pos > length {
		return length
	}
	return pos
}
