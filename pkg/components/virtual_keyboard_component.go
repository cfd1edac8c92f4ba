package components

import "github.com/digitorumflex/folio/pkg/ecs"

// VirtualKeyboardComponent 虚拟键盘组件
// 移动端的屏幕键盘，按键写入目标文本输入框
type VirtualKeyboardComponent struct {
	// 显示状态
	IsVisible bool

	// 模式状态
	ShiftActive bool
	NumericMode bool

	// 按键高亮
	PressedKey   string
	PressedTimer float64

	// 本帧是否消费了点击，其他系统据此跳过本帧的点击
	InputConsumedThisFrame bool

	TargetInputEntity ecs.EntityID

	// 布局（由工厂和 Resize 计算）
	KeyWidth     float64
	KeyHeight    float64
	KeySpacing   float64
	KeyboardY    float64
	ScreenWidth  float64
	ScreenHeight float64
}

// KeyInfo 按键信息（用于布局和点击检测）
type KeyInfo struct {
	Label       string
	Action      string // 特殊动作名或字符本身
	X           float64
	Y           float64
	Width       float64
	Height      float64
	WidthFactor float64
}

// Contains 点是否落在按键内
func (k KeyInfo) Contains(x, y float64) bool {
	return x >= k.X && x <= k.X+k.Width && y >= k.Y && y <= k.Y+k.Height
}

// 特殊按键动作
const (
	KeyActionShift     = "SHIFT"
	KeyActionBackspace = "BACKSPACE"
	KeyActionSpace     = "SPACE"
	KeyActionDone      = "DONE"
	KeyActionNumeric   = "123"
	KeyActionAlpha     = "ABC"
)

// KeyboardLayoutLower 小写字母布局
var KeyboardLayoutLower = [][]string{
	{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"},
	{"a", "s", "d", "f", "g", "h", "j", "k", "l"},
	{KeyActionShift, "z", "x", "c", "v", "b", "n", "m", KeyActionBackspace},
	{KeyActionNumeric, KeyActionSpace, KeyActionDone},
}

// KeyboardLayoutUpper 大写字母布局
var KeyboardLayoutUpper = [][]string{
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
	{KeyActionShift, "Z", "X", "C", "V", "B", "N", "M", KeyActionBackspace},
	{KeyActionNumeric, KeyActionSpace, KeyActionDone},
}

// KeyboardLayoutNumeric 数字和符号布局（密码常含符号）
var KeyboardLayoutNumeric = [][]string{
	{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
	{"-", "/", ":", ";", "(", ")", "$", "&", "@"},
	{".", ",", "?", "!", "'", "#", "%", "*", KeyActionBackspace},
	{KeyActionAlpha, KeyActionSpace, KeyActionDone},
}

// CurrentLayout 返回当前模式下的布局
func (kb *VirtualKeyboardComponent) CurrentLayout() [][]string {
	switch {
	case kb.NumericMode:
		return KeyboardLayoutNumeric
	case kb.ShiftActive:
		return KeyboardLayoutUpper
	default:
		return KeyboardLayoutLower
	}
}

// GetKeyWidthFactor 获取按键的宽度倍数
func GetKeyWidthFactor(action string) float64 {
	switch action {
	case KeyActionShift, KeyActionBackspace, KeyActionNumeric, KeyActionAlpha:
		return 1.5
	case KeyActionSpace:
		return 4.0
	case KeyActionDone:
		return 2.0
	default:
		return 1.0
	}
}

// GetKeyLabel 获取按键的显示标签
func GetKeyLabel(action string) string {
	switch action {
	case KeyActionShift:
		return "Shift"
	case KeyActionBackspace:
		return "Del"
	case KeyActionSpace:
		return ""
	case KeyActionDone:
		return "Enter"
	default:
		return action
	}
}

// IsSpecialKey 判断是否为特殊按键（非字符输入）
func IsSpecialKey(action string) bool {
	switch action {
	case KeyActionShift, KeyActionBackspace, KeyActionSpace, KeyActionDone, KeyActionNumeric, KeyActionAlpha:
		return true
	default:
		return false
	}
}
