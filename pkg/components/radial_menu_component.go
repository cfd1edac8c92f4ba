package components

// MenuState 环形菜单或内容面板的可见状态
// 状态只在相邻状态间按固定延迟推进，不会跳过
type MenuState int

const (
	MenuHidden   MenuState = iota // 隐藏
	MenuEntering                  // 正在进入
	MenuVisible                   // 可见
	MenuExiting                   // 正在退出
)

// String 返回状态名称（用于日志）
func (s MenuState) String() string {
	switch s {
	case MenuHidden:
		return "hidden"
	case MenuEntering:
		return "entering"
	case MenuVisible:
		return "visible"
	case MenuExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Selection 当前选中的菜单项
// 取消选中只清除 Active，Index 保留最后一次的值
type Selection struct {
	Index  int
	Active bool
}

// RadialMenuComponent 环形菜单组件
type RadialMenuComponent struct {
	Ring    MenuState // 按钮环状态
	Content MenuState // 内容面板状态

	Rotation      float64 // 当前旋转角（弧度）
	RotationSpeed float64 // 每帧旋转增量（弧度）

	HoverIndex int // 悬停的按钮序号，-1 表示无
	Selection  Selection

	CenterX float64 // 环中心（屏幕坐标）
	CenterY float64
	Radius  float64 // 环半径（像素）

	ItemCount int
}

// Hovered 是否有按钮处于悬停状态
func (m *RadialMenuComponent) Hovered() bool {
	return m.HoverIndex >= 0
}
