package components

// MenuButtonComponent 环形菜单按钮
//
// Presence 表示按钮离开中心的程度（0 = 在中心，1 = 在环上），
// Presence、Scale 和 Alpha 都由弹簧驱动向目标值移动，
// 对应的 *Vel 字段保存弹簧速度。
type MenuButtonComponent struct {
	Index int    // 在环上的序号
	Label string // 按钮文字

	X, Y float64 // 当前屏幕坐标（按钮中心）

	Presence    float64
	PresenceVel float64
	Scale       float64
	ScaleVel    float64
	Alpha       float64
	AlphaVel    float64
}

// Contains 检查点是否在按钮的点击范围内
func (b *MenuButtonComponent) Contains(x, y, radius float64) bool {
	dx, dy := x-b.X, y-b.Y
	r := radius * b.Scale
	return dx*dx+dy*dy <= r*r
}
