package components

// ContentPanelComponent 菜单项内容面板
// 显示选中菜单项的标题和正文，缩放和透明度由弹簧驱动
type ContentPanelComponent struct {
	ItemIndex  int      // 当前显示的菜单项
	Heading    string   // 标题
	Paragraphs []string // 正文段落

	Scale    float64
	ScaleVel float64
	Alpha    float64
	AlphaVel float64

	// 面板中心和尺寸（像素），中心跟随环中心
	CenterX float64
	CenterY float64
	Width   float64
	Height  float64

	// 关闭按钮（面板右上角，屏幕坐标）
	CloseX, CloseY float64
	CloseRadius    float64
}

// CloseContains 检查点是否落在关闭按钮上
func (c *ContentPanelComponent) CloseContains(x, y float64) bool {
	dx, dy := x-c.CloseX, y-c.CloseY
	return dx*dx+dy*dy <= c.CloseRadius*c.CloseRadius
}
