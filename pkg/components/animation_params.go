package components

import "math"

// MorphPhase 点云形变阶段
//
// 一个完整的形变周期:
//
//	Resting → Collapsing → AwaitingRegeneration → Regenerated → Resting
//
// 只有 AwaitingRegeneration → Regenerated 这一步会重新生成点，
// 因此每个周期恰好生成一次新形状。
type MorphPhase int

const (
	MorphResting              MorphPhase = iota // 以静止缩放显示当前形状
	MorphCollapsing                             // 向原点收缩
	MorphAwaitingRegeneration                   // 已收缩到阈值，等待生成新形状
	MorphRegenerated                            // 新形状已生成，正在展开
)

// String 返回阶段名称（用于日志）
func (p MorphPhase) String() string {
	switch p {
	case MorphResting:
		return "resting"
	case MorphCollapsing:
		return "collapsing"
	case MorphAwaitingRegeneration:
		return "awaiting-regeneration"
	case MorphRegenerated:
		return "regenerated"
	default:
		return "unknown"
	}
}

// AnimationParams 点云动画参数
//
// 由输入处理（密码校验、滚轮）写入，由 PointCloudSystem 每帧读取并衰减。
// 所有读写都发生在游戏循环 goroutine 上。
type AnimationParams struct {
	Shake float64 // 抖动幅度，每次按键增加

	SpreadActive      bool    // 扩散效果是否进行中
	SpreadMagnitude   float64 // 扩散目标量，逐帧衰减
	SpreadCurrent     float64 // 实际扩散量，跟随 SpreadMagnitude
	CollapseMagnitude float64 // 扩散量的上限，逐帧衰减

	Morph           MorphPhase // 形变阶段
	CollapseCurrent float64    // 形变缩放（收缩时趋近 0，展开时趋近静止缩放）

	ScrollDelta float64 // 滚轮累积的缩放偏移，逐帧衰减
}

// NewAnimationParams 创建静止状态的动画参数
// scale 为初始缩放
func NewAnimationParams(scale float64) *AnimationParams {
	return &AnimationParams{
		Morph:           MorphResting,
		CollapseCurrent: scale,
	}
}

// AddShake 增加抖动（每次输入字符时调用）
func (p *AnimationParams) AddShake(kick float64) {
	p.Shake += kick
}

// StartSpread 开始扩散效果（校验失败时调用）
// 保持量以相同幅度开始，衰减更慢，负责扩散结束后的回收
// 重复调用会用新的幅度重新开始
func (p *AnimationParams) StartSpread(magnitude float64) {
	p.SpreadActive = true
	p.SpreadMagnitude = magnitude
	p.CollapseMagnitude = magnitude
}

// StartCollapse 开始一个形变周期
// 已经在收缩或等待生成时不做任何事，新的目标形状会在本周期生成时读取。
// 返回: 是否开始了新的周期
func (p *AnimationParams) StartCollapse() bool {
	switch p.Morph {
	case MorphCollapsing, MorphAwaitingRegeneration:
		return false
	default:
		p.Morph = MorphCollapsing
		return true
	}
}

// IsMorphing 是否处于形变周期中
func (p *AnimationParams) IsMorphing() bool {
	return p.Morph != MorphResting
}

// AddScroll 累加滚轮偏移
func (p *AnimationParams) AddScroll(delta float64) {
	p.ScrollDelta += delta
}

// RestScale 静止缩放 = spreadEndSize + ScrollDelta，不小于 minScale
func (p *AnimationParams) RestScale(spreadEndSize, minScale float64) float64 {
	return math.Max(minScale, spreadEndSize+p.ScrollDelta)
}
