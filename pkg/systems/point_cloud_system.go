package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/geometry"
	"github.com/digitorumflex/folio/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// FrameInput 单帧的外部输入
type FrameInput struct {
	Time   float64    // 累计时间（秒）
	MouseX float64    // 归一化指针坐标 [-1, 1]
	MouseY float64    // 归一化指针坐标 [-1, 1]，向上为正
	Rand   *rand.Rand // 抖动随机源，为 nil 时不抖动
}

// PointCloudSystem 点云动画系统
// 每帧根据 AnimationParams 扰动点云、推进形变阶段并重建闭合连线
type PointCloudSystem struct {
	entityManager *ecs.EntityManager
	tuning        config.ParticleConfig
	options       geometry.Options
	rng           *rand.Rand

	elapsed float64
	mouseX  float64
	mouseY  float64
}

// NewPointCloudSystem 创建点云动画系统
func NewPointCloudSystem(em *ecs.EntityManager, tuning config.ParticleConfig, rng *rand.Rand) *PointCloudSystem {
	return &PointCloudSystem{
		entityManager: em,
		tuning:        tuning,
		options:       geometry.Options{Radius: tuning.ShapeRadius},
		rng:           rng,
	}
}

// SetPointer 设置归一化指针坐标（驱动摆动相位）
func (s *PointCloudSystem) SetPointer(nx, ny float64) {
	s.mouseX, s.mouseY = nx, ny
}

// Update 更新所有点云实体
func (s *PointCloudSystem) Update(deltaTime float64) {
	s.elapsed += deltaTime
	frame := FrameInput{
		Time:   s.elapsed,
		MouseX: s.mouseX,
		MouseY: s.mouseY,
		Rand:   s.rng,
	}

	entities := ecs.GetEntitiesWith2[*components.PointCloudComponent, *components.AnimationParams](s.entityManager)
	for _, id := range entities {
		cloud, _ := ecs.GetComponent[*components.PointCloudComponent](s.entityManager, id)
		params, _ := ecs.GetComponent[*components.AnimationParams](s.entityManager, id)

		cloud.LineLoop = StepPointCloud(params, cloud.Points, frame, s.tuning, func(set *geometry.PointSet) {
			s.regenerate(cloud, set)
		})
	}
}

func (s *PointCloudSystem) regenerate(cloud *components.PointCloudComponent, set *geometry.PointSet) {
	if err := set.Regenerate(cloud.TargetShape, s.rng, s.tuning.PointCount, s.options); err != nil {
		log.Printf("[PointCloud] 生成形状 %q 失败: %v", cloud.TargetShape, err)
		return
	}
	cloud.Regenerations++
	log.Printf("[PointCloud] 已生成形状 %s (%d 点)", cloud.TargetShape, set.Len())
}

// StepPointCloud 推进一帧点云动画
//
// 参数:
//   - params: 动画参数，本函数推进形变阶段并衰减各幅度
//   - set: 点集，本函数写入 Current
//   - frame: 时间、指针和随机源
//   - tuning: 动画参数配置
//   - regenerate: 收缩到阈值后调用一次，用于生成新形状
//
// 返回:
//   - []mgl64.Vec3: 闭合连线（Current 全部点加上第一个点）
func StepPointCloud(
	params *components.AnimationParams,
	set *geometry.PointSet,
	frame FrameInput,
	tuning config.ParticleConfig,
	regenerate func(*geometry.PointSet),
) []mgl64.Vec3 {
	rest := params.RestScale(tuning.SpreadEndSize, tuning.MinScale)
	advanceMorph(params, set, rest, tuning, regenerate)
	spreadScale := advanceSpread(params, tuning)

	amplitude := tuning.SwayAmplitude
	if params.IsMorphing() {
		amplitude = tuning.CollapseSwayAmplitude
	}
	scale := params.CollapseCurrent * spreadScale

	t := frame.Time
	for i, base := range set.Base {
		fi := float64(i)
		p := base
		p[0] += amplitude * math.Sin(t*1.3+fi*0.35+frame.MouseX)
		p[1] += amplitude * math.Cos(t*1.1+fi*0.27+frame.MouseY)
		p[2] += amplitude * 0.5 * math.Sin(t*0.9+fi)

		if params.Shake > 0 && frame.Rand != nil {
			for axis := 0; axis < 3; axis++ {
				p[axis] += (frame.Rand.Float64() - 0.5) * 2 * params.Shake
			}
		}

		set.Current[i] = p.Mul(scale)
	}

	params.Shake = utils.Decay(params.Shake, tuning.ShakeDecay)
	params.SpreadMagnitude = utils.Decay(params.SpreadMagnitude, tuning.SpreadDecay)
	params.CollapseMagnitude = utils.Decay(params.CollapseMagnitude, tuning.HoldDecay)
	params.ScrollDelta = utils.Decay(params.ScrollDelta, tuning.ScrollDecay)

	return closeLoop(set.Current)
}

// advanceMorph 推进形变阶段，更新 CollapseCurrent
func advanceMorph(
	params *components.AnimationParams,
	set *geometry.PointSet,
	rest float64,
	tuning config.ParticleConfig,
	regenerate func(*geometry.PointSet),
) {
	switch params.Morph {
	case components.MorphResting:
		params.CollapseCurrent = rest

	case components.MorphCollapsing:
		params.CollapseCurrent *= tuning.CollapseRate
		if params.CollapseCurrent <= tuning.EffectThreshold {
			params.Morph = components.MorphAwaitingRegeneration
		}

	case components.MorphAwaitingRegeneration:
		if regenerate != nil {
			regenerate(set)
		}
		params.Morph = components.MorphRegenerated

	case components.MorphRegenerated:
		var done bool
		params.CollapseCurrent, done = utils.ApproachThreshold(
			params.CollapseCurrent, rest, tuning.ExpandEase, tuning.EffectThreshold)
		if done {
			params.Morph = components.MorphResting
		}
	}
}

// advanceSpread 推进扩散效果，返回本帧的扩散缩放
//
// SpreadCurrent 跟随 SpreadMagnitude，并被 CollapseMagnitude 封顶；
// 两者都低于阈值时效果结束。
func advanceSpread(params *components.AnimationParams, tuning config.ParticleConfig) float64 {
	if !params.SpreadActive {
		return 1
	}

	th := tuning.EffectThreshold
	if params.SpreadMagnitude <= th && params.CollapseMagnitude <= th {
		params.SpreadActive = false
		params.SpreadMagnitude = 0
		params.SpreadCurrent = 0
		params.CollapseMagnitude = 0
		return 1
	}

	target := 0.0
	if params.SpreadMagnitude > th {
		target = params.SpreadMagnitude
	}
	params.SpreadCurrent += (target - params.SpreadCurrent) * tuning.SpreadEase
	params.SpreadCurrent = math.Min(params.SpreadCurrent, params.CollapseMagnitude)

	return 1 + params.SpreadCurrent
}

// closeLoop 复制点序列并在末尾追加第一个点
func closeLoop(points []mgl64.Vec3) []mgl64.Vec3 {
	if len(points) == 0 {
		return nil
	}
	loop := make([]mgl64.Vec3, len(points)+1)
	copy(loop, points)
	loop[len(points)] = points[0]
	return loop
}
