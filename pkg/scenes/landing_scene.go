package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/digitorumflex/folio/pkg/components"
	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/ecs"
	"github.com/digitorumflex/folio/pkg/entities"
	"github.com/digitorumflex/folio/pkg/game"
	"github.com/digitorumflex/folio/pkg/gate"
	"github.com/digitorumflex/folio/pkg/geometry"
	"github.com/digitorumflex/folio/pkg/modules"
	"github.com/digitorumflex/folio/pkg/systems"
	"github.com/digitorumflex/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var backgroundColor = color.RGBA{R: 5, G: 5, B: 8, A: 255}

// LandingScene 作品集首页
//
// 登录前显示点云和密码输入框；校验通过后点云收缩并重组为空闲形状，
// 模型入场，RevealDelay 后出现环形菜单。选中菜单项时点云变形为该项的形状。
type LandingScene struct {
	cfg             *config.PortfolioConfig
	entityManager   *ecs.EntityManager
	resourceManager *game.ResourceManager
	scheduler       *game.Scheduler
	rng             *rand.Rand

	camera *utils.Camera

	pointCloudSystem       *systems.PointCloudSystem
	pointCloudRenderSystem *systems.PointCloudRenderSystem
	modelSystem            *systems.ModelSystem
	modelRenderSystem      *systems.ModelRenderSystem

	gateModule *modules.GateModule
	menuModule *modules.RadialMenuModule

	cloudEntity ecs.EntityID
	idleShape   geometry.Shape

	width, height int
}

// NewLandingScene 创建首页场景
//
// 参数:
//   - rm: 资源管理器（字体、模型）
//   - cfg: 已校验的配置
//   - verifier: 密码校验器
//   - width, height: 初始窗口尺寸
//
// 返回:
//   - *LandingScene: 场景实例
//   - error: 点云或输入框初始化失败
func NewLandingScene(rm *game.ResourceManager, cfg *config.PortfolioConfig, verifier gate.Verifier, width, height int) (*LandingScene, error) {
	seed := cfg.Particles.Seed
	s := &LandingScene{
		cfg:             cfg,
		entityManager:   ecs.NewEntityManager(),
		resourceManager: rm,
		scheduler:       game.NewScheduler(),
		rng:             geometry.NewRand(seed),
		width:           width,
		height:          height,
	}

	idle, err := geometry.ParseShape(cfg.Particles.IdleShape)
	if err != nil {
		return nil, fmt.Errorf("invalid idle shape: %w", err)
	}
	s.idleShape = idle

	s.camera = utils.NewCamera(cfg.Camera.FOV, cfg.Camera.Distance, cfg.Camera.Height, cfg.Camera.Near, cfg.Camera.Far, width, height)

	s.cloudEntity, err = entities.NewPointCloud(s.entityManager, cfg.Particles, s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create point cloud: %w", err)
	}
	s.pointCloudSystem = systems.NewPointCloudSystem(s.entityManager, cfg.Particles, s.rng)
	s.pointCloudRenderSystem = systems.NewPointCloudRenderSystem(s.entityManager, s.camera, cfg.Particles)

	s.modelSystem = systems.NewModelSystem(s.entityManager, cfg.Model)
	s.modelRenderSystem = systems.NewModelRenderSystem(s.entityManager, s.camera)
	s.loadModel()

	s.gateModule, err = modules.NewGateModule(s.entityManager, rm, s.scheduler, verifier, cfg.Gate, width, height,
		modules.GateCallbacks{
			OnShake:   s.onShake,
			OnGranted: s.onGranted,
			OnDenied:  s.onRejected,
			OnFailed:  s.onRejected,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to create gate: %w", err)
	}

	s.menuModule = modules.NewRadialMenuModule(s.entityManager, rm, s.scheduler, cfg.Items, cfg.Menu, s.rng, width, height,
		modules.RadialMenuCallbacks{
			OnSelect:   s.onSelect,
			OnDeselect: s.onDeselect,
		})

	log.Printf("[LandingScene] 初始化完成 (%dx%d)", width, height)
	return s, nil
}

// loadModel 加载可选模型，失败时只记录日志
func (s *LandingScene) loadModel() {
	if s.cfg.Model.Path == "" {
		return
	}
	mesh, err := s.resourceManager.LoadModel(s.cfg.Model.Path)
	if err != nil {
		log.Printf("[ModelLoader] 模型加载失败，继续运行: %v", err)
		return
	}
	entities.NewModel(s.entityManager, mesh, s.cfg.Model)
}

func (s *LandingScene) cloud() (*components.PointCloudComponent, *components.AnimationParams) {
	cloud, _ := ecs.GetComponent[*components.PointCloudComponent](s.entityManager, s.cloudEntity)
	params, _ := ecs.GetComponent[*components.AnimationParams](s.entityManager, s.cloudEntity)
	return cloud, params
}

// morphTo 设置目标形状并开始形变周期
func (s *LandingScene) morphTo(shape geometry.Shape) {
	cloud, params := s.cloud()
	cloud.TargetShape = shape
	params.StartCollapse()
}

func (s *LandingScene) onShake() {
	_, params := s.cloud()
	params.AddShake(s.cfg.Particles.ShakeKick)
}

// onRejected 密码错误和网络错误都触发扩散
func (s *LandingScene) onRejected() {
	_, params := s.cloud()
	params.StartSpread(s.cfg.Particles.SpreadKick)
}

func (s *LandingScene) onGranted() {
	s.morphTo(s.idleShape)
	s.modelSystem.Enter()
	s.scheduler.After(s.cfg.Gate.RevealDelay.Std(), func() {
		s.menuModule.Reveal()
	})
}

func (s *LandingScene) onSelect(index int, item config.MenuItem) {
	shape, err := geometry.ParseShape(item.Shape)
	if err != nil {
		log.Printf("[LandingScene] 菜单项 %q 的形状无效: %v", item.Label, err)
		shape = s.idleShape
	}
	s.morphTo(shape)
	s.modelSystem.SetSelected(true)
}

func (s *LandingScene) onDeselect() {
	s.morphTo(s.idleShape)
	s.modelSystem.SetSelected(false)
}

// Update 更新场景
func (s *LandingScene) Update(deltaTime float64) {
	s.update(deltaTime, utils.GetInputState())
}

func (s *LandingScene) update(deltaTime float64, input utils.InputState) {
	s.scheduler.Update(deltaTime)
	s.gateModule.Update(deltaTime)

	if input.WheelY != 0 {
		_, params := s.cloud()
		params.AddScroll(input.WheelY * s.cfg.Particles.ScrollSensitivity)
	}

	s.pointCloudSystem.SetPointer(utils.NormalizePointer(input.X, input.Y, s.width, s.height))
	if s.gateModule.ConsumeInput() {
		input.JustPressed = false
	}
	if s.gateModule.IsGranted() {
		s.menuModule.HandleInput(input)
	}

	s.pointCloudSystem.Update(deltaTime)
	s.modelSystem.Update(deltaTime)
	s.menuModule.Update(deltaTime)
}

// Draw 绘制场景：模型、点云、输入框、菜单
func (s *LandingScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.modelRenderSystem.Draw(screen)
	s.pointCloudRenderSystem.Draw(screen)
	s.gateModule.Draw(screen)
	s.menuModule.Draw(screen)
}

// Resize 窗口尺寸变化时更新相机和居中元素
func (s *LandingScene) Resize(width, height int) {
	s.width, s.height = width, height
	s.camera.Resize(width, height)
	s.gateModule.Resize(width, height)
	s.menuModule.Resize(width, height)
}
