// Package app 提供作品集应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/digitorumflex/folio/pkg/config"
	"github.com/digitorumflex/folio/pkg/embedded"
	"github.com/digitorumflex/folio/pkg/game"
	"github.com/digitorumflex/folio/pkg/gate"
	"github.com/digitorumflex/folio/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultConfigPath 嵌入资源中的默认配置文件
const DefaultConfigPath = "data/portfolio.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的配置文件，为空则使用嵌入的 data/portfolio.yaml
	ConfigPath string
	// ModelPath 覆盖配置中的 model.path
	ModelPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	portfolio                *config.PortfolioConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadConfig 按启动配置加载作品集配置
//
// 参数:
//   - cfg: 启动配置；ConfigPath 为空时读取嵌入资源
//
// 返回:
//   - 解析并校验后的配置
func LoadConfig(cfg Config) (*config.PortfolioConfig, error) {
	var (
		portfolio *config.PortfolioConfig
		err       error
	)

	if cfg.ConfigPath != "" {
		portfolio, err = config.LoadPortfolioConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] 从磁盘加载配置: %s", cfg.ConfigPath)
	} else {
		data, err := embedded.ReadFile(DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("读取嵌入配置失败: %w", err)
		}
		portfolio, err = config.ParsePortfolioConfig(data)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] 加载嵌入配置: %s", DefaultConfigPath)
	}

	if cfg.ModelPath != "" {
		portfolio.Model.Path = cfg.ModelPath
	}
	log.Printf("[Config] 菜单项 %d 个，校验地址 %s", len(portfolio.Items), portfolio.Gate.Endpoint)
	return portfolio, nil
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	portfolio, err := LoadConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	resourceManager := game.NewResourceManager()
	verifier := gate.NewHTTPVerifier(portfolio.Gate.Endpoint, portfolio.Gate.Timeout.Std())

	landing, err := scenes.NewLandingScene(resourceManager, portfolio, verifier,
		portfolio.Window.Width, portfolio.Window.Height)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(landing)
	log.Printf("[App] 场景初始化完成 (%dx%d)", portfolio.Window.Width, portfolio.Window.Height)

	return &App{
		sceneManager: sceneManager,
		portfolio:    portfolio,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.portfolio.Window.Width, a.portfolio.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.portfolio.Window.Width, a.portfolio.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸跟随窗口尺寸，场景在尺寸变化时重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.portfolio.Window.Width, a.portfolio.Window.Height
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Portfolio 返回当前使用的作品集配置
func (a *App) Portfolio() *config.PortfolioConfig {
	return a.portfolio
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
