package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 是嵌入配置文件的路径（相对于 data 文件系统）
const DefaultConfigPath = "data/portfolio.yaml"

// PortfolioConfig 应用的完整配置
// 对应 data/portfolio.yaml
type PortfolioConfig struct {
	Window    WindowConfig   `yaml:"window"`
	Gate      GateConfig     `yaml:"gate"`
	Particles ParticleConfig `yaml:"particles"`
	Menu      MenuConfig     `yaml:"menu"`
	Camera    CameraConfig   `yaml:"camera"`
	Model     ModelConfig    `yaml:"model"`
	Items     []MenuItem     `yaml:"items"`
}

// WindowConfig 窗口设置
type WindowConfig struct {
	Width     int    `yaml:"width"`     // 初始窗口宽度（像素）
	Height    int    `yaml:"height"`    // 初始窗口高度（像素）
	Title     string `yaml:"title"`     // 窗口标题
	Resizable bool   `yaml:"resizable"` // 是否允许调整窗口大小
}

// GateConfig 密码校验设置
type GateConfig struct {
	Endpoint         string   `yaml:"endpoint"`         // 远程校验地址（POST JSON）
	Timeout          Duration `yaml:"timeout"`          // 客户端超时
	AccessToken      int64    `yaml:"accessToken"`      // 响应 timestamp 必须等于此值
	AutoSubmitLength int      `yaml:"autoSubmitLength"` // 输入达到此长度时自动提交
	Debounce         Duration `yaml:"debounce"`         // 自动提交的防抖延迟
	RevealDelay      Duration `yaml:"revealDelay"`      // 校验成功后显示菜单的延迟
	MaxLength        int      `yaml:"maxLength"`        // 输入框最大字符数
}

// ParticleConfig 点云动画参数
type ParticleConfig struct {
	PointCount   int     `yaml:"pointCount"`   // 点数量（默认 100）
	InitialShape string  `yaml:"initialShape"` // 登录前的形状
	IdleShape    string  `yaml:"idleShape"`    // 菜单无选中项时的形状
	ShapeRadius  float64 `yaml:"shapeRadius"`  // 生成器的基准尺寸
	Seed         int64   `yaml:"seed"`         // 随机种子（0 = 使用当前时间）

	SpreadEndSize         float64 `yaml:"spreadEndSize"`         // 静止时的缩放
	SwayAmplitude         float64 `yaml:"swayAmplitude"`         // 常规摆动幅度
	CollapseSwayAmplitude float64 `yaml:"collapseSwayAmplitude"` // 收缩期间的摆动幅度
	ShakeKick             float64 `yaml:"shakeKick"`             // 每次按键增加的抖动量
	ShakeDecay            float64 `yaml:"shakeDecay"`            // 抖动每帧衰减系数
	SpreadKick            float64 `yaml:"spreadKick"`            // 失败时的扩散量
	SpreadEase            float64 `yaml:"spreadEase"`            // 扩散跟随速度
	SpreadDecay           float64 `yaml:"spreadDecay"`           // 扩散量每帧衰减系数
	HoldDecay             float64 `yaml:"holdDecay"`             // 扩散保持量每帧衰减系数
	CollapseRate          float64 `yaml:"collapseRate"`          // 收缩阶段每帧缩放系数
	ExpandEase            float64 `yaml:"expandEase"`            // 重新展开的跟随速度
	EffectThreshold       float64 `yaml:"effectThreshold"`       // 效果结束阈值
	ScrollSensitivity     float64 `yaml:"scrollSensitivity"`     // 滚轮灵敏度
	ScrollDecay           float64 `yaml:"scrollDecay"`           // 滚轮偏移每帧衰减系数
	MinScale              float64 `yaml:"minScale"`              // 静止缩放下限

	PointRadius float64 `yaml:"pointRadius"` // 点绘制半径（像素）
	LineWidth   float64 `yaml:"lineWidth"`   // 连线宽度（像素）
}

// MenuConfig 环形菜单参数
type MenuConfig struct {
	Radius             float64  `yaml:"radius"`             // 环半径（像素）
	ButtonRadius       float64  `yaml:"buttonRadius"`       // 按钮点击半径（像素）
	BaseRotationSpeed  float64  `yaml:"baseRotationSpeed"`  // 初始旋转速度（弧度/帧）
	MaxRotationSpeed   float64  `yaml:"maxRotationSpeed"`   // 指针位于中心时的旋转速度
	OuterRadiusPadding float64  `yaml:"outerRadiusPadding"` // 速度降为 0 的半径 = radius + padding
	RestScale          float64  `yaml:"restScale"`          // 未悬停按钮缩放
	HoverScale         float64  `yaml:"hoverScale"`         // 悬停按钮缩放
	HiddenScale        float64  `yaml:"hiddenScale"`        // 进入/退出时的缩放
	RingEnterDelay     Duration `yaml:"ringEnterDelay"`     // 环 entering → visible
	RingExitDelay      Duration `yaml:"ringExitDelay"`      // 环 exiting → hidden
	ContentEnterDelay  Duration `yaml:"contentEnterDelay"`  // 内容 entering → visible
	ContentExitDelay   Duration `yaml:"contentExitDelay"`   // 内容 exiting → hidden
	SpringFrequency    float64  `yaml:"springFrequency"`    // 弹簧角频率
	SpringDamping      float64  `yaml:"springDamping"`      // 弹簧阻尼比
	PanelWidth         float64  `yaml:"panelWidth"`         // 内容面板宽度（像素）
}

// CameraConfig 透视相机参数
type CameraConfig struct {
	FOV      float64 `yaml:"fov"`      // 垂直视角（度）
	Distance float64 `yaml:"distance"` // 相机到原点距离
	Height   float64 `yaml:"height"`   // 相机高度
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
}

// ModelConfig 可选 3D 模型参数
type ModelConfig struct {
	Path             string     `yaml:"path"`             // glTF/GLB 文件路径，为空则不加载
	Scale            float64    `yaml:"scale"`            // 归一化后的缩放
	StartPosition    [3]float64 `yaml:"startPosition"`    // 入场前的位置
	EntryPosition    [3]float64 `yaml:"entryPosition"`    // 入场后的目标位置
	SelectionOffsetY float64    `yaml:"selectionOffsetY"` // 选中菜单项时的垂直偏移
	StartRotationY   float64    `yaml:"startRotationY"`   // 入场前的 Y 轴旋转（弧度）
	EaseRate         float64    `yaml:"easeRate"`         // 每帧插值比例
	Threshold        float64    `yaml:"threshold"`        // 小于此差值时直接对齐目标
}

// MenuItem 菜单项及其内容
type MenuItem struct {
	Label   string `yaml:"label"`   // 按钮文字
	Heading string `yaml:"heading"` // 内容标题
	Body    string `yaml:"body"`    // 内容正文（段落之间空行分隔）
	Shape   string `yaml:"shape"`   // 选中时点云变换成的形状
}

// DefaultPortfolioConfig 返回默认配置
// YAML 中缺失的字段保留这里的默认值
func DefaultPortfolioConfig() *PortfolioConfig {
	return &PortfolioConfig{
		Window: WindowConfig{
			Width:     1280,
			Height:    800,
			Title:     "digitorumflex",
			Resizable: true,
		},
		Gate: GateConfig{
			Endpoint:         "https://digitorumflex.com/fullstack_password.php",
			Timeout:          Duration(20 * time.Second),
			AccessToken:      1749182760,
			AutoSubmitLength: 8,
			Debounce:         Duration(500 * time.Millisecond),
			RevealDelay:      Duration(1500 * time.Millisecond),
			MaxLength:        32,
		},
		Particles: ParticleConfig{
			PointCount:            100,
			InitialShape:          "cloud",
			IdleShape:             "face",
			ShapeRadius:           1.5,
			SpreadEndSize:         1.0,
			SwayAmplitude:         0.03,
			CollapseSwayAmplitude: 0.008,
			ShakeKick:             0.05,
			ShakeDecay:            0.9,
			SpreadKick:            1.2,
			SpreadEase:            0.15,
			SpreadDecay:           0.94,
			HoldDecay:             0.96,
			CollapseRate:          0.88,
			ExpandEase:            0.08,
			EffectThreshold:       0.01,
			ScrollSensitivity:     0.05,
			ScrollDecay:           0.96,
			MinScale:              0.2,
			PointRadius:           2.5,
			LineWidth:             1,
		},
		Menu: MenuConfig{
			Radius:             130,
			ButtonRadius:       34,
			BaseRotationSpeed:  0.005,
			MaxRotationSpeed:   0.01,
			OuterRadiusPadding: 60,
			RestScale:          0.9,
			HoverScale:         1.2,
			HiddenScale:        0.2,
			RingEnterDelay:     Duration(100 * time.Millisecond),
			RingExitDelay:      Duration(400 * time.Millisecond),
			ContentEnterDelay:  Duration(400 * time.Millisecond),
			ContentExitDelay:   Duration(400 * time.Millisecond),
			SpringFrequency:    8,
			SpringDamping:      0.7,
			PanelWidth:         560,
		},
		Camera: CameraConfig{
			FOV:      45,
			Distance: 5,
			Height:   0,
			Near:     0.1,
			Far:      1000,
		},
		Model: ModelConfig{
			Scale:            1.6,
			StartPosition:    [3]float64{0, -4, 0},
			EntryPosition:    [3]float64{0, -1.2, 0},
			SelectionOffsetY: -0.6,
			StartRotationY:   3.14159,
			EaseRate:         0.06,
			Threshold:        0.001,
		},
	}
}

// LoadPortfolioConfig 从磁盘加载配置文件
func LoadPortfolioConfig(filePath string) (*PortfolioConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio config file: %w", err)
	}
	return ParsePortfolioConfig(data)
}

// ParsePortfolioConfig 解析 YAML 配置内容
// 未出现的字段使用 DefaultPortfolioConfig 的值
func ParsePortfolioConfig(data []byte) (*PortfolioConfig, error) {
	cfg := DefaultPortfolioConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid portfolio config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置的有效性
func (c *PortfolioConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Gate.Endpoint == "" {
		return fmt.Errorf("gate.endpoint cannot be empty")
	}
	if c.Gate.Timeout <= 0 {
		return fmt.Errorf("gate.timeout must be positive, got %v", c.Gate.Timeout.Std())
	}
	if c.Gate.Debounce < 0 {
		return fmt.Errorf("gate.debounce must be >= 0, got %v", c.Gate.Debounce.Std())
	}
	if c.Gate.AutoSubmitLength < 0 {
		return fmt.Errorf("gate.autoSubmitLength must be >= 0, got %d", c.Gate.AutoSubmitLength)
	}
	if c.Gate.MaxLength > 0 && c.Gate.AutoSubmitLength > c.Gate.MaxLength {
		return fmt.Errorf("gate.autoSubmitLength (%d) exceeds gate.maxLength (%d)", c.Gate.AutoSubmitLength, c.Gate.MaxLength)
	}

	if c.Particles.PointCount < 1 {
		return fmt.Errorf("particles.pointCount must be >= 1, got %d", c.Particles.PointCount)
	}
	for name, v := range map[string]float64{
		"shakeDecay":   c.Particles.ShakeDecay,
		"spreadDecay":  c.Particles.SpreadDecay,
		"holdDecay":    c.Particles.HoldDecay,
		"collapseRate": c.Particles.CollapseRate,
		"scrollDecay":  c.Particles.ScrollDecay,
	} {
		// 衰减系数必须落在 [0, 1)，否则幅度不会单调趋近 0
		if v < 0 || v >= 1 {
			return fmt.Errorf("particles.%s must be in [0, 1), got %v", name, v)
		}
	}
	for name, v := range map[string]float64{
		"spreadEase": c.Particles.SpreadEase,
		"expandEase": c.Particles.ExpandEase,
	} {
		// 跟随速度必须落在 (0, 1]，否则无法收敛到目标
		if v <= 0 || v > 1 {
			return fmt.Errorf("particles.%s must be in (0, 1], got %v", name, v)
		}
	}
	if c.Particles.EffectThreshold <= 0 {
		return fmt.Errorf("particles.effectThreshold must be positive, got %v", c.Particles.EffectThreshold)
	}

	if c.Menu.Radius <= 0 {
		return fmt.Errorf("menu.radius must be positive, got %v", c.Menu.Radius)
	}
	if c.Menu.RingEnterDelay < 0 || c.Menu.RingExitDelay < 0 || c.Menu.ContentEnterDelay < 0 || c.Menu.ContentExitDelay < 0 {
		return fmt.Errorf("menu transition delays must be >= 0")
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov must be in (0, 180), got %v", c.Camera.FOV)
	}

	if len(c.Items) == 0 {
		return fmt.Errorf("items cannot be empty")
	}
	for i, item := range c.Items {
		if item.Label == "" {
			return fmt.Errorf("items[%d].label cannot be empty", i)
		}
	}

	return nil
}
