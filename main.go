// Package main 是桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          输出详细日志
//	--config <path>    使用磁盘上的配置文件替代嵌入的 data/portfolio.yaml
//	--model <path>     指定 glTF/GLB 模型文件
//
// Controls:
//
//	F11               - 切换全屏
//	鼠标滚轮           - 缩放点云
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/digitorumflex/folio/pkg/app"
	"github.com/digitorumflex/folio/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", "", "Load portfolio config from disk instead of the embedded copy")
	modelFlag   = flag.String("model", "", "Path to a glTF/GLB model (overrides model.path)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		ModelPath:  *modelFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	window := gameApp.Portfolio().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	if window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
