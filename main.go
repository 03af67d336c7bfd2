package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/boardfx/pkg/app"
	"github.com/gonewx/boardfx/pkg/config"
	"github.com/gonewx/boardfx/pkg/embedded"
)

var (
	mechanicFlag = flag.String("mechanic", "none", "Board mechanic (none, random_elemental, poison, joker, foggy, or an element)")
	elementFlag  = flag.String("element", "", "Active element for random_elemental (fire, water, earth, wind, lightning)")
	seedFlag     = flag.Int64("seed", 0, "Fixed random seed for effect instances (0 = random)")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	// 初始化嵌入数据，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verboseFlag,
		Mechanic: *mechanicFlag,
		Element:  *elementFlag,
		Seed:     *seedFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 启动主循环，直到窗口关闭
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
