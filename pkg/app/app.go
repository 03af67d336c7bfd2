// Package app 提供特效演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/config"
	"github.com/gonewx/boardfx/pkg/effects"
	"github.com/gonewx/boardfx/pkg/game"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Mechanic 初始棋盘机制（如 "fire"、"random_elemental"）
	Mechanic string
	// Element 随机元素机制下当前选中的元素
	Element string
	// Seed 固定随机种子，0 表示使用系统熵
	Seed int64
}

var backgroundColor = color.RGBA{R: 22, G: 26, B: 34, A: 255}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	host        *game.EffectsHost
	unsubscribe func() // 取消 GameState 监听
	scheduler   *game.FrameScheduler
	state       *game.GameState
	board       *boardPlaceholder
	verbose     bool

	width, height int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入数据；未初始化时使用内置默认参数。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	return newApp(cfg, game.HostOptions{})
}

// newApp 组装应用；opts 中未设置的依赖由这里补齐
func newApp(cfg Config, opts game.HostOptions) (*App, error) {
	if opts.Config == nil {
		opts.Config = config.LoadEffectsConfigOrDefault(config.EffectsConfigPath)
	}
	if opts.Scheduler == nil {
		opts.Scheduler = game.NewFrameScheduler()
	}
	if opts.Seed == nil {
		opts.Seed = seedSource(cfg.Seed)
	}

	host := game.NewEffectsHost(opts)
	state := game.GetGameState()
	unsubscribe := state.OnModifierChange(func(m game.BoardModifier) {
		log.Printf("[App] Board modifier changed: %s", m)
		host.SetBoardModifier(m.Mechanic, m.Element)
	})

	a := &App{
		host:        host,
		unsubscribe: unsubscribe,
		scheduler:   opts.Scheduler,
		state:       state,
		board:       newBoardPlaceholder(),
		verbose:     cfg.Verbose,
		width:       config.GameWindowWidth,
		height:      config.GameWindowHeight,
	}

	vp := effects.Viewport{Width: float64(a.width), Height: float64(a.height)}
	if err := host.Initialize(context.Background(), vp); err != nil {
		unsubscribe()
		return nil, fmt.Errorf("特效宿主初始化失败: %w", err)
	}

	mechanic := cfg.Mechanic
	if mechanic == "" {
		mechanic = string(effects.KeyNone)
	}
	state.SetBoardModifier(mechanic, cfg.Element)
	// 状态未变化时监听器不会触发，这里显式同步一次
	host.SetBoardModifier(mechanic, cfg.Element)

	log.Printf("[App] Started with %s/%s -> %s", mechanic, cfg.Element, host.CurrentKey())
	return a, nil
}

// seedSource 返回每个特效实例的种子来源
// seed 非 0 时产生可复现的种子序列
func seedSource(seed int64) func() int64 {
	if seed == 0 {
		return particle.EntropySeed
	}
	rng := particle.NewRand(seed)
	return rng.Int63
}

// Update 驱动帧调度器并处理全屏切换
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.scheduler.RunFrame(time.Now())
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
}

// Draw 按层级绘制：背景特效 → 棋盘 → 前景特效
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.host.Draw(screen, effects.LayerBackground)
	a.board.Draw(screen, float64(a.width), float64(a.height))
	a.host.Draw(screen, effects.LayerForeground)
}

// Layout 逻辑尺寸跟随窗口，特效层始终铺满视口
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.width, a.height
	}
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.host.OnResize(float64(outsideWidth), float64(outsideHeight))
	}
	return a.width, a.height
}

// Close 取消状态监听并释放特效宿主
func (a *App) Close() {
	a.unsubscribe()
	a.host.Dispose()
}

// Host 返回特效宿主
func (a *App) Host() *game.EffectsHost {
	return a.host
}

// State 返回棋盘状态
func (a *App) State() *game.GameState {
	return a.state
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
