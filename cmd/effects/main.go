// Package main provides an effect viewer tool for previewing and tuning the
// board-modifier effects.
//
// Usage:
//
//	go run ./cmd/effects [flags]
//
// Flags:
//
//	--mechanic <name>    Start with a board mechanic (e.g., --mechanic=poison)
//	--element <name>     Element for random_elemental (e.g., --element=fire)
//	--auto-play          Cycle through effects automatically
//	--seed <n>           Fixed random seed (0 = random)
//	--verbose            Enable verbose logging
//
// Controls:
//
//	Left/Right Arrow  - Previous/next effect
//	Home              - Back to none
//	R                 - Restart the current effect
//	A                 - Toggle auto-play
//	- / =             - Auto-play interval -1s / +1s
//	H                 - Toggle HUD
//	S                 - Save preferences
//	F11               - Toggle fullscreen
//	Q/Escape          - Quit
//
// Preferences (last effect, auto-play, HUD) are stored with gdata and restored
// on the next start unless a flag overrides them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/quasilyte/gdata/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/boardfx/pkg/app"
	"github.com/gonewx/boardfx/pkg/config"
	"github.com/gonewx/boardfx/pkg/effects"
	"github.com/gonewx/boardfx/pkg/embedded"
	"github.com/gonewx/boardfx/pkg/game"
)

const (
	screenWidth  = 1024
	screenHeight = 768
	hudLineStep  = 16
)

var (
	mechanicFlag = flag.String("mechanic", "", "Start with a board mechanic")
	elementFlag  = flag.String("element", "", "Element for random_elemental")
	autoPlayFlag = flag.Bool("auto-play", false, "Cycle through effects automatically")
	seedFlag     = flag.Int64("seed", 0, "Fixed random seed (0 = random)")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var (
	hudColor    = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	hudDimColor = color.RGBA{R: 160, G: 170, B: 180, A: 255}
)

// EffectViewer wraps the app with viewer controls and a HUD.
type EffectViewer struct {
	*app.App

	settings *game.SettingsManager
	face     text.Face

	lastSwitch    time.Time
	statusMessage string
}

// NewEffectViewer creates the viewer, restoring saved preferences.
func NewEffectViewer(sm *game.SettingsManager) (*EffectViewer, error) {
	prefs := sm.GetSettings()

	modifier := prefs.Modifier
	if *mechanicFlag != "" {
		modifier = game.BoardModifier{Mechanic: *mechanicFlag, Element: *elementFlag}
	}
	if *autoPlayFlag {
		sm.SetAutoPlay(true)
	}

	a, err := app.NewApp(app.Config{
		Verbose:  *verboseFlag,
		Mechanic: modifier.Mechanic,
		Element:  modifier.Element,
		Seed:     *seedFlag,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create app: %w", err)
	}

	v := &EffectViewer{
		App:        a,
		settings:   sm,
		face:       text.NewGoXFace(basicfont.Face7x13),
		lastSwitch: time.Now(),
	}
	v.State().OnModifierChange(func(m game.BoardModifier) {
		v.settings.SetModifier(m)
		v.lastSwitch = time.Now()
		v.statusMessage = fmt.Sprintf("Switched to %s", m)
	})
	sm.SetModifier(modifier)
	return v, nil
}

// Update handles viewer keys, then runs the app frame.
func (v *EffectViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.State().CycleModifier(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.State().CycleModifier(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		v.State().SetModifier(game.DemoModifiers[0])
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.restart()
	}

	prefs := v.settings.GetSettings()
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.settings.SetAutoPlay(!prefs.AutoPlay)
		v.lastSwitch = time.Now()
		v.statusMessage = fmt.Sprintf("Auto-play: %v", prefs.AutoPlay)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		v.settings.SetAutoPlayTime(prefs.AutoPlayTime - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		v.settings.SetAutoPlayTime(prefs.AutoPlayTime + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.settings.SetShowHUD(!prefs.ShowHUD)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.savePrefs()
	}

	if autoPlayDue(prefs.AutoPlay, time.Since(v.lastSwitch), prefs.AutoPlayTime) {
		v.State().CycleModifier(1)
	}

	return v.App.Update()
}

// restart 重新创建当前特效
func (v *EffectViewer) restart() {
	m := v.State().Modifier()
	v.Host().SetEffectKey(effects.KeyNone)
	v.Host().SetBoardModifier(m.Mechanic, m.Element)
	v.lastSwitch = time.Now()
	v.statusMessage = fmt.Sprintf("Restarted %s", m)
	log.Printf("[Viewer] Restarted %s", m)
}

func (v *EffectViewer) savePrefs() {
	v.settings.SetFullscreen(ebiten.IsFullscreen())
	if err := v.settings.Save(); err != nil {
		v.statusMessage = fmt.Sprintf("Save failed: %v", err)
		log.Printf("[Viewer] Warning: %v", err)
		return
	}
	v.statusMessage = "Preferences saved"
}

// Draw renders the app then the HUD on top.
func (v *EffectViewer) Draw(screen *ebiten.Image) {
	v.App.Draw(screen)
	if !v.settings.GetSettings().ShowHUD {
		return
	}

	info := hudInfo{
		Modifier:  v.State().Modifier(),
		Key:       v.Host().CurrentKey(),
		Layer:     v.Host().Layer(),
		Particles: 0,
		AutoPlay:  v.settings.GetSettings().AutoPlay,
		Interval:  v.settings.GetSettings().AutoPlayTime,
		TPS:       ebiten.ActualTPS(),
		FPS:       ebiten.ActualFPS(),
		Status:    v.statusMessage,
	}
	if inst := v.Host().Current(); inst != nil {
		info.Particles = inst.LiveParticles()
	}
	v.drawLines(screen, info.lines(), 10, 10, hudColor)

	controls := []string{
		"<-/-> = Prev/Next  Home = None  R = Restart  A = Auto-play  -/= = Interval",
		"H = HUD  S = Save prefs  F11 = Fullscreen  Q = Quit",
	}
	_, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	v.drawLines(screen, controls, 10, float64(h-len(controls)*hudLineStep-10), hudDimColor)
}

func (v *EffectViewer) drawLines(screen *ebiten.Image, lines []string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = hudLineStep
	text.Draw(screen, strings.Join(lines, "\n"), v.face, op)
}

// hudInfo HUD 显示的数据
type hudInfo struct {
	Modifier  game.BoardModifier
	Key       effects.Key
	Layer     effects.Layer
	Particles int
	AutoPlay  bool
	Interval  float64
	TPS, FPS  float64
	Status    string
}

func (h hudInfo) lines() []string {
	lines := []string{
		fmt.Sprintf("Board Effect Viewer - %s", h.Modifier),
		fmt.Sprintf("Effect: %s (%s layer)", h.Key, h.Layer),
		fmt.Sprintf("Live particles: %d", h.Particles),
		fmt.Sprintf("TPS: %.0f  FPS: %.0f", h.TPS, h.FPS),
	}
	if h.AutoPlay {
		lines = append(lines, fmt.Sprintf("AUTO-PLAY every %.0fs", h.Interval))
	}
	if h.Status != "" {
		lines = append(lines, h.Status)
	}
	return lines
}

// autoPlayDue 自动轮播是否到了切换时间
func autoPlayDue(enabled bool, elapsed time.Duration, intervalSeconds float64) bool {
	return enabled && intervalSeconds > 0 && elapsed.Seconds() >= intervalSeconds
}

// openSettings 打开偏好存储，失败时进入降级模式
func openSettings() *game.SettingsManager {
	gm, err := gdata.Open(gdata.Config{AppName: "boardfx_viewer"})
	if err != nil {
		log.Printf("[Viewer] Warning: preferences unavailable: %v", err)
		gm = nil
	}
	sm, err := game.NewSettingsManager(gm)
	if err != nil {
		log.Printf("[Viewer] Warning: %v", err)
	}
	return sm
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}
	log.Println("=== Board Effect Viewer ===")

	// 从工作目录读取 data/effects.yaml，缺失时使用内置默认值
	embedded.Init(os.DirFS("."))
	if !embedded.Exists(config.EffectsConfigPath) {
		log.Printf("[Viewer] %s not found, using built-in defaults", config.EffectsConfigPath)
	}

	sm := openSettings()
	viewer, err := NewEffectViewer(sm)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal("Failed to initialize viewer:", err)
	}
	defer viewer.Close()

	if sm.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Board Effect Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	if err := sm.Save(); err != nil {
		log.Printf("[Viewer] Warning: failed to save preferences: %v", err)
	}
	log.Println("Effect viewer closed")
}
