package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/config"
	"github.com/gonewx/boardfx/pkg/effects"
)

var (
	// ErrHostDisposed is returned by Initialize after Dispose.
	ErrHostDisposed = errors.New("effects host disposed")
	// ErrHostInitialized is returned by a second Initialize call.
	ErrHostInitialized = errors.New("effects host already initialized")
)

// HostOptions 宿主依赖，零值字段使用默认实现
type HostOptions struct {
	Registry    effects.Registry
	Config      *config.EffectsConfig
	Scheduler   *FrameScheduler
	Now         func() time.Time
	Seed        func() int64 // 每个特效实例的随机种子
	NewSurface  SurfaceFactory
	DeviceScale func() float64 // 未封顶的设备像素比
}

// EffectsHost owns the render surface, the frame loop and the single live
// effect instance. It is driven from the game loop goroutine; only surface
// creation runs elsewhere.
type EffectsHost struct {
	mu sync.Mutex

	registry    effects.Registry
	cfg         *config.EffectsConfig
	scheduler   *FrameScheduler
	now         func() time.Time
	seed        func() int64
	newSurface  SurfaceFactory
	deviceScale func() float64

	viewport    effects.Viewport
	surface     RenderSurface
	initialized bool
	ready       chan struct{}

	currentKey effects.Key
	current    effects.Instance

	frameID   int
	lastFrame time.Time
	ticked    bool
	frames    int

	disposed bool
}

// NewEffectsHost creates a host with no effect and no surface.
func NewEffectsHost(opts HostOptions) *EffectsHost {
	h := &EffectsHost{
		registry:    opts.Registry,
		cfg:         opts.Config,
		scheduler:   opts.Scheduler,
		now:         opts.Now,
		seed:        opts.Seed,
		newSurface:  opts.NewSurface,
		deviceScale: opts.DeviceScale,
		currentKey:  effects.KeyNone,
		ready:       make(chan struct{}),
	}
	if h.registry == nil {
		h.registry = effects.DefaultRegistry()
	}
	if h.cfg == nil {
		h.cfg = config.DefaultEffectsConfig()
	}
	if h.scheduler == nil {
		h.scheduler = NewFrameScheduler()
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.seed == nil {
		h.seed = particle.EntropySeed
	}
	if h.newSurface == nil {
		h.newSurface = NewImageSurface
	}
	if h.deviceScale == nil {
		h.deviceScale = func() float64 { return DeviceScale(0) }
	}
	return h
}

// Initialize records the viewport, starts creating the render surface in the
// background and requests the first frame. Surface failures are logged and
// leave the host drawing nothing.
func (h *EffectsHost) Initialize(ctx context.Context, vp effects.Viewport) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed {
		return ErrHostDisposed
	}
	if h.initialized {
		return ErrHostInitialized
	}
	h.initialized = true
	h.viewport = vp
	// 初始化前设置的 key 此时才按真实视口构建
	if h.current == nil {
		h.buildCurrent()
	}

	scale := CapScale(h.deviceScale(), h.cfg.Host.MaxDeviceScale)
	go h.createSurface(ctx, vp, scale)

	h.frameID = h.scheduler.RequestFrame(h.tick)
	log.Printf("[EffectsHost] Initialized %.0fx%.0f (scale %.2f)", vp.Width, vp.Height, scale)
	return nil
}

// createSurface 在后台创建渲染表面；宿主已销毁时直接释放
func (h *EffectsHost) createSurface(ctx context.Context, vp effects.Viewport, scale float64) {
	defer close(h.ready)

	surface, err := h.callFactory(ctx, vp, scale)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed {
		if surface != nil {
			surface.Dispose()
		}
		log.Printf("[EffectsHost] Render surface resolved after dispose, released")
		return
	}
	if err != nil {
		log.Printf("[EffectsHost] Warning: render surface unavailable: %v", err)
		return
	}
	// 创建期间可能发生过 resize
	if h.viewport != vp {
		surface.Resize(int(h.viewport.Width), int(h.viewport.Height))
	}
	h.surface = surface
}

func (h *EffectsHost) callFactory(ctx context.Context, vp effects.Viewport, scale float64) (surface RenderSurface, err error) {
	defer func() {
		if r := recover(); r != nil {
			surface, err = nil, fmt.Errorf("surface factory panicked: %v", r)
		}
	}()
	return h.newSurface(ctx, int(vp.Width), int(vp.Height), scale)
}

// Ready is closed once surface creation has finished, successfully or not.
func (h *EffectsHost) Ready() <-chan struct{} {
	return h.ready
}

// SetEffectKey switches the live effect. The same key is a no-op; otherwise
// the current instance is destroyed before the new one is built. Before
// Initialize the key is only recorded; the instance is built once the
// viewport is known.
func (h *EffectsHost) SetEffectKey(key effects.Key) {
	if key == "" {
		key = effects.KeyNone
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed || key == h.currentKey {
		return
	}

	prev := h.currentKey
	h.destroyCurrent()
	h.currentKey = key

	if !h.initialized {
		log.Printf("[EffectsHost] Effect %s -> %s (deferred until Initialize)", prev, key)
		return
	}
	h.buildCurrent()
	log.Printf("[EffectsHost] Effect %s -> %s", prev, key)
}

// buildCurrent 按当前 key 和视口构建实例（调用方持有锁）
func (h *EffectsHost) buildCurrent() {
	var inst effects.Instance
	ok := h.guard("Build", func() {
		inst = h.registry.Build(h.currentKey, effects.Env{
			Viewport: h.viewport,
			Rand:     particle.NewRand(h.seed()),
			Config:   h.cfg,
		})
	})
	if ok {
		h.current = inst
	}
}

// SetBoardModifier resolves the effect key from the board state and applies it.
func (h *EffectsHost) SetBoardModifier(mechanic, element string) {
	h.SetEffectKey(effects.ResolveKey(mechanic, element))
}

// tick 帧回调：计算 dt、推进当前特效并预约下一帧
func (h *EffectsHost) tick(now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed {
		return
	}

	dt := h.cfg.Host.NominalFrame
	if h.ticked {
		dt = now.Sub(h.lastFrame).Seconds()
	}
	if dt < 0 {
		dt = 0
	}
	if maxDelta := h.cfg.Host.MaxFrameDelta; maxDelta > 0 && dt > maxDelta {
		dt = maxDelta
	}
	h.lastFrame = now
	h.ticked = true
	h.frames++

	if h.current != nil {
		h.guard("Update", func() { h.current.Update(dt) })
	}

	h.frameID = h.scheduler.RequestFrame(h.tick)
}

// OnResize propagates a viewport change to the surface and the live effect.
func (h *EffectsHost) OnResize(width, height float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed || width <= 0 || height <= 0 {
		return
	}
	vp := effects.Viewport{Width: width, Height: height}
	if vp == h.viewport {
		return
	}
	h.viewport = vp

	if h.surface != nil {
		h.surface.Resize(int(width), int(height))
	}
	if h.current != nil {
		h.guard("Resize", func() { h.current.Resize(width, height) })
	}
}

// Draw renders the live effect onto screen if it belongs to layer.
func (h *EffectsHost) Draw(screen *ebiten.Image, layer effects.Layer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed || h.surface == nil || h.current == nil {
		return
	}
	if h.currentKey.Layer() != layer {
		return
	}

	h.surface.Clear()
	if !h.guard("Draw", func() { h.current.Draw(h.surface.Canvas()) }) {
		return
	}

	img := h.surface.Image()
	if screen == nil || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1/h.surface.Scale(), 1/h.surface.Scale())
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// Dispose stops the frame loop and releases the effect and the surface.
// Safe to call more than once.
func (h *EffectsHost) Dispose() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.disposed {
		return
	}
	h.disposed = true
	if h.frameID != 0 {
		h.scheduler.CancelFrame(h.frameID)
		h.frameID = 0
	}
	h.destroyCurrent()
	if h.surface != nil {
		h.surface.Dispose()
		h.surface = nil
	}
	log.Printf("[EffectsHost] Disposed after %d frames", h.frames)
}

// destroyCurrent 销毁当前实例（调用方持有锁）
func (h *EffectsHost) destroyCurrent() {
	if h.current == nil {
		return
	}
	inst := h.current
	h.current = nil
	h.guard("Destroy", inst.Destroy)
}

// guard runs fn and recovers a panic from the live effect. A panicking
// instance is dropped; the key is kept so the same key is not rebuilt.
// Returns false if fn panicked. Caller holds the lock.
func (h *EffectsHost) guard(op string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[EffectsHost] Error: effect %s panicked in %s: %v", h.currentKey, op, r)
			ok = false
			if inst := h.current; inst != nil && op != "Destroy" {
				h.current = nil
				h.guard("Destroy", inst.Destroy)
			}
		}
	}()
	fn()
	return true
}

// CurrentKey returns the key of the live effect.
func (h *EffectsHost) CurrentKey() effects.Key {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentKey
}

// Current returns the live instance, nil for none.
func (h *EffectsHost) Current() effects.Instance {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Layer returns where the live effect draws relative to the board.
func (h *EffectsHost) Layer() effects.Layer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentKey.Layer()
}

// Viewport returns the last viewport seen by the host.
func (h *EffectsHost) Viewport() effects.Viewport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewport
}

// HasSurface reports whether the render surface is ready.
func (h *EffectsHost) HasSurface() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.surface != nil
}

// Disposed reports whether Dispose has run.
func (h *EffectsHost) Disposed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disposed
}

// FrameCount returns how many frame ticks have run.
func (h *EffectsHost) FrameCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}
