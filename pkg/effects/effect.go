// Package effects implements the ambient board-modifier effects: one
// generator per effect key, the registry that maps keys to generators, and the
// drawing helpers they share.
//
// Every generator follows the same per-frame shape driven by dt:
// spawn → advance → cull → sync render state. Drawing is separate (Draw) and
// never mutates simulation state.
package effects

import (
	"math"
	"math/rand"

	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/config"
)

// Viewport is the overlay size in device-independent pixels.
type Viewport struct {
	Width, Height float64
}

// Instance is a running effect. The host calls Update once per frame,
// Resize on viewport changes and Destroy exactly once.
type Instance interface {
	Key() Key
	Update(dt float64)
	Resize(width, height float64)
	Draw(c *Canvas)
	Destroy()
	// LiveParticles returns the number of particle records the instance still owns.
	LiveParticles() int
}

// Env is everything a generator needs at construction time.
type Env struct {
	Viewport Viewport
	Rand     *rand.Rand
	Config   *config.EffectsConfig
}

// base 所有特效共享的簿记：视口、随机源、粒子池、全屏图层、纹理与整体偏移
type base struct {
	key       Key
	vp        Viewport
	rng       *rand.Rand
	nominal   float64 // 名义帧时长（秒）
	clock     float64 // 实例自身累计时间（秒）
	destroyed bool

	pools    []*particle.Pool
	overlays []*Overlay
	textures textureSet

	// 整体场景偏移与透明度（震屏、故障）
	offsetX, offsetY float64
	sceneAlpha       float64

	resizeCount int
}

func newBase(key Key, env Env) base {
	rng := env.Rand
	if rng == nil {
		rng = particle.NewRand(particle.EntropySeed())
	}
	cfg := configOf(env)
	return base{
		key:        key,
		vp:         env.Viewport,
		rng:        rng,
		nominal:    cfg.Host.NominalFrame,
		sceneAlpha: 1,
		textures:   textureSet{},
	}
}

// Key returns the effect key.
func (b *base) Key() Key {
	return b.key
}

// Viewport returns the cached viewport.
func (b *base) Viewport() Viewport {
	return b.vp
}

// Destroyed reports whether Destroy has run.
func (b *base) Destroyed() bool {
	return b.destroyed
}

// ownPool creates a particle pool owned (and later cleared) by this instance.
func (b *base) ownPool(capacity int) *particle.Pool {
	p := particle.NewPool(capacity)
	b.pools = append(b.pools, p)
	return p
}

// ownOverlay registers a viewport-anchored drawable and anchors it immediately.
func (b *base) ownOverlay(o *Overlay) *Overlay {
	o.Anchor(b.vp)
	b.overlays = append(b.overlays, o)
	return o
}

// Resize caches the new viewport and re-anchors every overlay.
// Particle positions are left alone; they wrap back into the new bounds.
func (b *base) Resize(width, height float64) {
	if b.destroyed {
		return
	}
	b.vp = Viewport{Width: width, Height: height}
	for _, o := range b.overlays {
		o.Anchor(b.vp)
	}
	b.resizeCount++
}

// Destroy releases particles, overlays and GPU textures. Safe to call twice.
func (b *base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	for _, p := range b.pools {
		p.Clear()
	}
	b.pools = nil
	b.overlays = nil
	b.textures.release()
}

// LiveParticles sums the records in every owned pool.
func (b *base) LiveParticles() int {
	n := 0
	for _, p := range b.pools {
		n += p.Len()
	}
	return n
}

// tick advances the instance clock; returns false if the instance is gone
// and the caller should skip the frame.
func (b *base) tick(dt float64) bool {
	if b.destroyed || dt <= 0 {
		return false
	}
	b.clock += dt
	return true
}

// frames converts dt into a count of nominal frames.
func (b *base) frames(dt float64) float64 {
	if b.nominal <= 0 {
		return dt * 60
	}
	return dt / b.nominal
}

// chance rolls a per-nominal-frame probability p scaled to dt, so a trigger
// fires with the same expected rate at any frame rate.
func (b *base) chance(p, dt float64) bool {
	if p <= 0 {
		return false
	}
	expected := p * b.frames(dt)
	if expected >= 1 {
		return true
	}
	return b.rng.Float64() < expected
}

// spawnCount returns how many spawns a per-nominal-frame probability p
// yields over dt. Exactly one Bernoulli(p) draw at dt == nominal.
func (b *base) spawnCount(p, dt float64) int {
	if p <= 0 {
		return 0
	}
	expected := p * b.frames(dt)
	n := int(math.Floor(expected))
	if b.rng.Float64() < expected-float64(n) {
		n++
	}
	return n
}

// scene returns the canvas with the instance-wide offset and opacity applied.
func (b *base) scene(c *Canvas) *Canvas {
	return c.WithScene(b.offsetX, b.offsetY, b.sceneAlpha)
}

// drawOverlays draws every owned overlay onto c.
func (b *base) drawOverlays(c *Canvas) {
	for _, o := range b.overlays {
		o.Draw(c, &b.textures)
	}
}

// configOf returns env.Config or the built-in defaults.
func configOf(env Env) *config.EffectsConfig {
	if env.Config != nil {
		return env.Config
	}
	return config.DefaultEffectsConfig()
}
