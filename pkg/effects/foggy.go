package effects

import (
	"image/color"

	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/config"
)

var (
	mistColor  = color.NRGBA{R: 205, G: 210, B: 220, A: 255}
	grainColor = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
)

// Foggy 迷雾：大块柔和雾团缓慢左移，叠加一层每帧抖动的静态颗粒
type Foggy struct {
	base
	cfg config.FoggyConfig

	mist  *particle.Pool
	grain *particle.Pool

	grainOffsetX, grainOffsetY float64
}

// NewFoggy creates the mist sprites and the one-time grain field.
func NewFoggy(env Env) *Foggy {
	f := &Foggy{
		base: newBase(KeyFoggy, env),
		cfg:  configOf(env).Foggy,
	}
	f.mist = f.ownPool(f.cfg.MistCount)
	f.grain = f.ownPool(f.cfg.GrainCount)

	for i := 0; i < f.cfg.MistCount; i++ {
		f.mist.Spawn(particle.Record{
			X:     f.rng.Float64() * f.vp.Width,
			Y:     f.rng.Float64() * f.vp.Height,
			VX:    -f.cfg.MistSpeed.Sample(f.rng),
			Size:  f.cfg.MistRadius.Sample(f.rng),
			Alpha: f.cfg.MistAlpha.Sample(f.rng),
		})
	}
	for i := 0; i < f.cfg.GrainCount; i++ {
		f.grain.Spawn(particle.Record{
			X:     f.rng.Float64() * f.vp.Width,
			Y:     f.rng.Float64() * f.vp.Height,
			Size:  particle.RandomInRange(f.rng, 1, 1.5),
			Alpha: f.cfg.GrainAlpha,
		})
	}
	return f
}

// Update drifts the mist left and re-rolls the grain jitter.
func (f *Foggy) Update(dt float64) {
	if !f.tick(dt) {
		return
	}

	f.mist.Advance(dt, func(r *particle.Record) {
		r.X += r.VX * dt
		// 完全离开左边缘后回到右边缘外侧
		if r.X+r.Size < 0 {
			r.X = f.vp.Width + r.Size
		}
	})
	f.grain.Advance(dt, nil)

	f.grainOffsetX = particle.Signed(f.rng, f.cfg.GrainJitter)
	f.grainOffsetY = particle.Signed(f.rng, f.cfg.GrainJitter)
}

// Draw renders mist sprites then the jittered grain field.
func (f *Foggy) Draw(c *Canvas) {
	if f.destroyed {
		return
	}
	sc := f.scene(c)

	tex := f.textures.get(textureMist)
	for _, r := range f.mist.Records() {
		d := r.Size * 2
		sc.DrawSprite(tex, Sprite{X: r.X, Y: r.Y, Width: d, Height: d, Color: mistColor, Alpha: r.Alpha})
	}

	gc := sc.WithScene(f.grainOffsetX, f.grainOffsetY, 1)
	for _, r := range f.grain.Records() {
		gc.FillRect(r.X, r.Y, r.Size, r.Size, grainColor, r.Alpha)
	}
}

// GrainOffset returns this frame's grain jitter.
func (f *Foggy) GrainOffset() (x, y float64) {
	return f.grainOffsetX, f.grainOffsetY
}
