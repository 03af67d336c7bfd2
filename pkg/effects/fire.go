package effects

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/config"
	"github.com/gonewx/boardfx/pkg/utils"
)

var (
	fireGlowColor = color.NRGBA{R: 255, G: 100, B: 25, A: 255}
	emberHot      = color.NRGBA{R: 255, G: 210, B: 90, A: 255}
	emberCool     = color.NRGBA{R: 255, G: 80, B: 20, A: 255}
)

// Fire 火焰：底部持续冒出余烬，余烬上升并左右摇摆，底部光晕随时间呼吸
type Fire struct {
	base
	cfg config.FireConfig

	embers *particle.Pool
	glow   *Overlay
}

// NewFire creates the ember effect. The population starts empty and builds
// up from the bottom edge.
func NewFire(env Env) *Fire {
	f := &Fire{
		base: newBase(KeyFire, env),
		cfg:  configOf(env).Fire,
	}
	f.embers = f.ownPool(f.cfg.MaxEmbers)
	f.glow = f.ownOverlay(&Overlay{
		Mode:     AnchorBottom,
		Fraction: f.cfg.GlowHeight,
		Color:    fireGlowColor,
		Alpha:    f.cfg.GlowAlpha,
		Texture:  textureGradientV,
		Blend:    ebiten.BlendLighter,
	})
	return f
}

// Update spawns, moves and culls embers and pulses the glow.
func (f *Fire) Update(dt float64) {
	if !f.tick(dt) {
		return
	}

	for n := f.spawnCount(f.cfg.SpawnChance, dt); n > 0; n-- {
		f.spawn()
	}

	f.embers.Advance(dt, func(r *particle.Record) {
		frac := r.AgeFraction()
		r.Y += r.VY * dt
		// 摆动幅度随年龄增大
		r.X = r.OriginX + math.Sin(2*math.Pi*r.Frequency*r.Age+r.Phase)*r.Amplitude*frac
		r.Alpha = 1 - frac
		r.Scale = 1 - frac
	})

	f.glow.Alpha = utils.Clamp01(utils.Pulse(f.clock, f.cfg.GlowPulseRate, f.cfg.GlowAlpha, f.cfg.GlowPulse))
}

func (f *Fire) spawn() {
	size := f.cfg.Size.Sample(f.rng)
	x := f.rng.Float64() * f.vp.Width
	heat := f.rng.Float64()
	f.embers.Spawn(particle.Record{
		X:         x,
		Y:         f.vp.Height + size,
		OriginX:   x,
		VY:        -f.cfg.RiseSpeed.Sample(f.rng),
		Amplitude: f.cfg.SwayAmplitude.Sample(f.rng),
		Frequency: f.cfg.SwayFrequency.Sample(f.rng),
		Phase:     f.rng.Float64() * 2 * math.Pi,
		MaxAge:    f.cfg.Lifetime.Sample(f.rng),
		Size:      size,
		Alpha:     1,
		Scale:     1,
		Color:     lerpColor(emberCool, emberHot, heat),
	})
}

// Draw renders the glow band and the embers with additive blending.
func (f *Fire) Draw(c *Canvas) {
	if f.destroyed {
		return
	}
	sc := f.scene(c)
	f.drawOverlays(sc)

	dot := f.textures.get(textureSoftDot)
	for _, r := range f.embers.Records() {
		d := r.Size * 3 * r.Scale
		sc.DrawSprite(dot, Sprite{
			X:      r.X,
			Y:      r.Y,
			Width:  d,
			Height: d,
			Color:  r.Color,
			Alpha:  r.Alpha,
			Blend:  ebiten.BlendLighter,
		})
	}
}

// EmberCount returns the number of live embers.
func (f *Fire) EmberCount() int {
	return f.embers.Len()
}

// lerpColor 按 t 在两种颜色之间线性插值
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(utils.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(utils.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(utils.Lerp(float64(a.B), float64(b.B), t)),
		A: 255,
	}
}
