package effects

import (
	"image/color"
	"math"

	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/config"
	"github.com/gonewx/boardfx/pkg/utils"
)

var (
	poisonVignetteColor = color.NRGBA{R: 60, G: 150, B: 40, A: 255}
	sporeColors         = []color.NRGBA{
		{R: 140, G: 220, B: 60, A: 255},
		{R: 100, G: 190, B: 70, A: 255},
		{R: 170, G: 120, B: 210, A: 255},
	}
)

// Poison 毒：孢子向随机方向缓慢漂移并在四边环绕，暗角随时间呼吸
type Poison struct {
	base
	cfg config.PoisonConfig

	spores   *particle.Pool
	vignette *Overlay
}

// NewPoison creates the spore effect with its full initial population.
func NewPoison(env Env) *Poison {
	p := &Poison{
		base: newBase(KeyPoison, env),
		cfg:  configOf(env).Poison,
	}
	p.spores = p.ownPool(p.cfg.Count)
	p.vignette = p.ownOverlay(&Overlay{
		Mode:    AnchorFull,
		Color:   poisonVignetteColor,
		Alpha:   p.cfg.VignetteAlpha,
		Texture: textureVignette,
	})

	for i := 0; i < p.cfg.Count; i++ {
		angle := p.rng.Float64() * 2 * math.Pi
		speed := p.cfg.Speed.Sample(p.rng)
		p.spores.Spawn(particle.Record{
			X:     p.rng.Float64() * p.vp.Width,
			Y:     p.rng.Float64() * p.vp.Height,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Size:  p.cfg.Size.Sample(p.rng),
			Alpha: particle.RandomInRange(p.rng, 0.3, 0.7),
			Color: sporeColors[p.rng.Intn(len(sporeColors))],
		})
	}
	return p
}

// Update drifts spores, wraps them on every edge and pulses the vignette.
func (p *Poison) Update(dt float64) {
	if !p.tick(dt) {
		return
	}

	p.spores.Advance(dt, func(r *particle.Record) {
		r.X += r.VX * dt
		r.Y += r.VY * dt
		r.X, _ = utils.WrapAround(r.X, 0, p.vp.Width, r.Size)
		r.Y, _ = utils.WrapAround(r.Y, 0, p.vp.Height, r.Size)
	})

	p.vignette.Alpha = utils.Clamp01(utils.Pulse(p.clock, p.cfg.VignetteRate, p.cfg.VignetteAlpha, p.cfg.VignettePulse))
}

// Draw renders the vignette and the spores.
func (p *Poison) Draw(c *Canvas) {
	if p.destroyed {
		return
	}
	sc := p.scene(c)
	p.drawOverlays(sc)

	dot := p.textures.get(textureSoftDot)
	for _, r := range p.spores.Records() {
		d := r.Size * 4
		sc.DrawSprite(dot, Sprite{X: r.X, Y: r.Y, Width: d, Height: d, Color: r.Color, Alpha: r.Alpha * 0.5})
		sc.FillCircle(r.X, r.Y, r.Size*0.6, r.Color, r.Alpha)
	}
}
