package effects

import (
	"image/color"
	"math"

	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/config"
)

var confettiColors = []color.NRGBA{
	{R: 230, G: 60, B: 70, A: 255},
	{R: 250, G: 200, B: 40, A: 255},
	{R: 60, G: 180, B: 90, A: 255},
	{R: 60, G: 130, B: 230, A: 255},
	{R: 180, G: 80, B: 220, A: 255},
}

// Joker 小丑：旋转下落的彩纸，偶尔整屏故障（位移 + 透明度下降），下一帧未触发即恢复
type Joker struct {
	base
	cfg config.JokerConfig

	confetti  *particle.Pool
	glitching bool
	glitches  int
}

// NewJoker creates the confetti effect with its full initial population.
func NewJoker(env Env) *Joker {
	j := &Joker{
		base: newBase(KeyJoker, env),
		cfg:  configOf(env).Joker,
	}
	j.confetti = j.ownPool(j.cfg.Count)

	for i := 0; i < j.cfg.Count; i++ {
		j.confetti.Spawn(particle.Record{
			X:        j.rng.Float64() * j.vp.Width,
			Y:        j.rng.Float64() * j.vp.Height,
			VY:       j.cfg.FallSpeed.Sample(j.rng),
			Size:     j.cfg.Size.Sample(j.rng),
			Rotation: j.rng.Float64() * 2 * math.Pi,
			Spin:     j.cfg.Spin.Sample(j.rng),
			Alpha:    0.85,
			Color:    confettiColors[j.rng.Intn(len(confettiColors))],
		})
	}
	return j
}

// Update rolls the glitch, drops and spins the confetti.
func (j *Joker) Update(dt float64) {
	if !j.tick(dt) {
		return
	}

	if j.chance(j.cfg.GlitchChance, dt) {
		j.glitching = true
		j.glitches++
		j.offsetX = particle.Signed(j.rng, j.cfg.GlitchOffset)
		j.offsetY = particle.Signed(j.rng, j.cfg.GlitchOffset*0.25)
		j.sceneAlpha = j.cfg.GlitchAlpha
	} else {
		j.glitching = false
		j.offsetX, j.offsetY = 0, 0
		j.sceneAlpha = 1
	}

	j.confetti.Advance(dt, func(r *particle.Record) {
		r.Y += r.VY * dt
		r.Rotation += r.Spin * dt
		if r.Y > j.vp.Height+r.Size {
			r.Y = -r.Size
			r.X = j.rng.Float64() * j.vp.Width
		}
	})
}

// Draw renders each confetti piece as a rotated rectangle.
func (j *Joker) Draw(c *Canvas) {
	if j.destroyed {
		return
	}
	sc := j.scene(c)
	px := j.textures.get(texturePixel)
	for _, r := range j.confetti.Records() {
		sc.DrawSprite(px, Sprite{
			X:        r.X,
			Y:        r.Y,
			Width:    r.Size,
			Height:   r.Size * 0.5,
			Rotation: r.Rotation,
			Color:    r.Color,
			Alpha:    r.Alpha,
		})
	}
}

// Glitching reports whether the current frame is glitched.
func (j *Joker) Glitching() bool {
	return j.glitching
}

// GlitchCount returns how many frames have glitched.
func (j *Joker) GlitchCount() int {
	return j.glitches
}

// Scene returns the current whole-scene offset and opacity.
func (j *Joker) Scene() (offsetX, offsetY, alpha float64) {
	return j.offsetX, j.offsetY, j.sceneAlpha
}
