package effects

import (
	"image/color"

	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/config"
)

var windStreakColor = color.NRGBA{R: 235, G: 245, B: 255, A: 255}

// Wind 风：高速向右的水平风线，从右侧离开后在随机高度重新出现
type Wind struct {
	base
	cfg config.WindConfig

	streaks *particle.Pool
}

// NewWind creates the streak effect with its full initial population.
func NewWind(env Env) *Wind {
	w := &Wind{
		base: newBase(KeyWind, env),
		cfg:  configOf(env).Wind,
	}
	w.streaks = w.ownPool(w.cfg.Count)

	for i := 0; i < w.cfg.Count; i++ {
		w.streaks.Spawn(particle.Record{
			X:      w.rng.Float64() * w.vp.Width,
			Y:      w.rng.Float64() * w.vp.Height,
			VX:     w.cfg.Speed.Sample(w.rng),
			Length: w.cfg.Length.Sample(w.rng),
			Size:   w.cfg.Thickness.Sample(w.rng),
			Alpha:  w.cfg.Alpha.Sample(w.rng),
		})
	}
	return w
}

// Update moves streaks right and recycles them at the left edge.
func (w *Wind) Update(dt float64) {
	if !w.tick(dt) {
		return
	}

	w.streaks.Advance(dt, func(r *particle.Record) {
		r.X += r.VX * dt
		// 尾部完全离开右边缘后，从左侧随机高度重新进入
		if r.X-r.Length > w.vp.Width {
			r.X = 0
			r.Y = w.rng.Float64() * w.vp.Height
		}
	})
}

// Draw renders each streak as a line trailing behind its head.
func (w *Wind) Draw(c *Canvas) {
	if w.destroyed {
		return
	}
	sc := w.scene(c)
	for _, r := range w.streaks.Records() {
		sc.StrokeLine(r.X-r.Length, r.Y, r.X, r.Y, r.Size, windStreakColor, r.Alpha)
	}
}
