package effects

import (
	"image/color"
	"math"

	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/config"
	"github.com/gonewx/boardfx/pkg/utils"
)

var (
	waterTintColor   = color.NRGBA{R: 30, G: 110, B: 200, A: 255}
	bubbleRimColor   = color.NRGBA{R: 190, G: 230, B: 255, A: 255}
	bubbleShineColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Water 水：全屏蓝色染色，固定数量的气泡上浮并轻微左右抖动，出顶部后回到底部
type Water struct {
	base
	cfg config.WaterConfig

	bubbles *particle.Pool
	tint    *Overlay
}

// NewWater creates the bubble effect with its full initial population.
func NewWater(env Env) *Water {
	w := &Water{
		base: newBase(KeyWater, env),
		cfg:  configOf(env).Water,
	}
	w.bubbles = w.ownPool(w.cfg.Count)
	w.tint = w.ownOverlay(&Overlay{Mode: AnchorFull, Color: waterTintColor, Alpha: w.cfg.TintAlpha})

	for i := 0; i < w.cfg.Count; i++ {
		x := w.rng.Float64() * w.vp.Width
		w.bubbles.Spawn(particle.Record{
			X:         x,
			Y:         w.rng.Float64() * w.vp.Height,
			OriginX:   x,
			VY:        -w.cfg.RiseSpeed.Sample(w.rng),
			Amplitude: w.cfg.JitterAmplitude.Sample(w.rng),
			Frequency: w.cfg.JitterFrequency.Sample(w.rng),
			Phase:     w.rng.Float64() * 2 * math.Pi,
			Size:      w.cfg.Size.Sample(w.rng),
			Alpha:     particle.RandomInRange(w.rng, 0.3, 0.6),
		})
	}
	return w
}

// Update moves bubbles upward and wraps them to the bottom.
func (w *Water) Update(dt float64) {
	if !w.tick(dt) {
		return
	}

	w.bubbles.Advance(dt, func(r *particle.Record) {
		r.Y += r.VY * dt
		if y, wrapped := utils.WrapAround(r.Y, 0, w.vp.Height, r.Size); wrapped {
			r.Y = y
			r.OriginX = w.rng.Float64() * w.vp.Width
		}
		r.X = r.OriginX + math.Sin(2*math.Pi*r.Frequency*r.Age+r.Phase)*r.Amplitude
	})
}

// Draw renders the tint and the bubbles.
func (w *Water) Draw(c *Canvas) {
	if w.destroyed {
		return
	}
	sc := w.scene(c)
	w.drawOverlays(sc)

	for _, r := range w.bubbles.Records() {
		sc.StrokeCircle(r.X, r.Y, r.Size, 1, bubbleRimColor, r.Alpha)
		sc.FillCircle(r.X-r.Size*0.35, r.Y-r.Size*0.35, r.Size*0.25, bubbleShineColor, r.Alpha)
	}
}
