package effects

import (
	"image/color"
	"math"

	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/config"
	"github.com/gonewx/boardfx/pkg/utils"
)

var (
	lightningFlashColor = color.NRGBA{R: 225, G: 235, B: 255, A: 255}
	lightningGlowColor  = color.NRGBA{R: 90, G: 150, B: 255, A: 255}
	lightningCoreColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Lightning 雷暴：随机间隔触发闪屏，并有一定概率劈下一道折线闪电
type Lightning struct {
	base
	cfg config.LightningConfig

	untilStorm float64 // 距下一次雷暴的剩余时间
	storms     int
	flash      *Overlay
	bolts      *particle.Pool
}

// NewLightning creates the storm effect.
func NewLightning(env Env) *Lightning {
	l := &Lightning{
		base: newBase(KeyLightning, env),
		cfg:  configOf(env).Lightning,
	}
	l.bolts = l.ownPool(0)
	l.flash = l.ownOverlay(&Overlay{Mode: AnchorFull, Color: lightningFlashColor})
	l.untilStorm = l.cfg.StormInterval.Sample(l.rng)
	return l
}

// Update advances the storm timer, bolts and flash.
func (l *Lightning) Update(dt float64) {
	if !l.tick(dt) {
		return
	}

	// spawn
	l.untilStorm -= dt
	if l.untilStorm <= 0 {
		l.storm()
		l.untilStorm = l.cfg.StormInterval.Sample(l.rng)
	}

	// advance + cull
	l.bolts.Advance(dt, func(r *particle.Record) {
		r.Alpha = 1 - r.AgeFraction()
	})

	// 闪屏按固定速率线性衰减，到 0 即视为移除
	l.flash.Alpha = utils.LinearDecay(l.flash.Alpha, l.cfg.FlashDecay, dt)
}

// storm fires one storm event: a flash, and maybe a bolt.
func (l *Lightning) storm() {
	l.storms++
	l.flash.Alpha = l.cfg.FlashPeak
	if l.rng.Float64() < l.cfg.BoltChance {
		l.bolts.Spawn(particle.Record{
			MaxAge: l.cfg.BoltLifetime,
			Alpha:  1,
			Path:   l.boltPath(),
		})
	}
}

// boltPath builds a random-walk polyline from the top edge downwards.
func (l *Lightning) boltPath() []particle.Vec2 {
	n := l.cfg.BoltSegments
	w, h := l.vp.Width, l.vp.Height

	x := w * (0.2 + 0.6*l.rng.Float64())
	y := 0.0
	reach := h * (0.5 + 0.5*l.rng.Float64())
	step := reach / float64(n)

	path := make([]particle.Vec2, 0, n+1)
	path = append(path, particle.Vec2{X: x, Y: y})
	for i := 0; i < n; i++ {
		x += particle.Signed(l.rng, w*l.cfg.BoltJitter)
		y += step * (0.6 + 0.8*l.rng.Float64())
		path = append(path, particle.Vec2{X: x, Y: y})
	}
	return path
}

// strokeWidth scales the bolt core with the viewport width.
func (l *Lightning) strokeWidth() float64 {
	return math.Max(1.5, l.vp.Width*l.cfg.StrokeScale)
}

// Draw renders the flash and any live bolts.
func (l *Lightning) Draw(c *Canvas) {
	if l.destroyed {
		return
	}
	sc := l.scene(c)
	l.drawOverlays(sc)

	width := l.strokeWidth()
	for _, bolt := range l.bolts.Records() {
		for i := 1; i < len(bolt.Path); i++ {
			a, b := bolt.Path[i-1], bolt.Path[i]
			sc.StrokeLine(a.X, a.Y, b.X, b.Y, width*4, lightningGlowColor, bolt.Alpha*0.35)
		}
		for i := 1; i < len(bolt.Path); i++ {
			a, b := bolt.Path[i-1], bolt.Path[i]
			sc.StrokeLine(a.X, a.Y, b.X, b.Y, width, lightningCoreColor, bolt.Alpha)
		}
	}
}

// StormCount returns how many storm events have fired.
func (l *Lightning) StormCount() int {
	return l.storms
}

// FlashAlpha returns the current flash opacity (0 when no flash is showing).
func (l *Lightning) FlashAlpha() float64 {
	return l.flash.Alpha
}

// BoltCount returns the number of live bolts.
func (l *Lightning) BoltCount() int {
	return l.bolts.Len()
}
