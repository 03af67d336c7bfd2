package effects

import (
	"image/color"

	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/config"
	"github.com/gonewx/boardfx/pkg/utils"
)

var (
	earthTintColor = color.NRGBA{R: 120, G: 90, B: 50, A: 255}
	earthDustColor = color.NRGBA{R: 190, G: 160, B: 110, A: 255}
)

// Earth 大地：尘土水平漂移，偶尔触发固定时长的震屏
type Earth struct {
	base
	cfg config.EarthConfig

	dust *particle.Pool
	tint *Overlay

	shaking    bool
	shakeStart float64 // 实例时钟上的起止时间
	shakeEnd   float64
	shakes     int
}

// NewEarth creates the dust effect with its full initial population.
func NewEarth(env Env) *Earth {
	e := &Earth{
		base: newBase(KeyEarth, env),
		cfg:  configOf(env).Earth,
	}
	e.dust = e.ownPool(e.cfg.Count)
	e.tint = e.ownOverlay(&Overlay{Mode: AnchorFull, Color: earthTintColor, Alpha: e.cfg.TintAlpha})

	for i := 0; i < e.cfg.Count; i++ {
		e.dust.Spawn(particle.Record{
			X:     e.rng.Float64() * e.vp.Width,
			Y:     e.rng.Float64() * e.vp.Height,
			VX:    e.cfg.DriftSpeed.Sample(e.rng),
			Size:  e.cfg.Size.Sample(e.rng),
			Alpha: particle.RandomInRange(e.rng, 0.3, 0.7),
		})
	}
	return e
}

// Update drifts dust and runs the shake window.
func (e *Earth) Update(dt float64) {
	if !e.tick(dt) {
		return
	}

	// 震屏窗口由实例时钟决定，与帧率无关
	if e.shaking && e.clock >= e.shakeEnd {
		e.shaking = false
	}
	if !e.shaking && e.chance(e.cfg.ShakeChance, dt) {
		e.startShake()
	}

	e.dust.Advance(dt, func(r *particle.Record) {
		r.X += r.VX * dt
		r.X, _ = utils.WrapAround(r.X, 0, e.vp.Width, r.Size)
	})

	if e.shaking {
		e.offsetX = particle.Signed(e.rng, e.cfg.ShakeIntensity)
		e.offsetY = particle.Signed(e.rng, e.cfg.ShakeIntensity)
	} else {
		e.offsetX, e.offsetY = 0, 0
	}
}

func (e *Earth) startShake() {
	e.shaking = true
	e.shakes++
	e.shakeStart = e.clock
	e.shakeEnd = e.clock + e.cfg.ShakeDuration
}

// Draw renders tint and dust with the shake offset applied.
func (e *Earth) Draw(c *Canvas) {
	if e.destroyed {
		return
	}
	sc := e.scene(c)
	e.drawOverlays(sc)
	for _, r := range e.dust.Records() {
		sc.FillCircle(r.X, r.Y, r.Size, earthDustColor, r.Alpha)
	}
}

// Shaking reports whether a shake is in progress.
func (e *Earth) Shaking() bool {
	return e.shaking
}

// ShakeWindow returns the start and end (instance clock, seconds) of the
// most recent shake.
func (e *Earth) ShakeWindow() (start, end float64) {
	return e.shakeStart, e.shakeEnd
}

// ShakeCount returns how many shakes have started.
func (e *Earth) ShakeCount() int {
	return e.shakes
}

// SceneOffset returns the current whole-scene offset.
func (e *Earth) SceneOffset() (x, y float64) {
	return e.offsetX, e.offsetY
}

// DustY returns the vertical position of every live dust mote.
func (e *Earth) DustY() []float64 {
	ys := make([]float64, 0, e.dust.Len())
	for _, r := range e.dust.Records() {
		ys = append(ys, r.Y)
	}
	return ys
}
