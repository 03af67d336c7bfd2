// Package particle provides the particle record and pool shared by every
// ambient board effect, plus the small value helpers (ranges, seeded random
// sources) used to configure them.
//
// A Record is deliberately a flat bag of fields: each effect only reads the
// ones it needs (embers use OriginX for sway, bolts use Path, confetti uses
// Rotation/Spin, streaks use Length).
package particle

import "image/color"

// Vec2 is a point in device-independent pixels.
type Vec2 struct {
	X, Y float64
}

// Record is the smallest unit of animated state.
//
// MaxAge == 0 marks an immortal particle (steady-state populations such as
// bubbles or dust). For mortal particles the pool guarantees 0 <= Age < MaxAge
// for every record still present after Advance returns.
type Record struct {
	// Motion
	X, Y    float64 // 当前位置
	VX, VY  float64 // 速度（像素/秒）
	OriginX float64 // 摆动/抖动的基准 X

	// Oscillation
	Amplitude float64 // 正弦摆动幅度（像素）
	Frequency float64 // 摆动频率（Hz）
	Phase     float64 // 正弦相位偏移（弧度）

	// Lifetime
	Age    float64 // 已存活时间（秒）
	MaxAge float64 // 生命周期（秒），0 表示永生

	// Visual state
	Size     float64
	Length   float64 // 条纹长度（风）
	Alpha    float64
	Scale    float64
	Rotation float64 // 弧度
	Spin     float64 // 弧度/秒
	Color    color.NRGBA

	// Path is an optional polyline owned by the particle (lightning bolts).
	Path []Vec2
}

// AgeFraction returns Age/MaxAge in [0, 1], or 0 for immortal particles.
func (r *Record) AgeFraction() float64 {
	if r.MaxAge <= 0 {
		return 0
	}
	f := r.Age / r.MaxAge
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Expired reports whether a mortal particle has reached its lifespan.
func (r *Record) Expired() bool {
	return r.MaxAge > 0 && r.Age >= r.MaxAge
}
