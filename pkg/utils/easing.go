package utils

import "math"

// Easing Functions (缓动函数)
//
// 环境特效只需要少量插值：线性插值、正弦脉冲和线性衰减。

// Lerp 线性插值
// 公式：a + (b-a)*t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Pulse returns base + amplitude*sin(t*speed), the breathing curve used by
// glows and vignettes. t is in seconds, speed in radians per second.
func Pulse(t, speed, base, amplitude float64) float64 {
	return base + amplitude*math.Sin(t*speed)
}

// LinearDecay 按固定速率线性衰减到 0
// value 每秒减少 rate，结果不会低于 0
func LinearDecay(value, rate, dt float64) float64 {
	v := value - rate*dt
	if v < 0 {
		return 0
	}
	return v
}
