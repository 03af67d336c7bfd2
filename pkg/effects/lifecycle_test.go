package effects

import (
	"testing"
)

// TestAllEffects_DestroyReleasesParticles 销毁后不残留粒子，重复销毁安全，销毁后 Update 无效
func TestAllEffects_DestroyReleasesParticles(t *testing.T) {
	reg := DefaultRegistry()
	for _, key := range AllKeys {
		t.Run(string(key), func(t *testing.T) {
			inst := reg.Build(key, newTestEnv(5))
			runFrames(inst, 120, testFrame)

			inst.Destroy()
			if n := inst.LiveParticles(); n != 0 {
				t.Errorf("LiveParticles() after Destroy = %d, want 0", n)
			}

			inst.Destroy() // 幂等
			inst.Update(testFrame)
			inst.Resize(100, 100)
			inst.Draw(NewCanvas(nil, 1))
			if n := inst.LiveParticles(); n != 0 {
				t.Errorf("LiveParticles() after post-destroy Update = %d, want 0", n)
			}
		})
	}
}

// TestAllEffects_ResizeReanchorsOverlays 全屏图层在 resize 后与新视口一致
func TestAllEffects_ResizeReanchorsOverlays(t *testing.T) {
	reg := DefaultRegistry()
	for _, key := range AllKeys {
		t.Run(string(key), func(t *testing.T) {
			inst := reg.Build(key, newTestEnv(2))
			defer inst.Destroy()
			runFrames(inst, 10, testFrame)

			inst.Resize(1024, 768)

			type viewported interface{ Viewport() Viewport }
			vp := inst.(viewported).Viewport()
			if vp.Width != 1024 || vp.Height != 768 {
				t.Errorf("cached viewport = %+v, want 1024x768", vp)
			}

			for i, o := range overlaysOf(inst) {
				switch o.Mode {
				case AnchorFull:
					if o.X != 0 || o.Y != 0 || o.Width != 1024 || o.Height != 768 {
						t.Errorf("overlay %d = (%v,%v %vx%v), want full 1024x768", i, o.X, o.Y, o.Width, o.Height)
					}
				case AnchorBottom:
					wantH := 768 * o.Fraction
					if o.Width != 1024 || o.Height != wantH || o.Y != 768-wantH {
						t.Errorf("overlay %d = (%v,%v %vx%v), want bottom band", i, o.X, o.Y, o.Width, o.Height)
					}
				}
			}
		})
	}
}

// TestAllEffects_ResizeCountedOnce 每次 Resize 只更新一次缓存
func TestAllEffects_ResizeCountedOnce(t *testing.T) {
	inst := NewPoison(newTestEnv(3))
	defer inst.Destroy()

	inst.Resize(640, 480)
	if inst.resizeCount != 1 {
		t.Errorf("resizeCount = %d, want 1", inst.resizeCount)
	}
}

// TestAllEffects_ZeroDeltaIsNoop dt <= 0 不推进模拟
func TestAllEffects_ZeroDeltaIsNoop(t *testing.T) {
	w := NewWind(newTestEnv(4))
	defer w.Destroy()

	before := append(w.streaks.Records()[:0:0], w.streaks.Records()...)
	w.Update(0)
	w.Update(-1)
	for i, r := range w.streaks.Records() {
		if r.X != before[i].X || r.Y != before[i].Y {
			t.Fatalf("streak %d moved on non-positive dt", i)
		}
	}
}

// TestAllEffects_SeededDeterminism 相同种子产生相同状态
func TestAllEffects_SeededDeterminism(t *testing.T) {
	reg := DefaultRegistry()
	for _, key := range AllKeys {
		a := reg.Build(key, newTestEnv(11))
		b := reg.Build(key, newTestEnv(11))
		runFrames(a, 200, testFrame)
		runFrames(b, 200, testFrame)
		if a.LiveParticles() != b.LiveParticles() {
			t.Errorf("%s: same seed gave %d vs %d particles", key, a.LiveParticles(), b.LiveParticles())
		}
		a.Destroy()
		b.Destroy()
	}
}
