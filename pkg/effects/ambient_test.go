package effects

import (
	"math"
	"testing"

	"github.com/gonewx/boardfx/internal/particle"
)

func TestWater_BubblesRiseAndWrap(t *testing.T) {
	w := NewWater(newTestEnv(1))
	defer w.Destroy()

	if w.bubbles.Len() != w.cfg.Count {
		t.Fatalf("bubble count = %d, want %d", w.bubbles.Len(), w.cfg.Count)
	}

	runFrames(w, 3000, testFrame)

	if w.bubbles.Len() != w.cfg.Count {
		t.Errorf("bubble count changed to %d", w.bubbles.Len())
	}
	maxAmp := w.cfg.JitterAmplitude.Max
	for _, r := range w.bubbles.Records() {
		if r.Y < -r.Size || r.Y > w.vp.Height+r.Size {
			t.Errorf("bubble y=%.1f outside viewport margin", r.Y)
		}
		if r.X < -maxAmp || r.X > w.vp.Width+maxAmp {
			t.Errorf("bubble x=%.1f drifted beyond jitter", r.X)
		}
	}
}

// TestWater_WrapReentersAtBottom 出顶部后从底部重新进入
func TestWater_WrapReentersAtBottom(t *testing.T) {
	w := NewWater(newTestEnv(2))
	defer w.Destroy()

	w.bubbles.Each(func(r *particle.Record) {
		r.Y = -r.Size - 0.01
	})
	w.Update(testFrame)
	for _, r := range w.bubbles.Records() {
		if r.Y < w.vp.Height {
			t.Errorf("wrapped bubble at y=%.1f, want near the bottom edge", r.Y)
		}
		if r.OriginX < 0 || r.OriginX > w.vp.Width {
			t.Errorf("wrapped bubble origin x=%.1f outside viewport", r.OriginX)
		}
	}
}

// TestWind_StreakRecyclesAtLeftEdge 尾部离开右边缘后回到 x=0 的随机高度
func TestWind_StreakRecyclesAtLeftEdge(t *testing.T) {
	w := NewWind(newTestEnv(3))
	defer w.Destroy()

	w.streaks.Each(func(r *particle.Record) {
		r.X = w.vp.Width + r.Length + 0.5
	})
	w.Update(testFrame)

	ys := map[float64]bool{}
	for _, r := range w.streaks.Records() {
		if r.X != 0 {
			t.Errorf("recycled streak x=%.1f, want 0", r.X)
		}
		if r.Y < 0 || r.Y > w.vp.Height {
			t.Errorf("recycled streak y=%.1f outside viewport", r.Y)
		}
		ys[r.Y] = true
	}
	if len(ys) < w.cfg.Count/2 {
		t.Errorf("recycled heights not randomized: %d distinct of %d", len(ys), w.cfg.Count)
	}
}

func TestWind_StreaksMoveRight(t *testing.T) {
	w := NewWind(newTestEnv(4))
	defer w.Destroy()

	w.streaks.Each(func(r *particle.Record) { r.X = 0 })
	w.Update(testFrame)
	for _, r := range w.streaks.Records() {
		if r.X < w.cfg.Speed.Min*testFrame-1e-9 || r.X > w.cfg.Speed.Max*testFrame+1e-9 {
			t.Errorf("streak moved to x=%.2f in one frame", r.X)
		}
	}
}

func TestPoison_SporesWrapOnAllEdges(t *testing.T) {
	p := NewPoison(newTestEnv(5))
	defer p.Destroy()

	runFrames(p, 6000, testFrame)
	if p.spores.Len() != p.cfg.Count {
		t.Errorf("spore count = %d, want %d", p.spores.Len(), p.cfg.Count)
	}
	for _, r := range p.spores.Records() {
		if r.X < -r.Size || r.X > p.vp.Width+r.Size || r.Y < -r.Size || r.Y > p.vp.Height+r.Size {
			t.Errorf("spore at (%.1f, %.1f) outside viewport margin", r.X, r.Y)
		}
	}
}

func TestPoison_VignettePulse(t *testing.T) {
	p := NewPoison(newTestEnv(6))
	defer p.Destroy()

	for i := 0; i < 600; i++ {
		p.Update(testFrame)
		a := p.vignette.Alpha
		if math.Abs(a-p.cfg.VignetteAlpha) > p.cfg.VignettePulse+1e-9 {
			t.Fatalf("vignette alpha %.3f outside %.2f ± %.2f", a, p.cfg.VignetteAlpha, p.cfg.VignettePulse)
		}
	}
}

// TestJoker_GlitchRevertsNextFrame 故障只持续一帧
func TestJoker_GlitchRevertsNextFrame(t *testing.T) {
	env := newTestEnv(7)
	env.Config.Joker.GlitchChance = 1
	j := NewJoker(env)
	defer j.Destroy()

	j.Update(testFrame)
	if !j.Glitching() {
		t.Fatal("glitch chance 1 did not glitch")
	}
	ox, oy, alpha := j.Scene()
	if math.Abs(ox) > j.cfg.GlitchOffset || math.Abs(oy) > j.cfg.GlitchOffset {
		t.Errorf("glitch offset (%.2f, %.2f) exceeds %.1f", ox, oy, j.cfg.GlitchOffset)
	}
	if alpha != j.cfg.GlitchAlpha {
		t.Errorf("glitch alpha = %.2f, want %.2f", alpha, j.cfg.GlitchAlpha)
	}

	j.cfg.GlitchChance = 0
	j.Update(testFrame)
	if j.Glitching() {
		t.Error("glitch did not revert")
	}
	ox, oy, alpha = j.Scene()
	if ox != 0 || oy != 0 || alpha != 1 {
		t.Errorf("scene after revert = (%.2f, %.2f, %.2f), want (0, 0, 1)", ox, oy, alpha)
	}
	if j.GlitchCount() != 1 {
		t.Errorf("GlitchCount() = %d, want 1", j.GlitchCount())
	}
}

func TestJoker_ConfettiFallsAndWraps(t *testing.T) {
	j := NewJoker(newTestEnv(8))
	defer j.Destroy()

	j.confetti.Each(func(r *particle.Record) {
		r.Y = j.vp.Height + r.Size + 1
	})
	rot := j.confetti.Records()[0].Rotation
	j.Update(testFrame)

	for _, r := range j.confetti.Records() {
		if r.Y != -r.Size {
			t.Errorf("wrapped confetti y=%.2f, want %.2f", r.Y, -r.Size)
		}
	}
	if first := j.confetti.Records()[0]; first.Spin != 0 && first.Rotation == rot {
		t.Error("confetti did not spin")
	}
}

func TestFoggy_MistWrapsToRightEdge(t *testing.T) {
	f := NewFoggy(newTestEnv(9))
	defer f.Destroy()

	f.mist.Each(func(r *particle.Record) {
		r.X = -r.Size - 1
	})
	f.Update(testFrame)
	for _, r := range f.mist.Records() {
		if r.X != f.vp.Width+r.Size {
			t.Errorf("wrapped mist x=%.1f, want %.1f", r.X, f.vp.Width+r.Size)
		}
	}
}

// TestFoggy_GrainJitter 颗粒每帧整体抖动，数量不变
func TestFoggy_GrainJitter(t *testing.T) {
	f := NewFoggy(newTestEnv(10))
	defer f.Destroy()

	distinct := map[float64]bool{}
	for i := 0; i < 100; i++ {
		f.Update(testFrame)
		x, y := f.GrainOffset()
		if math.Abs(x) > f.cfg.GrainJitter || math.Abs(y) > f.cfg.GrainJitter {
			t.Fatalf("grain offset (%.2f, %.2f) exceeds %.2f", x, y, f.cfg.GrainJitter)
		}
		distinct[x] = true
	}
	if len(distinct) < 50 {
		t.Errorf("grain offset barely changed: %d distinct values", len(distinct))
	}
	if f.grain.Len() != f.cfg.GrainCount {
		t.Errorf("grain count = %d, want %d", f.grain.Len(), f.cfg.GrainCount)
	}
	if f.LiveParticles() != f.cfg.GrainCount+f.cfg.MistCount {
		t.Errorf("LiveParticles() = %d", f.LiveParticles())
	}
}
