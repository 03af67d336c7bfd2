package effects

import (
	"testing"

	"github.com/gonewx/boardfx/internal/particle"
)

func newStormyLightning(seed int64) *Lightning {
	env := newTestEnv(seed)
	env.Config.Lightning.StormInterval = particle.Fixed(1)
	env.Config.Lightning.BoltChance = 1
	return NewLightning(env)
}

// runUntilStorm 推进直到第一次雷暴，返回所用帧数
func runUntilStorm(t *testing.T, l *Lightning) int {
	t.Helper()
	for i := 1; i <= 120; i++ {
		l.Update(testFrame)
		if l.StormCount() > 0 {
			return i
		}
	}
	t.Fatal("no storm within 2s with a 1s interval")
	return 0
}

func TestLightning_StormFlashAndBolt(t *testing.T) {
	l := newStormyLightning(1)
	defer l.Destroy()

	if l.FlashAlpha() != 0 || l.BoltCount() != 0 {
		t.Fatal("lightning should start dark")
	}

	frames := runUntilStorm(t, l)
	if frames < 59 || frames > 61 {
		t.Errorf("first storm after %d frames, want ~60", frames)
	}
	if l.FlashAlpha() <= 0.5 || l.FlashAlpha() > l.cfg.FlashPeak {
		t.Errorf("FlashAlpha() = %.3f right after storm", l.FlashAlpha())
	}
	if l.BoltCount() != 1 {
		t.Fatalf("BoltCount() = %d, want 1", l.BoltCount())
	}

	bolt := l.bolts.Records()[0]
	if len(bolt.Path) != l.cfg.BoltSegments+1 {
		t.Errorf("bolt path has %d points, want %d", len(bolt.Path), l.cfg.BoltSegments+1)
	}
	if bolt.Path[0].Y != 0 {
		t.Errorf("bolt should start at the top edge, y=%.1f", bolt.Path[0].Y)
	}
	for i := 1; i < len(bolt.Path); i++ {
		if bolt.Path[i].Y <= bolt.Path[i-1].Y {
			t.Errorf("bolt path not descending at point %d", i)
		}
	}
}

// TestLightning_FlashAndBoltExpire 闪屏 0.3s 内衰减到 0，闪电 0.3s 后移除
func TestLightning_FlashAndBoltExpire(t *testing.T) {
	l := newStormyLightning(2)
	defer l.Destroy()

	runUntilStorm(t, l)
	runFrames(l, 20, testFrame) // 1/3s

	if l.FlashAlpha() != 0 {
		t.Errorf("FlashAlpha() = %.3f after 1/3s, want 0", l.FlashAlpha())
	}
	if l.BoltCount() != 0 {
		t.Errorf("BoltCount() = %d after lifetime, want 0", l.BoltCount())
	}
	if l.LiveParticles() != 0 {
		t.Errorf("LiveParticles() = %d between storms", l.LiveParticles())
	}
}

func TestLightning_BoltChanceZero(t *testing.T) {
	env := newTestEnv(3)
	env.Config.Lightning.StormInterval = particle.Fixed(0.5)
	env.Config.Lightning.BoltChance = 0
	l := NewLightning(env)
	defer l.Destroy()

	runFrames(l, 600, testFrame)
	if l.StormCount() < 15 {
		t.Errorf("StormCount() = %d after 10s at 0.5s interval", l.StormCount())
	}
	if l.bolts.Spawned() != 0 {
		t.Errorf("%d bolts spawned with zero bolt chance", l.bolts.Spawned())
	}
}

// TestLightning_DefaultInterval 默认间隔 [3, 10] 秒
func TestLightning_DefaultInterval(t *testing.T) {
	l := NewLightning(newTestEnv(4))
	defer l.Destroy()

	runFrames(l, 170, testFrame) // < 3s
	if l.StormCount() != 0 {
		t.Errorf("storm before minimum interval")
	}
	runFrames(l, 460, testFrame) // > 10s total
	if l.StormCount() == 0 {
		t.Errorf("no storm after maximum interval")
	}
}

func TestLightning_StrokeScalesWithViewport(t *testing.T) {
	l := NewLightning(newTestEnv(5))
	defer l.Destroy()

	l.Resize(200, 200)
	if got := l.strokeWidth(); got != 1.5 {
		t.Errorf("strokeWidth() at 200px = %.3f, want floor 1.5", got)
	}
	l.Resize(2000, 1000)
	if got := l.strokeWidth(); got != 2000*l.cfg.StrokeScale {
		t.Errorf("strokeWidth() at 2000px = %.3f", got)
	}
}
