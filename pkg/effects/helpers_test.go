package effects

import (
	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/config"
)

const testFrame = 1.0 / 60.0

// newTestEnv 创建带固定种子的测试环境
func newTestEnv(seed int64) Env {
	return Env{
		Viewport: Viewport{Width: 800, Height: 600},
		Rand:     particle.NewRand(seed),
		Config:   config.DefaultEffectsConfig(),
	}
}

// runFrames 以固定 dt 推进 n 帧
func runFrames(inst Instance, n int, dt float64) {
	for i := 0; i < n; i++ {
		inst.Update(dt)
	}
}

// overlaysOf 取出实例持有的全屏图层（测试专用）
func overlaysOf(inst Instance) []*Overlay {
	type owner interface{ overlayList() []*Overlay }
	if o, ok := inst.(owner); ok {
		return o.overlayList()
	}
	return nil
}

func (b *base) overlayList() []*Overlay {
	return b.overlays
}
