package effects

import "testing"

// ========== 每帧更新开销 ==========

func benchmarkUpdate(b *testing.B, key Key) {
	inst := DefaultRegistry().Build(key, newTestEnv(1))
	defer inst.Destroy()

	// 先让粒子数量进入稳态
	runFrames(inst, 300, testFrame)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inst.Update(testFrame)
	}
}

func BenchmarkLightningUpdate(b *testing.B) { benchmarkUpdate(b, KeyLightning) }
func BenchmarkFireUpdate(b *testing.B)      { benchmarkUpdate(b, KeyFire) }
func BenchmarkWaterUpdate(b *testing.B)     { benchmarkUpdate(b, KeyWater) }
func BenchmarkEarthUpdate(b *testing.B)     { benchmarkUpdate(b, KeyEarth) }
func BenchmarkWindUpdate(b *testing.B)      { benchmarkUpdate(b, KeyWind) }
func BenchmarkPoisonUpdate(b *testing.B)    { benchmarkUpdate(b, KeyPoison) }
func BenchmarkJokerUpdate(b *testing.B)     { benchmarkUpdate(b, KeyJoker) }

// BenchmarkFoggyUpdate 500 颗粒 + 20 雾团，粒子最多的特效
func BenchmarkFoggyUpdate(b *testing.B) { benchmarkUpdate(b, KeyFoggy) }

// ========== 切换开销 ==========

func BenchmarkBuildAndDestroy(b *testing.B) {
	reg := DefaultRegistry()
	env := newTestEnv(1)
	for i := 0; i < b.N; i++ {
		inst := reg.Build(AllKeys[i%len(AllKeys)], env)
		inst.Destroy()
	}
}
