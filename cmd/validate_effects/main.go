// Command validate_effects checks an effect tuning file and prints the
// resulting per-effect budgets.
//
// Usage:
//
//	go run ./cmd/validate_effects [--file data/effects.yaml]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gonewx/boardfx/pkg/config"
)

var fileFlag = flag.String("file", config.EffectsConfigPath, "Effect tuning YAML to validate")

func main() {
	flag.Parse()
	os.Exit(run(*fileFlag, os.Stdout))
}

// run 校验文件并输出摘要，返回进程退出码
func run(path string, out io.Writer) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "❌ 读取文件失败: %v\n", err)
		return 1
	}

	cfg, err := config.ParseEffectsConfig(data)
	if err != nil {
		fmt.Fprintf(out, "❌ 配置无效: %v\n", err)
		return 1
	}

	fmt.Fprintf(out, "✅ YAML 格式正确: %s\n", path)
	for _, line := range summarize(cfg) {
		fmt.Fprintf(out, "✅ %s\n", line)
	}
	return 0
}

// summarize 列出每个特效的粒子预算
func summarize(cfg *config.EffectsConfig) []string {
	fire := cfg.Fire.SpawnChance * 60 * cfg.Fire.Lifetime.Mean()
	return []string{
		fmt.Sprintf("host: nominal frame %.4fs, max delta %.2fs, max scale %.1f",
			cfg.Host.NominalFrame, cfg.Host.MaxFrameDelta, cfg.Host.MaxDeviceScale),
		fmt.Sprintf("lightning: storm every %v s, bolt chance %.2f", cfg.Lightning.StormInterval, cfg.Lightning.BoltChance),
		fmt.Sprintf("fire: ~%.0f embers at steady state (cap %d)", fire, cfg.Fire.MaxEmbers),
		fmt.Sprintf("water: %d bubbles", cfg.Water.Count),
		fmt.Sprintf("earth: %d dust, shake %.3f/frame for %.2fs", cfg.Earth.Count, cfg.Earth.ShakeChance, cfg.Earth.ShakeDuration),
		fmt.Sprintf("wind: %d streaks", cfg.Wind.Count),
		fmt.Sprintf("poison: %d spores", cfg.Poison.Count),
		fmt.Sprintf("joker: %d confetti, glitch %.3f/frame", cfg.Joker.Count, cfg.Joker.GlitchChance),
		fmt.Sprintf("foggy: %d mist + %d grain", cfg.Foggy.MistCount, cfg.Foggy.GrainCount),
	}
}
