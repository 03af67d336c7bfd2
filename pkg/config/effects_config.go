package config

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/boardfx/internal/particle"
	"github.com/gonewx/boardfx/pkg/embedded"
)

// EffectsConfigPath 默认的特效调参文件（嵌入资源路径）
const EffectsConfigPath = "data/effects.yaml"

// EffectsConfig 环境特效调参配置
// 所有数值均为设备无关像素 / 秒；概率按 60Hz 名义帧给出
type EffectsConfig struct {
	Host      HostConfig      `yaml:"host"`
	Lightning LightningConfig `yaml:"lightning"`
	Fire      FireConfig      `yaml:"fire"`
	Water     WaterConfig     `yaml:"water"`
	Earth     EarthConfig     `yaml:"earth"`
	Wind      WindConfig      `yaml:"wind"`
	Poison    PoisonConfig    `yaml:"poison"`
	Joker     JokerConfig     `yaml:"joker"`
	Foggy     FoggyConfig     `yaml:"foggy"`
}

// HostConfig 帧循环与渲染表面参数
type HostConfig struct {
	NominalFrame   float64 `yaml:"nominalFrame"`   // 首帧使用的名义帧时长（秒）
	MaxFrameDelta  float64 `yaml:"maxFrameDelta"`  // 单帧 dt 上限（秒），防止切后台回来后的大跳变
	MaxDeviceScale float64 `yaml:"maxDeviceScale"` // 渲染表面像素密度上限
}

// LightningConfig 雷暴
type LightningConfig struct {
	StormInterval particle.Range `yaml:"stormInterval"` // 两次雷暴之间的随机间隔（秒）
	BoltChance    float64        `yaml:"boltChance"`    // 每次雷暴附带闪电的概率
	BoltLifetime  float64        `yaml:"boltLifetime"`  // 闪电存在时间（秒）
	BoltSegments  int            `yaml:"boltSegments"`  // 闪电折线段数
	BoltJitter    float64        `yaml:"boltJitter"`    // 每段水平偏移，占视口宽度比例
	StrokeScale   float64        `yaml:"strokeScale"`   // 线宽 = 视口宽度 * strokeScale
	FlashPeak     float64        `yaml:"flashPeak"`     // 闪屏初始透明度
	FlashDecay    float64        `yaml:"flashDecay"`    // 闪屏透明度每秒衰减量
}

// FireConfig 火焰余烬
type FireConfig struct {
	SpawnChance   float64        `yaml:"spawnChance"` // 每名义帧生成一个余烬的概率
	MaxEmbers     int            `yaml:"maxEmbers"`
	Lifetime      particle.Range `yaml:"lifetime"`
	RiseSpeed     particle.Range `yaml:"riseSpeed"`
	SwayAmplitude particle.Range `yaml:"swayAmplitude"`
	SwayFrequency particle.Range `yaml:"swayFrequency"`
	Size          particle.Range `yaml:"size"`
	GlowHeight    float64        `yaml:"glowHeight"` // 底部光晕高度，占视口高度比例
	GlowAlpha     float64        `yaml:"glowAlpha"`
	GlowPulse     float64        `yaml:"glowPulse"`      // 光晕透明度脉冲幅度
	GlowPulseRate float64        `yaml:"glowPulseRate"` // 弧度/秒
}

// WaterConfig 水泡
type WaterConfig struct {
	Count           int            `yaml:"count"`
	RiseSpeed       particle.Range `yaml:"riseSpeed"`
	Size            particle.Range `yaml:"size"`
	JitterAmplitude particle.Range `yaml:"jitterAmplitude"`
	JitterFrequency particle.Range `yaml:"jitterFrequency"`
	TintAlpha       float64        `yaml:"tintAlpha"`
}

// EarthConfig 尘土与震屏
type EarthConfig struct {
	Count          int            `yaml:"count"`
	DriftSpeed     particle.Range `yaml:"driftSpeed"`
	Size           particle.Range `yaml:"size"`
	ShakeChance    float64        `yaml:"shakeChance"`    // 每名义帧触发震屏的概率
	ShakeDuration  float64        `yaml:"shakeDuration"`  // 震屏持续时间（秒）
	ShakeIntensity float64        `yaml:"shakeIntensity"` // 最大偏移（像素）
	TintAlpha      float64        `yaml:"tintAlpha"`
}

// WindConfig 风线
type WindConfig struct {
	Count     int            `yaml:"count"`
	Speed     particle.Range `yaml:"speed"`
	Length    particle.Range `yaml:"length"`
	Thickness particle.Range `yaml:"thickness"`
	Alpha     particle.Range `yaml:"alpha"`
}

// PoisonConfig 毒孢子
type PoisonConfig struct {
	Count         int            `yaml:"count"`
	Speed         particle.Range `yaml:"speed"`
	Size          particle.Range `yaml:"size"`
	VignetteAlpha float64        `yaml:"vignetteAlpha"`
	VignettePulse float64        `yaml:"vignettePulse"`
	VignetteRate  float64        `yaml:"vignetteRate"`
}

// JokerConfig 小丑彩纸与故障闪烁
type JokerConfig struct {
	Count        int            `yaml:"count"`
	FallSpeed    particle.Range `yaml:"fallSpeed"`
	Spin         particle.Range `yaml:"spin"`
	Size         particle.Range `yaml:"size"`
	GlitchChance float64        `yaml:"glitchChance"` // 每名义帧触发故障的概率
	GlitchOffset float64        `yaml:"glitchOffset"` // 故障时最大整体偏移（像素）
	GlitchAlpha  float64        `yaml:"glitchAlpha"`  // 故障帧的整体透明度
}

// FoggyConfig 迷雾与颗粒
type FoggyConfig struct {
	MistCount   int            `yaml:"mistCount"`
	MistRadius  particle.Range `yaml:"mistRadius"`
	MistSpeed   particle.Range `yaml:"mistSpeed"`
	MistAlpha   particle.Range `yaml:"mistAlpha"`
	GrainCount  int            `yaml:"grainCount"`
	GrainJitter float64        `yaml:"grainJitter"`
	GrainAlpha  float64        `yaml:"grainAlpha"`
}

// DefaultEffectsConfig 返回内置默认值（与 data/effects.yaml 保持一致）
func DefaultEffectsConfig() *EffectsConfig {
	return &EffectsConfig{
		Host: HostConfig{
			NominalFrame:   1.0 / 60.0,
			MaxFrameDelta:  0.1,
			MaxDeviceScale: 1.5,
		},
		Lightning: LightningConfig{
			StormInterval: particle.Span(3, 10),
			BoltChance:    0.5,
			BoltLifetime:  0.3,
			BoltSegments:  12,
			BoltJitter:    0.05,
			StrokeScale:   0.0025,
			FlashPeak:     0.6,
			FlashDecay:    2.0,
		},
		Fire: FireConfig{
			SpawnChance:   0.3,
			MaxEmbers:     300,
			Lifetime:      particle.Span(2, 4),
			RiseSpeed:     particle.Span(40, 90),
			SwayAmplitude: particle.Span(10, 30),
			SwayFrequency: particle.Span(1.5, 3),
			Size:          particle.Span(2, 5),
			GlowHeight:    0.3,
			GlowAlpha:     0.25,
			GlowPulse:     0.1,
			GlowPulseRate: 2,
		},
		Water: WaterConfig{
			Count:           30,
			RiseSpeed:       particle.Span(20, 60),
			Size:            particle.Span(3, 9),
			JitterAmplitude: particle.Span(2, 6),
			JitterFrequency: particle.Span(1, 3),
			TintAlpha:       0.12,
		},
		Earth: EarthConfig{
			Count:          50,
			DriftSpeed:     particle.Span(10, 40),
			Size:           particle.Span(1, 3),
			ShakeChance:    0.005,
			ShakeDuration:  0.5,
			ShakeIntensity: 3,
			TintAlpha:      0.08,
		},
		Wind: WindConfig{
			Count:     20,
			Speed:     particle.Span(600, 1000),
			Length:    particle.Span(40, 140),
			Thickness: particle.Span(1, 2),
			Alpha:     particle.Span(0.2, 0.5),
		},
		Poison: PoisonConfig{
			Count:         60,
			Speed:         particle.Span(5, 20),
			Size:          particle.Span(2, 5),
			VignetteAlpha: 0.25,
			VignettePulse: 0.08,
			VignetteRate:  1.5,
		},
		Joker: JokerConfig{
			Count:        40,
			FallSpeed:    particle.Span(50, 120),
			Spin:         particle.Span(-3, 3),
			Size:         particle.Span(4, 10),
			GlitchChance: 0.01,
			GlitchOffset: 8,
			GlitchAlpha:  0.7,
		},
		Foggy: FoggyConfig{
			MistCount:   20,
			MistRadius:  particle.Span(120, 260),
			MistSpeed:   particle.Span(8, 25),
			MistAlpha:   particle.Span(0.08, 0.2),
			GrainCount:  500,
			GrainJitter: 1.5,
			GrainAlpha:  0.08,
		},
	}
}

// ParseEffectsConfig 解析 YAML 数据
// 未出现在 YAML 中的字段保留默认值
func ParseEffectsConfig(data []byte) (*EffectsConfig, error) {
	config := DefaultEffectsConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse effects YAML: %w", err)
	}

	if err := validateEffectsConfig(config); err != nil {
		return nil, fmt.Errorf("invalid effects config: %w", err)
	}

	return config, nil
}

// LoadEffectsConfig 从嵌入资源加载特效配置
func LoadEffectsConfig(path string) (*EffectsConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effects config %s: %w", path, err)
	}
	return ParseEffectsConfig(data)
}

// LoadEffectsConfigOrDefault 加载失败时记录警告并返回默认配置
// 配置错误不应阻止宿主页面运行
func LoadEffectsConfigOrDefault(path string) *EffectsConfig {
	if !embedded.IsInitialized() {
		log.Printf("[Config] Embedded data not initialized (using built-in defaults)")
		return DefaultEffectsConfig()
	}
	config, err := LoadEffectsConfig(path)
	if err != nil {
		log.Printf("[Config] Warning: %v (using built-in defaults)", err)
		return DefaultEffectsConfig()
	}
	log.Printf("[Config] Loaded effects config: %s", path)
	return config
}

// validateEffectsConfig 验证配置的有效性
func validateEffectsConfig(c *EffectsConfig) error {
	if c.Host.NominalFrame <= 0 {
		return fmt.Errorf("host.nominalFrame must be > 0, got %v", c.Host.NominalFrame)
	}
	if c.Host.MaxFrameDelta < c.Host.NominalFrame {
		return fmt.Errorf("host.maxFrameDelta (%v) must be >= nominalFrame (%v)", c.Host.MaxFrameDelta, c.Host.NominalFrame)
	}
	if c.Host.MaxDeviceScale < 1 {
		return fmt.Errorf("host.maxDeviceScale must be >= 1, got %v", c.Host.MaxDeviceScale)
	}

	if c.Lightning.StormInterval.Min <= 0 {
		return fmt.Errorf("lightning.stormInterval must be positive, got %v", c.Lightning.StormInterval)
	}
	if c.Lightning.BoltSegments < 1 {
		return fmt.Errorf("lightning.boltSegments must be >= 1, got %d", c.Lightning.BoltSegments)
	}
	if c.Lightning.BoltLifetime <= 0 {
		return fmt.Errorf("lightning.boltLifetime must be > 0, got %v", c.Lightning.BoltLifetime)
	}
	if c.Lightning.FlashDecay <= 0 {
		return fmt.Errorf("lightning.flashDecay must be > 0, got %v", c.Lightning.FlashDecay)
	}
	if c.Fire.Lifetime.Min <= 0 {
		return fmt.Errorf("fire.lifetime must be positive, got %v", c.Fire.Lifetime)
	}
	if c.Earth.ShakeDuration <= 0 {
		return fmt.Errorf("earth.shakeDuration must be > 0, got %v", c.Earth.ShakeDuration)
	}

	probabilities := map[string]float64{
		"lightning.boltChance": c.Lightning.BoltChance,
		"fire.spawnChance":     c.Fire.SpawnChance,
		"earth.shakeChance":    c.Earth.ShakeChance,
		"joker.glitchChance":   c.Joker.GlitchChance,
	}
	for name, p := range probabilities {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", name, p)
		}
	}

	counts := map[string]int{
		"fire.maxEmbers":   c.Fire.MaxEmbers,
		"water.count":      c.Water.Count,
		"earth.count":      c.Earth.Count,
		"wind.count":       c.Wind.Count,
		"poison.count":     c.Poison.Count,
		"joker.count":      c.Joker.Count,
		"foggy.mistCount":  c.Foggy.MistCount,
		"foggy.grainCount": c.Foggy.GrainCount,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("%s must be >= 0, got %d", name, n)
		}
	}

	return nil
}
