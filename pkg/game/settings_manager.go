package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerSettings 特效查看器的偏好设置
// 只属于查看器工具，特效引擎本身没有持久化状态
type ViewerSettings struct {
	Modifier     BoardModifier `yaml:"modifier"`     // 上次查看的棋盘修饰
	AutoPlay     bool          `yaml:"autoPlay"`     // 是否自动轮播
	AutoPlayTime float64       `yaml:"autoPlayTime"` // 每个特效停留秒数
	ShowHUD      bool          `yaml:"showHud"`
	Fullscreen   bool          `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *ViewerSettings {
	return &ViewerSettings{
		Modifier:     BoardModifier{Mechanic: "none"},
		AutoPlay:     false,
		AutoPlayTime: 6,
		ShowHUD:      true,
		Fullscreen:   false,
	}
}

// SettingsManager 设置管理器
// 负责查看器设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）
	settings     *ViewerSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// 轮播时间范围（秒）
const (
	minAutoPlayTime = 1.0
	maxAutoPlayTime = 60.0
)

// NewSettingsManager 创建设置管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，记录日志后使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm, nil
}

// Load 从 gdata 加载设置，不存在时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.AutoPlayTime = clampAutoPlayTime(loaded.AutoPlayTime)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata；降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ViewerSettings {
	return sm.settings
}

// SetModifier 记录上次查看的修饰（需调用 Save 持久化）
func (sm *SettingsManager) SetModifier(m BoardModifier) {
	sm.settings.Modifier = m
}

// SetAutoPlay 设置自动轮播开关
func (sm *SettingsManager) SetAutoPlay(enabled bool) {
	sm.settings.AutoPlay = enabled
}

// SetAutoPlayTime 设置轮播间隔，限制在 [1, 60] 秒
func (sm *SettingsManager) SetAutoPlayTime(seconds float64) {
	sm.settings.AutoPlayTime = clampAutoPlayTime(seconds)
}

// SetShowHUD 设置 HUD 显示
func (sm *SettingsManager) SetShowHUD(show bool) {
	sm.settings.ShowHUD = show
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampAutoPlayTime(seconds float64) float64 {
	if seconds < minAutoPlayTime {
		return minAutoPlayTime
	}
	if seconds > maxAutoPlayTime {
		return maxAutoPlayTime
	}
	return seconds
}
