package game

import (
	"sync"

	"github.com/gonewx/boardfx/pkg/effects"
)

// BoardModifier is the board-wide modifier as the game rules report it.
type BoardModifier struct {
	Mechanic string `yaml:"mechanic"`
	Element  string `yaml:"element"`
}

// EffectKey resolves the modifier to an effect key.
func (m BoardModifier) EffectKey() effects.Key {
	return effects.ResolveKey(m.Mechanic, m.Element)
}

// String 用于 HUD 与日志
func (m BoardModifier) String() string {
	if m.Element == "" {
		return m.Mechanic
	}
	return m.Mechanic + "/" + m.Element
}

// DemoModifiers covers every effect key once, in viewer order.
var DemoModifiers = []BoardModifier{
	{Mechanic: "none"},
	{Mechanic: effects.MechanicRandomElemental, Element: "fire"},
	{Mechanic: effects.MechanicRandomElemental, Element: "water"},
	{Mechanic: effects.MechanicRandomElemental, Element: "earth"},
	{Mechanic: effects.MechanicRandomElemental, Element: "wind"},
	{Mechanic: effects.MechanicRandomElemental, Element: "lightning"},
	{Mechanic: "poison"},
	{Mechanic: "joker"},
	{Mechanic: "foggy"},
}

// ModifierListener is notified after the board modifier changes.
type ModifierListener func(m BoardModifier)

// GameState 存储全局棋盘状态
// 特效引擎只读取 mechanic/element，规则本身不在这里
type GameState struct {
	mu         sync.Mutex
	modifier   BoardModifier
	listeners  []listenerEntry
	nextListen int
}

type listenerEntry struct {
	id int
	fn ModifierListener
}

// 全局单例实例
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{modifier: BoardModifier{Mechanic: "none"}}
	}
	return globalGameState
}

// ResetGameState 丢弃单例（测试用）
func ResetGameState() {
	globalGameState = nil
}

// SetModifier stores the modifier and notifies listeners if it changed.
func (gs *GameState) SetModifier(m BoardModifier) {
	gs.mu.Lock()
	if gs.modifier == m {
		gs.mu.Unlock()
		return
	}
	gs.modifier = m
	listeners := append([]listenerEntry(nil), gs.listeners...)
	gs.mu.Unlock()

	for _, l := range listeners {
		l.fn(m)
	}
}

// SetBoardModifier is SetModifier with separate fields.
func (gs *GameState) SetBoardModifier(mechanic, element string) {
	gs.SetModifier(BoardModifier{Mechanic: mechanic, Element: element})
}

// Modifier returns the current modifier.
func (gs *GameState) Modifier() BoardModifier {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.modifier
}

// EffectKey returns the effect key for the current modifier.
func (gs *GameState) EffectKey() effects.Key {
	return gs.Modifier().EffectKey()
}

// OnModifierChange registers a listener and returns a function that removes
// it. Calling the returned function more than once is harmless.
func (gs *GameState) OnModifierChange(l ModifierListener) (unsubscribe func()) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.nextListen++
	id := gs.nextListen
	gs.listeners = append(gs.listeners, listenerEntry{id: id, fn: l})

	return func() {
		gs.mu.Lock()
		defer gs.mu.Unlock()
		for i, e := range gs.listeners {
			if e.id == id {
				gs.listeners = append(gs.listeners[:i:i], gs.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount 返回当前注册的监听器数量
func (gs *GameState) ListenerCount() int {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return len(gs.listeners)
}

// CycleModifier moves step entries through DemoModifiers from the current
// modifier (or from the start if it is not in the list) and applies it.
func (gs *GameState) CycleModifier(step int) BoardModifier {
	cur := gs.Modifier()
	idx := -1
	for i, m := range DemoModifiers {
		if m == cur {
			idx = i
			break
		}
	}
	n := len(DemoModifiers)
	if idx < 0 {
		idx = 0
		if step > 0 {
			step--
		}
	}
	next := DemoModifiers[((idx+step)%n+n)%n]
	gs.SetModifier(next)
	return next
}
