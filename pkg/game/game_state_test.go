package game

import (
	"testing"

	"github.com/gonewx/boardfx/pkg/effects"
)

func TestGetGameState_Singleton(t *testing.T) {
	ResetGameState()
	defer ResetGameState()

	gs1 := GetGameState()
	gs2 := GetGameState()
	if gs1 != gs2 {
		t.Error("GetGameState() should return the same instance")
	}
	if gs1.EffectKey() != effects.KeyNone {
		t.Errorf("initial EffectKey() = %q, want none", gs1.EffectKey())
	}
}

func TestGameState_SetModifierNotifiesOnChange(t *testing.T) {
	gs := &GameState{}

	var got []BoardModifier
	gs.OnModifierChange(func(m BoardModifier) {
		got = append(got, m)
	})

	gs.SetBoardModifier("random_elemental", "fire")
	gs.SetBoardModifier("random_elemental", "fire") // 未变化，不通知
	gs.SetBoardModifier("joker", "")

	if len(got) != 2 {
		t.Fatalf("listener called %d times, want 2", len(got))
	}
	if got[0].EffectKey() != effects.KeyFire || got[1].EffectKey() != effects.KeyJoker {
		t.Errorf("listener saw %v", got)
	}
	if gs.EffectKey() != effects.KeyJoker {
		t.Errorf("EffectKey() = %q, want joker", gs.EffectKey())
	}
}

// TestDemoModifiers_CoverEveryKey 演示列表覆盖所有特效 key
func TestDemoModifiers_CoverEveryKey(t *testing.T) {
	seen := map[effects.Key]bool{}
	for _, m := range DemoModifiers {
		seen[m.EffectKey()] = true
	}
	for _, k := range append([]effects.Key{effects.KeyNone}, effects.AllKeys...) {
		if !seen[k] {
			t.Errorf("DemoModifiers has no entry for %q", k)
		}
	}
}

func TestGameState_CycleModifier(t *testing.T) {
	gs := &GameState{modifier: DemoModifiers[0]}
	n := len(DemoModifiers)

	if got := gs.CycleModifier(1); got != DemoModifiers[1] {
		t.Errorf("CycleModifier(1) = %v, want %v", got, DemoModifiers[1])
	}
	if got := gs.CycleModifier(-2); got != DemoModifiers[n-1] {
		t.Errorf("CycleModifier(-2) = %v, want %v", got, DemoModifiers[n-1])
	}
	if got := gs.CycleModifier(1); got != DemoModifiers[0] {
		t.Errorf("CycleModifier wrap = %v, want %v", got, DemoModifiers[0])
	}

	// 不在列表中的修饰从头开始
	gs.SetBoardModifier("meteor", "")
	if got := gs.CycleModifier(1); got != DemoModifiers[0] {
		t.Errorf("CycleModifier from unknown = %v, want %v", got, DemoModifiers[0])
	}
}

func TestBoardModifier_String(t *testing.T) {
	if s := (BoardModifier{Mechanic: "poison"}).String(); s != "poison" {
		t.Errorf("String() = %q", s)
	}
	if s := (BoardModifier{Mechanic: "random_elemental", Element: "earth"}).String(); s != "random_elemental/earth" {
		t.Errorf("String() = %q", s)
	}
}

// TestGameState_Unsubscribe 取消订阅后不再通知，其余监听器保持顺序
func TestGameState_Unsubscribe(t *testing.T) {
	gs := &GameState{}

	var calls []string
	unA := gs.OnModifierChange(func(BoardModifier) { calls = append(calls, "a") })
	gs.OnModifierChange(func(BoardModifier) { calls = append(calls, "b") })
	unC := gs.OnModifierChange(func(BoardModifier) { calls = append(calls, "c") })

	unA()
	unA() // 重复调用无副作用
	if gs.ListenerCount() != 2 {
		t.Fatalf("ListenerCount() = %d, want 2", gs.ListenerCount())
	}

	gs.SetBoardModifier("fire", "")
	if len(calls) != 2 || calls[0] != "b" || calls[1] != "c" {
		t.Errorf("calls = %v, want [b c]", calls)
	}

	unC()
	calls = nil
	gs.SetBoardModifier("water", "")
	if len(calls) != 1 || calls[0] != "b" {
		t.Errorf("calls = %v, want [b]", calls)
	}
}
