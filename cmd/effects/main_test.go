package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gonewx/boardfx/pkg/effects"
	"github.com/gonewx/boardfx/pkg/game"
)

func TestAutoPlayDue(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		elapsed  time.Duration
		interval float64
		want     bool
	}{
		{"disabled", false, 10 * time.Second, 6, false},
		{"not yet", true, 5 * time.Second, 6, false},
		{"exactly", true, 6 * time.Second, 6, true},
		{"overdue", true, 30 * time.Second, 6, true},
		{"zero interval", true, time.Hour, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := autoPlayDue(tt.enabled, tt.elapsed, tt.interval); got != tt.want {
				t.Errorf("autoPlayDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHudInfoLines(t *testing.T) {
	info := hudInfo{
		Modifier:  game.BoardModifier{Mechanic: "random_elemental", Element: "lightning"},
		Key:       effects.KeyLightning,
		Layer:     effects.LayerForeground,
		Particles: 1,
		AutoPlay:  true,
		Interval:  6,
		Status:    "Preferences saved",
	}
	got := strings.Join(info.lines(), "\n")
	for _, want := range []string{"random_elemental/lightning", "lightning (foreground layer)", "Live particles: 1", "AUTO-PLAY every 6s", "Preferences saved"} {
		if !strings.Contains(got, want) {
			t.Errorf("HUD missing %q:\n%s", want, got)
		}
	}

	info.AutoPlay = false
	info.Status = ""
	if n := len(info.lines()); n != 4 {
		t.Errorf("HUD has %d lines without auto-play and status, want 4", n)
	}
}
