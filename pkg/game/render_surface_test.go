package game

import (
	"context"
	"testing"
)

func TestCapScale(t *testing.T) {
	tests := []struct {
		name     string
		scale    float64
		maxScale float64
		want     float64
	}{
		{"below cap", 1, 1.5, 1},
		{"at cap", 1.5, 1.5, 1.5},
		{"retina capped", 2, 1.5, 1.5},
		{"3x capped", 3, 1.5, 1.5},
		{"no cap", 3, 0, 3},
		{"zero scale", 0, 1.5, 1},
		{"negative scale", -2, 1.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CapScale(tt.scale, tt.maxScale); got != tt.want {
				t.Errorf("CapScale(%v, %v) = %v, want %v", tt.scale, tt.maxScale, got, tt.want)
			}
		})
	}
}

func TestNewImageSurface_Errors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewImageSurface(ctx, 100, 100, 1); err == nil {
		t.Error("NewImageSurface() with cancelled context should fail")
	}
	if _, err := NewImageSurface(context.Background(), 0, 100, 1); err == nil {
		t.Error("NewImageSurface() with zero width should fail")
	}
}
