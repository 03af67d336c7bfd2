package game

import (
	"context"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/boardfx/pkg/effects"
)

// RenderSurface is the transparent offscreen target an effect draws into.
// Sizes are in logical pixels; the backing image is Scale() times larger.
type RenderSurface interface {
	Resize(width, height int)
	Clear()
	Canvas() *effects.Canvas
	Image() *ebiten.Image
	Scale() float64
	Dispose()
}

// SurfaceFactory creates a surface of width×height logical pixels at the
// given pixel density. It may block; the host calls it off the game loop.
type SurfaceFactory func(ctx context.Context, width, height int, scale float64) (RenderSurface, error)

// DeviceScale caps the monitor's device scale factor at maxScale.
func DeviceScale(maxScale float64) float64 {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	return CapScale(scale, maxScale)
}

// CapScale returns min(scale, maxScale), treating non-positive values as 1.
func CapScale(scale, maxScale float64) float64 {
	if scale <= 0 {
		scale = 1
	}
	if maxScale > 0 && scale > maxScale {
		scale = maxScale
	}
	return scale
}

// imageSurface 基于 ebiten 离屏图像的渲染表面
type imageSurface struct {
	img    *ebiten.Image
	scale  float64
	width  int
	height int
}

// NewImageSurface is the default SurfaceFactory.
func NewImageSurface(ctx context.Context, width, height int, scale float64) (RenderSurface, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("surface creation cancelled: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	s := &imageSurface{scale: CapScale(scale, 0)}
	s.Resize(width, height)
	return s, nil
}

func (s *imageSurface) backing(v int) int {
	return int(math.Ceil(float64(v) * s.scale))
}

func (s *imageSurface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if s.img != nil && width == s.width && height == s.height {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.width, s.height = width, height
	s.img = ebiten.NewImage(s.backing(width), s.backing(height))
}

func (s *imageSurface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

func (s *imageSurface) Canvas() *effects.Canvas {
	return effects.NewCanvas(s.img, s.scale)
}

func (s *imageSurface) Image() *ebiten.Image {
	return s.img
}

func (s *imageSurface) Scale() float64 {
	return s.scale
}

func (s *imageSurface) Dispose() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}
