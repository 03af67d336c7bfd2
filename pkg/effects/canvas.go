package effects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws in device-independent pixels onto a render surface that may
// be backed at a higher pixel density. It also carries the scene-wide offset
// and opacity used by shake and glitch.
type Canvas struct {
	dst     *ebiten.Image
	scale   float64
	offsetX float64
	offsetY float64
	alpha   float64
}

// NewCanvas wraps dst. scale is device pixels per logical pixel.
func NewCanvas(dst *ebiten.Image, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	return &Canvas{dst: dst, scale: scale, alpha: 1}
}

// WithScene returns a copy of the canvas with an extra offset and opacity.
func (c *Canvas) WithScene(offsetX, offsetY, alpha float64) *Canvas {
	cc := *c
	cc.offsetX += offsetX
	cc.offsetY += offsetY
	cc.alpha *= alpha
	return &cc
}

// Scale returns device pixels per logical pixel.
func (c *Canvas) Scale() float64 {
	return c.scale
}

func (c *Canvas) px(v float64) float32 {
	return float32(v * c.scale)
}

func (c *Canvas) pt(x, y float64) (float32, float32) {
	return c.px(x + c.offsetX), c.px(y + c.offsetY)
}

// tint combines an RGB color with a per-draw alpha and the canvas opacity.
func (c *Canvas) tint(clr color.NRGBA, alpha float64) color.NRGBA {
	a := alpha * c.alpha
	if a <= 0 {
		return color.NRGBA{}
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: uint8(a * 255)}
}

// FillRect draws an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.NRGBA, alpha float64) {
	col := c.tint(clr, alpha)
	if col.A == 0 || c.dst == nil {
		return
	}
	px, py := c.pt(x, y)
	vector.DrawFilledRect(c.dst, px, py, c.px(w), c.px(h), col, false)
}

// FillCircle draws a filled circle.
func (c *Canvas) FillCircle(x, y, r float64, clr color.NRGBA, alpha float64) {
	col := c.tint(clr, alpha)
	if col.A == 0 || c.dst == nil {
		return
	}
	px, py := c.pt(x, y)
	vector.DrawFilledCircle(c.dst, px, py, c.px(r), col, true)
}

// StrokeLine draws a line segment of the given logical width.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA, alpha float64) {
	col := c.tint(clr, alpha)
	if col.A == 0 || c.dst == nil {
		return
	}
	ax, ay := c.pt(x0, y0)
	bx, by := c.pt(x1, y1)
	vector.StrokeLine(c.dst, ax, ay, bx, by, c.px(width), col, true)
}

// Sprite describes a textured quad centred on (X, Y).
type Sprite struct {
	X, Y          float64
	Width, Height float64
	Rotation      float64
	Color         color.NRGBA
	Alpha         float64
	Blend         ebiten.Blend
}

// DrawSprite stretches img over the sprite's rectangle.
func (c *Canvas) DrawSprite(img *ebiten.Image, s Sprite) {
	col := c.tint(s.Color, s.Alpha)
	if col.A == 0 || c.dst == nil || img == nil {
		return
	}
	b := img.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	if sw == 0 || sh == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-sw/2, -sh/2)
	op.GeoM.Scale(s.Width/sw, s.Height/sh)
	if s.Rotation != 0 {
		op.GeoM.Rotate(s.Rotation)
	}
	op.GeoM.Translate(s.X+c.offsetX, s.Y+c.offsetY)
	op.GeoM.Scale(c.scale, c.scale)
	op.ColorScale.ScaleWithColor(col)
	op.Blend = s.Blend
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

// StrokeCircle draws a circle outline.
func (c *Canvas) StrokeCircle(x, y, r, width float64, clr color.NRGBA, alpha float64) {
	col := c.tint(clr, alpha)
	if col.A == 0 || c.dst == nil {
		return
	}
	px, py := c.pt(x, y)
	vector.StrokeCircle(c.dst, px, py, c.px(r), c.px(width), col, true)
}
