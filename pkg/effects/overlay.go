package effects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// AnchorMode decides how an overlay follows the viewport.
type AnchorMode int

const (
	// AnchorFull covers the whole viewport.
	AnchorFull AnchorMode = iota
	// AnchorBottom is a full-width band along the bottom edge.
	AnchorBottom
)

// Overlay is a viewport-sized drawable (tint, flash, glow band, vignette).
// Its rectangle is recomputed by Anchor on every resize.
type Overlay struct {
	Mode     AnchorMode
	Fraction float64 // band height as a fraction of the viewport (AnchorBottom)

	X, Y, Width, Height float64

	Color   color.NRGBA
	Alpha   float64
	Texture textureKind // textureNone = flat fill
	Blend   ebiten.Blend
}

// Anchor recomputes the overlay rectangle for vp.
func (o *Overlay) Anchor(vp Viewport) {
	switch o.Mode {
	case AnchorBottom:
		h := vp.Height * o.Fraction
		o.X, o.Y, o.Width, o.Height = 0, vp.Height-h, vp.Width, h
	default:
		o.X, o.Y, o.Width, o.Height = 0, 0, vp.Width, vp.Height
	}
}

// Draw renders the overlay, pulling textures from ts on first use.
func (o *Overlay) Draw(c *Canvas, ts *textureSet) {
	if o.Alpha <= 0 || o.Width <= 0 || o.Height <= 0 {
		return
	}
	if o.Texture == textureNone {
		c.FillRect(o.X, o.Y, o.Width, o.Height, o.Color, o.Alpha)
		return
	}
	c.DrawSprite(ts.get(o.Texture), Sprite{
		X:      o.X + o.Width/2,
		Y:      o.Y + o.Height/2,
		Width:  o.Width,
		Height: o.Height,
		Color:  o.Color,
		Alpha:  o.Alpha,
		Blend:  o.Blend,
	})
}
