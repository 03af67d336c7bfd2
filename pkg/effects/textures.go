package effects

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// textureKind names a procedurally generated white texture. Color comes from
// the draw call's ColorScale.
type textureKind int

const (
	textureNone textureKind = iota
	texturePixel
	textureSoftDot   // 中心不透明、边缘透明的圆点（余烬、孢子）
	textureMist      // 更柔和的径向渐变（迷雾）
	textureGradientV // 自上而下从透明到不透明（火焰底部光晕）
	textureVignette  // 中心透明、四周不透明（毒雾暗角）
)

const textureSize = 64

// textureSet 每个特效实例独占的 GPU 纹理，首次绘制时创建，Destroy 时释放
type textureSet map[textureKind]*ebiten.Image

func (ts *textureSet) get(kind textureKind) *ebiten.Image {
	if *ts == nil {
		*ts = textureSet{}
	}
	if img, ok := (*ts)[kind]; ok {
		return img
	}
	src := buildTexture(kind)
	if src == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	(*ts)[kind] = img
	return img
}

// release deallocates every texture created so far.
func (ts *textureSet) release() {
	for kind, img := range *ts {
		img.Deallocate()
		delete(*ts, kind)
	}
}

// buildTexture rasterizes a texture on the CPU.
func buildTexture(kind textureKind) *image.RGBA {
	switch kind {
	case texturePixel:
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		for i := range img.Pix {
			img.Pix[i] = 0xff
		}
		return img
	case textureSoftDot:
		return radialTexture(textureSize, func(d float64) float64 {
			return math.Pow(1-d, 2)
		})
	case textureMist:
		return radialTexture(textureSize*2, func(d float64) float64 {
			return 0.5 + 0.5*math.Cos(d*math.Pi)
		})
	case textureVignette:
		return radialTexture(textureSize*2, func(d float64) float64 {
			// 中心 45% 区域完全透明
			if d < 0.45 {
				return 0
			}
			t := (d - 0.45) / 0.55
			return t * t
		})
	case textureGradientV:
		img := image.NewRGBA(image.Rect(0, 0, 1, textureSize))
		for y := 0; y < textureSize; y++ {
			a := float64(y) / float64(textureSize-1)
			img.SetRGBA(0, y, whiteAlpha(a))
		}
		return img
	}
	return nil
}

// radialTexture fills a square texture with falloff(d) where d is the
// normalized distance from the center (0 at center, 1 at the inscribed circle
// edge, clamped beyond).
func radialTexture(size int, falloff func(d float64) float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			d := math.Sqrt(dx*dx+dy*dy) / c
			if d > 1 {
				d = 1
			}
			img.SetRGBA(x, y, whiteAlpha(falloff(d)))
		}
	}
	return img
}

// whiteAlpha returns premultiplied white at alpha a.
func whiteAlpha(a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	v := uint8(a * 255)
	return color.RGBA{R: v, G: v, B: v, A: v}
}
