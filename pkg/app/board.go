package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/boardfx/pkg/config"
)

var (
	boardFrameColor = color.RGBA{R: 52, G: 40, B: 30, A: 255}
	cellLightColor  = color.RGBA{R: 118, G: 150, B: 86, A: 255}
	cellDarkColor   = color.RGBA{R: 96, G: 128, B: 70, A: 255}
)

// boardPlaceholder 占位棋盘，真实棋盘由外部游戏绘制
// 只用于观察特效在棋盘前后的层级
type boardPlaceholder struct {
	framePadding float32
}

func newBoardPlaceholder() *boardPlaceholder {
	return &boardPlaceholder{framePadding: 10}
}

// Draw 在视口中央绘制网格
func (b *boardPlaceholder) Draw(screen *ebiten.Image, viewportWidth, viewportHeight float64) {
	ox, oy := config.BoardOrigin(viewportWidth, viewportHeight)
	w, h := config.BoardSize()

	pad := b.framePadding
	vector.DrawFilledRect(screen, float32(ox)-pad, float32(oy)-pad, float32(w)+2*pad, float32(h)+2*pad, boardFrameColor, false)

	for row := 0; row < config.GridRows; row++ {
		for col := 0; col < config.GridColumns; col++ {
			x, y := cellPosition(ox, oy, col, row)
			clr := cellLightColor
			if (row+col)%2 == 1 {
				clr = cellDarkColor
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), config.CellWidth, config.CellHeight, clr, false)
		}
	}
}

// cellPosition 返回格子左上角坐标
func cellPosition(originX, originY float64, col, row int) (x, y float64) {
	x = originX + float64(col)*(config.CellWidth+config.CellGap)
	y = originY + float64(row)*(config.CellHeight+config.CellGap)
	return x, y
}
