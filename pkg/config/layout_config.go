package config

// 布局配置常量
// 本文件定义了演示窗口与占位棋盘的布局参数。
// 特效层始终铺满整个视口，与这些数值无关。

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 默认窗口宽度（设备无关像素）
	GameWindowWidth = 800

	// GameWindowHeight 默认窗口高度（设备无关像素）
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Board Effects"
)

// Board Placeholder Configuration (占位棋盘配置)
// 真实的棋盘由外部游戏渲染；这里只绘制一个网格用来观察特效层级
const (
	// GridColumns 棋盘列数
	GridColumns = 5

	// GridRows 棋盘行数
	GridRows = 5

	// CellWidth 每个格子的宽度（像素）
	CellWidth = 72.0

	// CellHeight 每个格子的高度（像素）
	CellHeight = 72.0

	// CellGap 格子间距（像素）
	CellGap = 6.0
)

// BoardSize 返回占位棋盘的总尺寸
func BoardSize() (width, height float64) {
	width = float64(GridColumns)*CellWidth + float64(GridColumns-1)*CellGap
	height = float64(GridRows)*CellHeight + float64(GridRows-1)*CellGap
	return width, height
}

// BoardOrigin 返回棋盘在给定视口中居中时的左上角坐标
func BoardOrigin(viewportWidth, viewportHeight float64) (x, y float64) {
	w, h := BoardSize()
	return (viewportWidth - w) / 2, (viewportHeight - h) / 2
}
