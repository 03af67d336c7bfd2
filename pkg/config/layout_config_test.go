package config

import "testing"

func TestBoardSize(t *testing.T) {
	w, h := BoardSize()
	wantW := 5*72.0 + 4*6.0
	if w != wantW || h != wantW {
		t.Errorf("BoardSize() = (%v, %v), want (%v, %v)", w, h, wantW, wantW)
	}
}

// TestBoardOrigin 棋盘应在视口中居中
func TestBoardOrigin(t *testing.T) {
	w, h := BoardSize()
	x, y := BoardOrigin(GameWindowWidth, GameWindowHeight)

	if x+w/2 != GameWindowWidth/2 {
		t.Errorf("board not centered horizontally: x=%v w=%v", x, w)
	}
	if y+h/2 != GameWindowHeight/2 {
		t.Errorf("board not centered vertically: y=%v h=%v", y, h)
	}
}
