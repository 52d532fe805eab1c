// Package term draws rendered frames and the HUD onto a tcell screen.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"maze-raycaster/internal/framebuffer"
)

// HUDRows is the number of rows reserved at the bottom of the screen.
const HUDRows = 3

// Presenter draws pixel surfaces onto a tcell screen with half-block cells.
type Presenter struct {
	screen tcell.Screen
}

// NewPresenter creates a Presenter for the given screen.
func NewPresenter(screen tcell.Screen) *Presenter {
	return &Presenter{screen: screen}
}

// Viewport returns the area above the HUD for the current screen size.
func (p *Presenter) Viewport() Viewport {
	w, h := p.screen.Size()
	return NewViewport(w, h, HUDRows)
}

// Blit scales s into the viewport.
func (p *Presenter) Blit(s *framebuffer.Surface) {
	vp := p.Viewport()
	for row := 0; row < vp.Rows; row++ {
		for col := 0; col < vp.Cols; col++ {
			x, top := vp.Pixel(s.Width, s.Height, col, 2*row)
			_, bottom := vp.Pixel(s.Width, s.Height, col, 2*row+1)
			style := tcell.StyleDefault.
				Foreground(Color(s.At(x, top))).
				Background(Color(s.At(x, bottom)))
			p.screen.SetContent(col, row, UpperHalf, nil, style)
		}
	}
}

// Clear blanks the whole screen.
func (p *Presenter) Clear() { p.screen.Clear() }

// Show flushes pending drawing to the terminal.
func (p *Presenter) Show() { p.screen.Show() }

// drawText writes text at (x, y), advancing by each rune's display width and
// stopping at the screen edge. It returns the column after the last rune.
func (p *Presenter) drawText(x, y int, text string, style tcell.Style) int {
	w, _ := p.screen.Size()
	col := x
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if col+cw > w {
			break
		}
		p.screen.SetContent(col, y, ch, nil, style)
		if cw == 2 {
			// Fill the second column to avoid rendering artifacts.
			p.screen.SetContent(col+1, y, ' ', nil, style)
		}
		col += cw
	}
	return col
}

func (p *Presenter) fillRow(y int, ch rune, style tcell.Style) {
	w, _ := p.screen.Size()
	for x := 0; x < w; x++ {
		p.screen.SetContent(x, y, ch, nil, style)
	}
}
