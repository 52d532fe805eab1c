package framebuffer

import "image"

// Surface owns a width×height color buffer. Every render stage writes through
// it; writes outside the surface are dropped.
type Surface struct {
	Width, Height int
	// Buffer is row-major, one packed color per pixel.
	Buffer []uint32

	background uint32
	current    uint32
}

// New allocates a surface cleared to black with white as the current color.
func New(width, height int) *Surface {
	return &Surface{
		Width:   width,
		Height:  height,
		Buffer:  make([]uint32, width*height),
		current: 0xFFFFFF,
	}
}

// SetBackground sets the color used by Clear.
func (s *Surface) SetBackground(c uint32) { s.background = c }

// SetCurrentColor sets the color used by Point.
func (s *Surface) SetCurrentColor(c uint32) { s.current = c }

// Clear fills the whole buffer with the background color.
func (s *Surface) Clear() {
	for i := range s.Buffer {
		s.Buffer[i] = s.background
	}
}

// Point writes the current color at (x, y) if it lies on the surface.
func (s *Surface) Point(x, y int) {
	s.Set(x, y, s.current)
}

// Set writes c at (x, y) if it lies on the surface.
func (s *Surface) Set(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return
	}
	s.Buffer[y*s.Width+x] = c
}

// At returns the color at (x, y), or 0 outside the surface.
func (s *Surface) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return 0
	}
	return s.Buffer[y*s.Width+x]
}

// VLine fills column x from y0 (inclusive) to y1 (exclusive) with c,
// clipped to the surface.
func (s *Surface) VLine(x, y0, y1 int, c uint32) {
	if x < 0 || x >= s.Width {
		return
	}
	y0 = max(y0, 0)
	y1 = min(y1, s.Height)
	for y := y0; y < y1; y++ {
		s.Buffer[y*s.Width+x] = c
	}
}

// FillRect fills the w×h rectangle at (x, y) with the current color.
func (s *Surface) FillRect(x, y, w, h int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.Width), min(y+h, s.Height)
	for py := y0; py < y1; py++ {
		row := s.Buffer[py*s.Width : (py+1)*s.Width]
		for px := x0; px < x1; px++ {
			row[px] = s.current
		}
	}
}

// Image converts the buffer to an opaque RGBA image.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for i, c := range s.Buffer {
		r, g, b := Split(c)
		o := i * 4
		img.Pix[o] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = b
		img.Pix[o+3] = 0xFF
	}
	return img
}
