package term

// Viewport maps terminal cells onto surface pixels. Each cell shows two
// vertically stacked pixels, so a viewport of Cols×Rows cells samples a
// Cols×(2*Rows) grid, nearest-neighbour scaled onto the surface.
type Viewport struct {
	Cols int
	Rows int
}

// NewViewport returns the viewport for a screen of the given size with
// hudRows reserved at the bottom. Sizes never drop below one cell.
func NewViewport(screenW, screenH, hudRows int) Viewport {
	return Viewport{Cols: max(screenW, 1), Rows: max(screenH-hudRows, 1)}
}

// Pixel returns the surface pixel sampled for column col and half-row sub
// (0 ≤ sub < 2*Rows) on a width×height surface.
func (v Viewport) Pixel(width, height, col, sub int) (x, y int) {
	x = col * width / v.Cols
	y = sub * height / (2 * v.Rows)
	return min(x, width-1), min(y, height-1)
}

// Native returns the surface size that fills the viewport one pixel per
// half cell.
func (v Viewport) Native() (width, height int) {
	return v.Cols, 2 * v.Rows
}
