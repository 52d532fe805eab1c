package render

import "math"

// DepthBuffer holds the nearest surface distance drawn in each screen column.
type DepthBuffer []float64

// NewDepthBuffer returns a reset buffer for a surface width columns wide.
func NewDepthBuffer(width int) DepthBuffer {
	d := make(DepthBuffer, width)
	d.Reset()
	return d
}

// Reset marks every column as having no wall yet.
func (d DepthBuffer) Reset() {
	for i := range d {
		d[i] = math.Inf(1)
	}
}

// Occludes reports whether column x already holds something at or nearer
// than dist. Columns outside the buffer always occlude.
func (d DepthBuffer) Occludes(x int, dist float64) bool {
	if x < 0 || x >= len(d) {
		return true
	}
	return !(dist < d[x])
}
