package generate

import "maze-raycaster/internal/maze"

// Rect is an axis-aligned rectangle of cells, inclusive on both ends.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() maze.Point {
	return maze.Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p maze.Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// paintWalls gives the plain walls ringing each room that room's wall kind,
// so neighbouring rooms are told apart by texture.
func paintWalls(g *maze.Grid, rooms []Rect) {
	for i, r := range rooms {
		kind := maze.WallKinds[i%len(maze.WallKinds)]
		for y := r.Y1 - 1; y <= r.Y2+1; y++ {
			for x := r.X1 - 1; x <= r.X2+1; x++ {
				if c, ok := g.At(x, y); ok && c == maze.CellWall {
					g.Set(x, y, kind)
				}
			}
		}
	}
}
