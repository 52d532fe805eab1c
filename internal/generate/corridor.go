package generate

import "maze-raycaster/internal/maze"

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// carveCorridor digs a tunnel between cells a and b.
func carveCorridor(g *maze.Grid, a, b maze.Point, cfg *Config) {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		carveZShaped(g, a, b)
	case CorridorStraight:
		carveH(g, a.X, b.X, a.Y)
		carveV(g, a.Y, b.Y, b.X)
	default: // LShaped
		if cfg.Rand.Intn(2) == 0 {
			carveH(g, a.X, b.X, a.Y)
			carveV(g, a.Y, b.Y, b.X)
		} else {
			carveV(g, a.Y, b.Y, a.X)
			carveH(g, a.X, b.X, b.Y)
		}
	}
}

func carveH(g *maze.Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		carve(g, x, y)
	}
}

func carveV(g *maze.Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		carve(g, x, y)
	}
}

func carveZShaped(g *maze.Grid, a, b maze.Point) {
	midY := (a.Y + b.Y) / 2
	carveV(g, a.Y, midY, a.X)
	carveH(g, a.X, b.X, midY)
	carveV(g, midY, b.Y, b.X)
}

// carve opens one cell, never touching the outer border.
func carve(g *maze.Grid, x, y int) {
	if x < 1 || y < 1 || x >= g.Width-1 || y >= g.Height-1 {
		return
	}
	g.Set(x, y, maze.CellEmpty)
}
