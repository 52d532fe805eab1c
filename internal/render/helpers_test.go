package render

import (
	"math"
	"testing"

	"maze-raycaster/internal/framebuffer"
	"maze-raycaster/internal/maze"
	"maze-raycaster/internal/raycast"
	"maze-raycaster/internal/texture"
)

const (
	cell  = 100.0
	red   = uint32(0xFF0000)
	blue  = uint32(0x0000FF)
	green = uint32(0x00FF00)
	sky   = uint32(0x87CEEB)
	floor = uint32(0x3D3D3D)
	key   = uint32(0x980088)
)

func mustGrid(t *testing.T, lines ...string) *maze.Grid {
	t.Helper()
	rows := make([][]maze.Cell, len(lines))
	for y, l := range lines {
		rows[y] = []maze.Cell(l)
	}
	g, err := maze.New(rows)
	if err != nil {
		t.Fatalf("maze.New: %v", err)
	}
	return g
}

func solidAtlas(c uint32) *texture.Atlas {
	a := texture.NewAtlas(nil)
	for _, k := range maze.WallKinds {
		a.Register(k, texture.Solid(4, 4, c))
	}
	return a
}

func projector(a *texture.Atlas, rays int) *WallProjector {
	return NewWallProjector(raycast.NewCaster(cell, maze.CellWall), a, WallOptions{
		ProjectionConstant: 70,
		Rays:               rays,
		Step:               1,
		Sky:                sky,
		Floor:              floor,
	})
}

func countColor(s *framebuffer.Surface, c uint32) int {
	n := 0
	for _, p := range s.Buffer {
		if p == c {
			n++
		}
	}
	return n
}

func allFinite(d DepthBuffer) bool {
	for _, v := range d {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
