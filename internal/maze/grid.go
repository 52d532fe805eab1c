package maze

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMalformedGrid matches every structural grid error.
	ErrMalformedGrid = errors.New("malformed maze grid")
	ErrEmptyGrid     = fmt.Errorf("%w: no rows or columns", ErrMalformedGrid)
	ErrRaggedGrid    = fmt.Errorf("%w: rows of unequal length", ErrMalformedGrid)
	ErrUnknownCell   = fmt.Errorf("%w: unknown cell code", ErrMalformedGrid)
)

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Grid holds the rectangular cell layout for one level. It is read-only once
// built; the renderers and the collision check share it without copying.
type Grid struct {
	Width, Height int
	cells         [][]Cell
}

// New validates rows and wraps them in a Grid. The rows are copied.
func New(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(row), width)
		}
		for x, c := range row {
			if !c.Known() {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCell, rune(c), x, y)
			}
		}
		cells[y] = append([]Cell(nil), row...)
	}
	return &Grid{Width: width, Height: len(rows), cells: cells}, nil
}

// Filled returns a width×height grid where every cell is c.
func Filled(width, height int, c Cell) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = c
		}
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// InBounds reports whether (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y). ok is false outside the grid.
func (g *Grid) At(x, y int) (c Cell, ok bool) {
	if !g.InBounds(x, y) {
		return CellEmpty, false
	}
	return g.cells[y][x], true
}

// Set replaces the cell at (x, y). Used while building a level; callers must
// not mutate a grid that is being rendered. Panics if out of bounds.
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[y][x] = c
}

// IsWall reports whether (x, y) is in bounds and a wall kind.
func (g *Grid) IsWall(x, y int) bool {
	c, ok := g.At(x, y)
	return ok && c.IsWall()
}

// Rows returns a copy of the cell rows.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, g.Height)
	for y := range out {
		out[y] = append([]Cell(nil), g.cells[y]...)
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{Width: g.Width, Height: g.Height, cells: g.Rows()}
}

// CellAt converts a world position to the containing cell using the shared
// cell size.
func CellAt(wx, wy, cellSize float64) Point {
	return Point{X: floorDiv(wx, cellSize), Y: floorDiv(wy, cellSize)}
}

// WorldCenter returns the world position of the center of cell p.
func WorldCenter(p Point, cellSize float64) (float64, float64) {
	return (float64(p.X) + 0.5) * cellSize, (float64(p.Y) + 0.5) * cellSize
}

func floorDiv(v, size float64) int {
	return int(math.Floor(v / size))
}
