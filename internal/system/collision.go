package system

import (
	"maze-raycaster/internal/maze"
	"maze-raycaster/internal/raycast"
)

// IsBlocked reports whether a body at world position pos would overlap a
// wall. Positions outside the grid count as blocked.
func IsBlocked(pos raycast.Vec, grid *maze.Grid, cellSize float64) bool {
	p := maze.CellAt(pos.X, pos.Y, cellSize)
	c, ok := grid.At(p.X, p.Y)
	if !ok {
		return true
	}
	return c.IsWall()
}

// OnGoal reports whether pos lies in a goal cell.
func OnGoal(pos raycast.Vec, grid *maze.Grid, cellSize float64) bool {
	p := maze.CellAt(pos.X, pos.Y, cellSize)
	c, ok := grid.At(p.X, p.Y)
	return ok && c.IsGoal()
}
