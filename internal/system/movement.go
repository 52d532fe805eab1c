package system

import (
	"math"

	"maze-raycaster/internal/maze"
	"maze-raycaster/internal/raycast"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds, pose untouched
	MoveGoal                      // position updated and now on the goal
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveGoal:
		return "goal"
	}
	return "unknown"
}

// TryMove attempts to displace pose by (dx, dy) world units. The move is
// all or nothing: there is no sliding along walls.
func TryMove(pose *raycast.Pose, dx, dy float64, grid *maze.Grid, cellSize float64) MoveResult {
	next := pose.Pos.Add(raycast.Vec{X: dx, Y: dy})
	if IsBlocked(next, grid, cellSize) {
		return MoveBlocked
	}
	pose.Pos = next
	if OnGoal(next, grid, cellSize) {
		return MoveGoal
	}
	return MoveOK
}

// Forward moves along the heading. Negative speeds walk backwards.
func Forward(pose *raycast.Pose, speed float64, grid *maze.Grid, cellSize float64) MoveResult {
	d := raycast.Dir(pose.Angle).Scale(speed)
	return TryMove(pose, d.X, d.Y, grid, cellSize)
}

// Strafe moves perpendicular to the heading; positive speeds go right.
func Strafe(pose *raycast.Pose, speed float64, grid *maze.Grid, cellSize float64) MoveResult {
	d := raycast.Dir(pose.Angle + math.Pi/2).Scale(speed)
	return TryMove(pose, d.X, d.Y, grid, cellSize)
}

// Rotate turns the pose by delta radians, keeping the angle in [0, 2π).
func Rotate(pose *raycast.Pose, delta float64) {
	pose.Angle = raycast.NormalizeAngle(pose.Angle + delta)
}
