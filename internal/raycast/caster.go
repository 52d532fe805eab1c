package raycast

import (
	"math"

	"maze-raycaster/internal/invariant"
	"maze-raycaster/internal/maze"
)

// DefaultStep is the march increment used when a caller passes a
// non-positive step.
const DefaultStep = 1.0

// Hit is the first blocking cell found by one ray.
type Hit struct {
	// Distance is the raw marched distance in world units.
	Distance float64
	Kind     maze.Cell
	// TangentOffset is the position across the struck face in [0, 1).
	TangentOffset float64
	Point         Vec
	Cell          maze.Point
	// Boundary is set when the ray left the grid; Kind is then the caster's
	// BoundaryKind.
	Boundary bool
	// Vertical is set when the struck face runs along the Y axis.
	Vertical bool
}

// Caster marches rays through a grid with a fixed step.
type Caster struct {
	CellSize     float64
	BoundaryKind maze.Cell
}

// NewCaster returns a caster whose rays stop at the grid edge as if it were
// a wall of kind boundary.
func NewCaster(cellSize float64, boundary maze.Cell) *Caster {
	return &Caster{CellSize: cellSize, BoundaryKind: boundary}
}

// Cast marches from origin along angle in increments of step and returns the
// first wall cell reached. Empty and goal cells are passed through. A ray that
// leaves the grid stops at the first sample outside it.
func (c *Caster) Cast(origin Vec, angle float64, grid *maze.Grid, step float64) Hit {
	if step <= 0 {
		step = DefaultStep
	}
	cs := c.CellSize
	dir := Dir(angle)
	limit := math.Hypot(float64(grid.Width)*cs, float64(grid.Height)*cs)
	maxSteps := int(limit/step) + 2

	prev := maze.CellAt(origin.X, origin.Y, cs)
	for i := 0; i <= maxSteps; i++ {
		d := float64(i) * step
		p := origin.Add(dir.Scale(d))
		cell := maze.CellAt(p.X, p.Y, cs)
		code, ok := grid.At(cell.X, cell.Y)
		if !ok {
			return c.hit(d, c.BoundaryKind, p, prev, cell, true)
		}
		if code.IsWall() {
			return c.hit(d, code, p, prev, cell, false)
		}
		prev = cell
	}

	// Unreachable for an origin inside the grid: the march covers the
	// whole diagonal.
	invariant.Check(false, "ray from %v at %.3f escaped %d steps", origin, angle, maxSteps)
	p := origin.Add(dir.Scale(float64(maxSteps) * step))
	return c.hit(float64(maxSteps)*step, c.BoundaryKind, p, prev, maze.CellAt(p.X, p.Y, cs), true)
}

// CastCorrected casts along angle and returns the hit together with the
// distance corrected against the pose heading.
func (c *Caster) CastCorrected(pose Pose, angle float64, grid *maze.Grid, step float64) (Hit, float64) {
	h := c.Cast(pose.Pos, angle, grid, step)
	return h, Correct(h.Distance, angle, pose.Angle)
}

// Ray is one entry of a fan.
type Ray struct {
	Angle float64
	Hit   Hit
}

// Fan casts n rays evenly across the pose's field of view, appending to dst.
func (c *Caster) Fan(dst []Ray, pose Pose, grid *maze.Grid, n int, step float64) []Ray {
	for i := 0; i < n; i++ {
		a := pose.RayAngle(i, n)
		dst = append(dst, Ray{Angle: a, Hit: c.Cast(pose.Pos, a, grid, step)})
	}
	return dst
}

func (c *Caster) hit(d float64, kind maze.Cell, p Vec, prev, cell maze.Point, boundary bool) Hit {
	off, vertical := tangent(p, prev, cell, c.CellSize)
	return Hit{
		Distance:      d,
		Kind:          kind,
		TangentOffset: off,
		Point:         p,
		Cell:          cell,
		Boundary:      boundary,
		Vertical:      vertical,
	}
}

// tangent picks the face the ray crossed to enter cell. Crossing a column
// boundary means the face runs along Y, so the offset comes from y.
func tangent(p Vec, prev, cell maze.Point, cs float64) (float64, bool) {
	fx, fy := frac(p.X, cs), frac(p.Y, cs)
	colChanged, rowChanged := cell.X != prev.X, cell.Y != prev.Y

	var vertical bool
	switch {
	case colChanged && !rowChanged:
		vertical = true
	case rowChanged && !colChanged:
		vertical = false
	default:
		// Corner crossing or a start inside the wall: the nearer edge wins.
		vertical = math.Min(fx, 1-fx) < math.Min(fy, 1-fy)
	}
	if vertical {
		return fy, true
	}
	return fx, false
}

// frac returns the position of v within its cell as a fraction in [0, 1).
func frac(v, cs float64) float64 {
	q := v / cs
	f := q - math.Floor(q)
	if f >= 1 {
		f = 0
	}
	return f
}
