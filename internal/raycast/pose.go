package raycast

import "math"

// Vec is a position or displacement in world units.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }
func Dir(angle float64) Vec { return Vec{math.Cos(angle), math.Sin(angle)} }

// Pose is the camera: position, heading and horizontal field of view, all
// angles in radians.
type Pose struct {
	Pos   Vec
	Angle float64
	FOV   float64
}

// RayAngle returns the angle of ray i out of n spread across the field of
// view, starting at the left edge.
func (p Pose) RayAngle(i, n int) float64 {
	return p.Angle - p.FOV/2 + p.FOV*(float64(i)/float64(n))
}

// NormalizeAngle wraps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// RelativeAngle wraps a into (-π, π].
func RelativeAngle(a float64) float64 {
	a = NormalizeAngle(a)
	if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Correct converts a raw marched distance into the camera-perpendicular
// distance used for projection, removing fisheye distortion.
func Correct(raw, rayAngle, viewAngle float64) float64 {
	return raw * math.Cos(rayAngle-viewAngle)
}
