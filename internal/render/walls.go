package render

import (
	"math"

	"maze-raycaster/internal/framebuffer"
	"maze-raycaster/internal/invariant"
	"maze-raycaster/internal/maze"
	"maze-raycaster/internal/raycast"
	"maze-raycaster/internal/texture"
)

// minDistance keeps the projection finite when the camera touches a wall.
const minDistance = 1e-3

// WallOptions tunes the first-person wall projection.
type WallOptions struct {
	// ProjectionConstant scales projected wall height; it stands in for the
	// focal length.
	ProjectionConstant float64
	// Rays is the number of rays per frame; 0 casts one per column.
	Rays int

	Step  float64
	Sky   uint32
	Floor uint32

	// SideShade darkens faces struck across a row boundary. 0 disables it.
	SideShade float64
}

// WallProjector turns one ray per column into textured wall strips.
type WallProjector struct {
	caster *raycast.Caster
	atlas  *texture.Atlas
	opts   WallOptions
}

func NewWallProjector(c *raycast.Caster, a *texture.Atlas, o WallOptions) *WallProjector {
	return &WallProjector{caster: c, atlas: a, opts: o}
}

// RenderWalls draws sky, floor and a textured wall strip in every column and
// stores each column's corrected distance in depth.
func (w *WallProjector) RenderWalls(s *framebuffer.Surface, g *maze.Grid, pose raycast.Pose, depth DepthBuffer) {
	if !invariant.Check(len(depth) == s.Width, "depth buffer has %d columns, surface %d", len(depth), s.Width) {
		return
	}
	rays := w.opts.Rays
	if rays <= 0 || rays > s.Width {
		rays = s.Width
	}

	centerY := float64(s.Height) / 2
	for i := 0; i < rays; i++ {
		angle := pose.RayAngle(i, rays)
		hit, dist := w.caster.CastCorrected(pose, angle, g, w.opts.Step)

		projected := (float64(s.Height) / 2 / math.Max(dist, minDistance)) * w.opts.ProjectionConstant
		top := centerY - projected/2
		bottom := centerY + projected/2
		y0 := max(int(math.Floor(top)), 0)
		y1 := min(int(math.Ceil(bottom)), s.Height)

		tex := w.atlas.Lookup(hit.Kind)
		tx := min(int(hit.TangentOffset*float64(tex.Width())), tex.Width()-1)
		shade := 1.0
		if !hit.Vertical {
			shade = 1 - w.opts.SideShade
		}

		x0, x1 := i*s.Width/rays, (i+1)*s.Width/rays
		for x := x0; x < x1; x++ {
			s.VLine(x, 0, y0, w.opts.Sky)
			s.VLine(x, y1, s.Height, w.opts.Floor)
			for y := y0; y < y1; y++ {
				f := (float64(y) + 0.5 - top) / projected
				ty := min(max(int(f*float64(tex.Height())), 0), tex.Height()-1)
				s.Set(x, y, framebuffer.Scale(tex.At(tx, ty), shade))
			}
			depth[x] = dist
		}
	}
}
