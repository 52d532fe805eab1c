package render

import (
	"math"

	"maze-raycaster/internal/framebuffer"
	"maze-raycaster/internal/raycast"
	"maze-raycaster/internal/texture"
)

// Entity is a billboard placed in the world. Only its position and sprite
// name matter to the renderer.
type Entity struct {
	Pos    raycast.Vec
	Sprite string
}

// SpriteOptions tunes billboard projection.
type SpriteOptions struct {
	Scale       float64
	MinDistance float64
	// BehindLimit is the largest bearing, in radians either side of the
	// heading, at which a sprite is still projected.
	BehindLimit float64
	Key         uint32

	// SpreadByWidth maps the field of view across the surface width. By
	// default a radian of bearing spans height/fov columns.
	SpreadByWidth bool
}

// SpriteCompositor draws camera-facing sprites against the depth buffer.
type SpriteCompositor struct {
	opts SpriteOptions
}

func NewSpriteCompositor(o SpriteOptions) *SpriteCompositor {
	return &SpriteCompositor{opts: o}
}

// RenderSprite projects one sprite at pos. Each screen column is drawn only
// when the sprite is strictly nearer than the depth already recorded there,
// and the column's depth then becomes the sprite's distance. Pixels equal to
// key are left untouched. It reports whether any column was drawn.
func (c *SpriteCompositor) RenderSprite(s *framebuffer.Surface, pose raycast.Pose, pos raycast.Vec, depth DepthBuffer, tex *texture.Texture, key uint32) bool {
	bearing := math.Atan2(pos.Y-pose.Pos.Y, pos.X-pose.Pos.X)
	rel := raycast.RelativeAngle(bearing - pose.Angle)
	if math.Abs(rel) > c.opts.BehindLimit {
		return false
	}
	dist := pose.Pos.Dist(pos)
	if dist < c.opts.MinDistance || dist == 0 {
		return false
	}

	size := float64(s.Height) / dist * c.opts.Scale
	spread := float64(s.Height)
	if c.opts.SpreadByWidth {
		spread = float64(s.Width)
	}
	left := float64(s.Width)/2 + rel*(spread/pose.FOV) - size/2
	top := float64(s.Height)/2 - size/2

	x0 := max(int(math.Floor(left)), 0)
	x1 := min(int(math.Ceil(left+size)), s.Width)
	y0 := max(int(math.Floor(top)), 0)
	y1 := min(int(math.Ceil(top+size)), s.Height)

	tw, th := float64(tex.Width()), float64(tex.Height())
	drawn := false
	for x := x0; x < x1; x++ {
		if depth.Occludes(x, dist) {
			continue
		}
		tx := min(max(int((float64(x)+0.5-left)/size*tw), 0), tex.Width()-1)
		for y := y0; y < y1; y++ {
			ty := min(max(int((float64(y)+0.5-top)/size*th), 0), tex.Height()-1)
			col := tex.At(tx, ty)
			if col == key {
				continue
			}
			s.Set(x, y, col)
		}
		depth[x] = dist
		drawn = true
	}
	return drawn
}

// RenderSprites draws entities in the given order using the configured
// transparent key. Sprites missing from the atlas use its fallback texture.
func (c *SpriteCompositor) RenderSprites(s *framebuffer.Surface, pose raycast.Pose, entities []Entity, depth DepthBuffer, atlas *texture.Atlas) int {
	drawn := 0
	for _, e := range entities {
		tex, ok := atlas.Sprite(e.Sprite)
		if !ok {
			tex = atlas.Fallback()
		}
		if c.RenderSprite(s, pose, e.Pos, depth, tex, c.opts.Key) {
			drawn++
		}
	}
	return drawn
}

// Key returns the transparent color key.
func (c *SpriteCompositor) Key() uint32 { return c.opts.Key }
