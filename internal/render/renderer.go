package render

import (
	"strings"

	"maze-raycaster/internal/framebuffer"
	"maze-raycaster/internal/maze"
	"maze-raycaster/internal/raycast"
	"maze-raycaster/internal/texture"
)

// Features selects which stages a Renderer runs.
type Features uint8

const (
	// FeatureOverview draws only the full-surface top-down view and
	// skips every 3-D stage.
	FeatureOverview Features = 1 << iota
	FeatureWalls
	FeatureSprites
	FeatureMinimap
)

// Presets, in the order the driver cycles through them.
const (
	ModeOverview = FeatureOverview
	ModeWalls    = FeatureWalls
	ModeSprites  = FeatureWalls | FeatureSprites
	ModeFull     = FeatureWalls | FeatureSprites | FeatureMinimap
)

var modes = []Features{ModeOverview, ModeWalls, ModeSprites, ModeFull}

// Has reports whether every bit of x is set in f.
func (f Features) Has(x Features) bool { return f&x == x }

// Next returns the preset after f, wrapping around. Unknown sets go to
// ModeFull.
func (f Features) Next() Features {
	for i, m := range modes {
		if m == f {
			return modes[(i+1)%len(modes)]
		}
	}
	return ModeFull
}

func (f Features) String() string {
	var parts []string
	for _, n := range []struct {
		bit  Features
		name string
	}{
		{FeatureOverview, "overview"},
		{FeatureWalls, "walls"},
		{FeatureSprites, "sprites"},
		{FeatureMinimap, "minimap"},
	} {
		if f.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Scene is the read-only input of one frame.
type Scene struct {
	Grid     *maze.Grid
	Pose     raycast.Pose
	Entities []Entity
}

// FrameStats summarizes one rendered frame.
type FrameStats struct {
	Columns int
	Sprites int
}

// Options configures every stage of a Renderer.
type Options struct {
	CellSize   float64
	Boundary   maze.Cell
	Background uint32
	Features   Features

	Walls   WallOptions
	Sprites SpriteOptions
	Minimap MinimapOptions
}

// Renderer owns the depth buffer and runs the enabled stages over a
// surface. It is not safe for concurrent use; each session builds its own.
type Renderer struct {
	Features Features

	background uint32
	atlas      *texture.Atlas
	caster     *raycast.Caster
	walls      *WallProjector
	sprites    *SpriteCompositor
	minimap    *Minimap
	depth      DepthBuffer
}

// New builds a renderer. An empty minimap palette is filled from the
// atlas' average texture colors.
func New(atlas *texture.Atlas, o Options) *Renderer {
	caster := raycast.NewCaster(o.CellSize, o.Boundary)
	if len(o.Minimap.Palette) == 0 {
		o.Minimap.Palette = PaletteFromAtlas(atlas)
	}
	return &Renderer{
		Features:   o.Features,
		background: o.Background,
		atlas:      atlas,
		caster:     caster,
		walls:      NewWallProjector(caster, atlas, o.Walls),
		sprites:    NewSpriteCompositor(o.Sprites),
		minimap:    NewMinimap(caster, o.Minimap),
	}
}

// Frame clears s, resets the depth buffer and draws the scene.
func (r *Renderer) Frame(s *framebuffer.Surface, sc Scene) FrameStats {
	s.SetBackground(r.background)
	s.Clear()
	if len(r.depth) != s.Width {
		r.depth = NewDepthBuffer(s.Width)
	} else {
		r.depth.Reset()
	}

	var st FrameStats
	if r.Features.Has(FeatureOverview) {
		r.minimap.RenderOverview(s, sc.Grid, sc.Pose)
		return st
	}
	if r.Features.Has(FeatureWalls) {
		r.walls.RenderWalls(s, sc.Grid, sc.Pose, r.depth)
		st.Columns = s.Width
	}
	if r.Features.Has(FeatureSprites) {
		st.Sprites = r.sprites.RenderSprites(s, sc.Pose, sc.Entities, r.depth, r.atlas)
	}
	if r.Features.Has(FeatureMinimap) {
		r.minimap.Render(s, sc.Grid, sc.Pose, minimapMargin, minimapMargin)
	}
	return st
}

const minimapMargin = 2

// Depth exposes the buffer left by the last frame.
func (r *Renderer) Depth() DepthBuffer { return r.depth }

// Caster returns the caster shared by every stage.
func (r *Renderer) Caster() *raycast.Caster { return r.caster }
