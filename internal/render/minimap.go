package render

import (
	"maze-raycaster/internal/framebuffer"
	"maze-raycaster/internal/maze"
	"maze-raycaster/internal/raycast"
	"maze-raycaster/internal/texture"
)

// MinimapOptions tunes the top-down overview.
type MinimapOptions struct {
	// Scale is the size of one grid cell in pixels.
	Scale int
	Rays  int
	Step  float64

	// Palette colors wall kinds; kinds missing from it use Wall.
	Palette map[maze.Cell]uint32
	Wall    uint32
	Empty   uint32
	Goal    uint32
	Player  uint32
	Ray     uint32
}

// Minimap draws the grid, a sparse ray fan and the player in world-scaled
// 2-D. It shares the caster with the 3-D view but casts far fewer rays.
type Minimap struct {
	caster *raycast.Caster
	opts   MinimapOptions
	fan    []raycast.Ray
}

func NewMinimap(c *raycast.Caster, o MinimapOptions) *Minimap {
	if o.Scale < 1 {
		o.Scale = 1
	}
	return &Minimap{caster: c, opts: o}
}

// PaletteFromAtlas colors each registered wall kind with its texture's
// average color.
func PaletteFromAtlas(a *texture.Atlas) map[maze.Cell]uint32 {
	p := make(map[maze.Cell]uint32)
	for _, k := range a.Kinds() {
		p[k] = a.Lookup(k).Average()
	}
	return p
}

// Render draws the minimap with its top-left corner at (ox, oy).
func (m *Minimap) Render(s *framebuffer.Surface, g *maze.Grid, pose raycast.Pose, ox, oy int) {
	m.draw(s, g, pose, ox, oy, m.opts.Scale)
}

// RenderOverview draws the minimap scaled to fill and centered on s.
func (m *Minimap) RenderOverview(s *framebuffer.Surface, g *maze.Grid, pose raycast.Pose) {
	scale := max(min(s.Width/g.Width, s.Height/g.Height), 1)
	ox := (s.Width - g.Width*scale) / 2
	oy := (s.Height - g.Height*scale) / 2
	m.draw(s, g, pose, ox, oy, scale)
}

func (m *Minimap) draw(s *framebuffer.Surface, g *maze.Grid, pose raycast.Pose, ox, oy, scale int) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c, _ := g.At(x, y)
			s.SetCurrentColor(m.color(c))
			s.FillRect(ox+x*scale, oy+y*scale, scale, scale)
		}
	}

	// World units per minimap pixel.
	k := float64(scale) / m.caster.CellSize
	m.fan = m.caster.Fan(m.fan[:0], pose, g, m.opts.Rays, m.opts.Step)
	for _, r := range m.fan {
		dir := raycast.Dir(r.Angle)
		for t := 0.0; t <= r.Hit.Distance; t += 1 / k {
			p := pose.Pos.Add(dir.Scale(t))
			s.Set(ox+int(p.X*k), oy+int(p.Y*k), m.opts.Ray)
		}
	}

	px, py := ox+int(pose.Pos.X*k), oy+int(pose.Pos.Y*k)
	s.SetCurrentColor(m.opts.Player)
	s.FillRect(px-1, py-1, 3, 3)
}

func (m *Minimap) color(c maze.Cell) uint32 {
	switch {
	case c.IsGoal():
		return m.opts.Goal
	case c.IsWall():
		if col, ok := m.opts.Palette[c]; ok {
			return col
		}
		return m.opts.Wall
	}
	return m.opts.Empty
}
