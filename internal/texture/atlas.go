package texture

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"maze-raycaster/internal/maze"

	"golang.org/x/sync/errgroup"
)

// Atlas maps cell codes to wall textures and names to sprite textures. It is
// built once before the render loop and read-only afterwards.
type Atlas struct {
	walls    map[maze.Cell]*Texture
	sprites  map[string]*Texture
	fallback *Texture
}

// NewAtlas creates an empty atlas. Lookups of unregistered kinds return
// fallback; a nil fallback becomes a 1×1 Sentinel texture.
func NewAtlas(fallback *Texture) *Atlas {
	if fallback == nil {
		fallback = Solid(1, 1, Sentinel)
	}
	return &Atlas{
		walls:    make(map[maze.Cell]*Texture),
		sprites:  make(map[string]*Texture),
		fallback: fallback,
	}
}

// Register binds a wall kind to a texture, replacing any previous binding.
func (a *Atlas) Register(c maze.Cell, t *Texture) { a.walls[c] = t }

// RegisterSprite binds a sprite name to a texture.
func (a *Atlas) RegisterSprite(name string, t *Texture) { a.sprites[name] = t }

// Lookup returns the texture for c, or the fallback.
func (a *Atlas) Lookup(c maze.Cell) *Texture {
	if t, ok := a.walls[c]; ok {
		return t
	}
	return a.fallback
}

// Sprite returns the sprite texture registered under name.
func (a *Atlas) Sprite(name string) (*Texture, bool) {
	t, ok := a.sprites[name]
	return t, ok
}

// Kinds returns the registered wall kinds in ascending order.
func (a *Atlas) Kinds() []maze.Cell {
	return slices.Sorted(maps.Keys(a.walls))
}

// Manifest lists image files to load into an atlas.
type Manifest struct {
	Walls   map[maze.Cell]string
	Sprites map[string]string
}

// LoadInto decodes every manifest entry concurrently and registers the
// results in a. The first failure cancels the remaining loads and nothing is
// registered.
func LoadInto(ctx context.Context, a *Atlas, m Manifest) error {
	type job struct {
		cell maze.Cell
		name string
		path string
	}
	var jobs []job
	for c, p := range m.Walls {
		jobs = append(jobs, job{cell: c, path: p})
	}
	for n, p := range m.Sprites {
		jobs = append(jobs, job{name: n, path: p})
	}

	loaded := make([]*Texture, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := Load(j.path)
			if err != nil {
				return err
			}
			loaded[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load atlas: %w", err)
	}

	for i, j := range jobs {
		if j.name != "" {
			a.RegisterSprite(j.name, loaded[i])
		} else {
			a.Register(j.cell, loaded[i])
		}
	}
	return nil
}

// Fallback returns the texture used for unregistered lookups.
func (a *Atlas) Fallback() *Texture { return a.fallback }
