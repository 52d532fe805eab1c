package render

import (
	"math"
	"testing"

	"maze-raycaster/internal/framebuffer"
	"maze-raycaster/internal/raycast"
	"maze-raycaster/internal/texture"
)

func compositor() *SpriteCompositor {
	return NewSpriteCompositor(SpriteOptions{
		Scale:       5,
		MinDistance: 1,
		BehindLimit: math.Pi / 2,
		Key:         key,
	})
}

func camera() raycast.Pose {
	return raycast.Pose{FOV: math.Pi / 3}
}

func TestSpritesOrderIndependent(t *testing.T) {
	near := raycast.Vec{X: 10}
	far := raycast.Vec{X: 20}
	redTex := texture.Solid(4, 4, red)
	blueTex := texture.Solid(4, 4, blue)

	orders := []struct {
		name  string
		first bool // draw the far sprite first
	}{
		{"far then near", true},
		{"near then far", false},
	}
	for _, o := range orders {
		t.Run(o.name, func(t *testing.T) {
			s := framebuffer.New(40, 40)
			depth := NewDepthBuffer(s.Width)
			c := compositor()
			if o.first {
				c.RenderSprite(s, camera(), far, depth, blueTex, key)
				c.RenderSprite(s, camera(), near, depth, redTex, key)
			} else {
				c.RenderSprite(s, camera(), near, depth, redTex, key)
				c.RenderSprite(s, camera(), far, depth, blueTex, key)
			}
			if n := countColor(s, blue); n != 0 {
				t.Errorf("%d pixels of the far sprite visible", n)
			}
			if got := s.At(20, 20); got != red {
				t.Errorf("center = %06x, want near sprite", got)
			}
			if depth[20] != 10 {
				t.Errorf("center depth = %v, want 10", depth[20])
			}
		})
	}
}

func TestSpriteDepthTestIsStrict(t *testing.T) {
	s := framebuffer.New(40, 40)
	depth := NewDepthBuffer(s.Width)
	for i := range depth {
		depth[i] = 10
	}
	if compositor().RenderSprite(s, camera(), raycast.Vec{X: 10}, depth, texture.Solid(2, 2, red), key) {
		t.Error("sprite at the recorded depth must not draw")
	}
	if n := countColor(s, red); n != 0 {
		t.Errorf("%d pixels drawn at equal depth", n)
	}

	if !compositor().RenderSprite(s, camera(), raycast.Vec{X: 9}, depth, texture.Solid(2, 2, red), key) {
		t.Error("nearer sprite should draw")
	}
	for x, d := range depth {
		if d != 10 && d != 9 {
			t.Errorf("column %d depth %v", x, d)
		}
		if d == 9 && s.At(x, 20) != red {
			t.Errorf("column %d recorded sprite depth without drawing", x)
		}
	}
}

func TestSpriteOccludedByWallDepth(t *testing.T) {
	s := framebuffer.New(40, 40)
	depth := NewDepthBuffer(s.Width)
	for i := range depth {
		depth[i] = 15
	}
	if compositor().RenderSprite(s, camera(), raycast.Vec{X: 20}, depth, texture.Solid(2, 2, red), key) {
		t.Error("sprite behind the wall should not draw")
	}
}

func TestSpriteRejections(t *testing.T) {
	cases := []struct {
		name string
		pos  raycast.Vec
	}{
		{"behind camera", raycast.Vec{X: -10}},
		{"too close", raycast.Vec{X: 0.5}},
		{"same position", raycast.Vec{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := framebuffer.New(40, 40)
			depth := NewDepthBuffer(s.Width)
			if compositor().RenderSprite(s, camera(), tc.pos, depth, texture.Solid(2, 2, red), key) {
				t.Error("sprite should be skipped")
			}
			if !math.IsInf(depth[20], 1) {
				t.Error("skipped sprite must not touch the depth buffer")
			}
		})
	}
}

func TestSpriteTransparentKey(t *testing.T) {
	tex, err := texture.New(2, 1, []uint32{key, green})
	if err != nil {
		t.Fatal(err)
	}
	s := framebuffer.New(40, 40)
	s.SetBackground(0x111111)
	s.Clear()
	depth := NewDepthBuffer(s.Width)
	compositor().RenderSprite(s, camera(), raycast.Vec{X: 10}, depth, tex, key)

	if n := countColor(s, key); n != 0 {
		t.Errorf("%d key-colored pixels written", n)
	}
	if s.At(15, 20) != 0x111111 {
		t.Errorf("left half should stay background, got %06x", s.At(15, 20))
	}
	if s.At(25, 20) != green {
		t.Errorf("right half should be green, got %06x", s.At(25, 20))
	}
}

func TestSpriteHorizontalPlacement(t *testing.T) {
	// 15 degrees right of the heading at distance 20 gives a 10px sprite.
	// With height/fov spread the center is 30 + (pi/12)*(40/(pi/3)) = 40;
	// with width/fov it is 30 + (pi/12)*(60/(pi/3)) = 45.
	a := math.Pi / 12
	pos := raycast.Vec{X: 20 * math.Cos(a), Y: 20 * math.Sin(a)}

	tests := []struct {
		name    string
		byWidth bool
		inside  int
		outside int
	}{
		{"height spread", false, 40, 45},
		{"width spread", true, 45, 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := compositor()
			c.opts.SpreadByWidth = tt.byWidth
			s := framebuffer.New(60, 40)
			depth := NewDepthBuffer(s.Width)
			c.RenderSprite(s, camera(), pos, depth, texture.Solid(1, 1, red), key)
			if s.At(tt.inside, 20) != red {
				t.Errorf("column %d not covered", tt.inside)
			}
			if s.At(tt.outside, 20) == red {
				t.Errorf("column %d covered", tt.outside)
			}
			if s.At(30, 20) == red {
				t.Error("sprite drawn at screen center")
			}
		})
	}
}

func TestSpritePlacementOnWideSurface(t *testing.T) {
	// 320x200 at a 60 degree FOV: 15 degrees right centers at 160 + 50 = 210.
	a := math.Pi / 12
	pos := raycast.Vec{X: 100 * math.Cos(a), Y: 100 * math.Sin(a)}
	s := framebuffer.New(320, 200)
	depth := NewDepthBuffer(s.Width)
	compositor().RenderSprite(s, camera(), pos, depth, texture.Solid(1, 1, red), key)
	first, last := -1, -1
	for x := 0; x < s.Width; x++ {
		if s.At(x, 100) == red {
			if first < 0 {
				first = x
			}
			last = x
		}
	}
	if first < 0 {
		t.Fatal("sprite not drawn")
	}
	if center := float64(first+last+1) / 2; math.Abs(center-210) > 1 {
		t.Errorf("sprite center = %v, want 210", center)
	}
}

func TestRenderSpritesUsesAtlas(t *testing.T) {
	a := texture.NewAtlas(texture.Solid(1, 1, blue))
	a.RegisterSprite("enemy", texture.Solid(1, 1, red))

	s := framebuffer.New(40, 40)
	depth := NewDepthBuffer(s.Width)
	n := compositor().RenderSprites(s, camera(), []Entity{
		{Pos: raycast.Vec{X: 10}, Sprite: "enemy"},
		{Pos: raycast.Vec{X: -10}, Sprite: "enemy"},
	}, depth, a)
	if n != 1 {
		t.Errorf("drawn = %d, want 1 (second sprite is behind the camera)", n)
	}
	if s.At(20, 20) != red {
		t.Error("registered sprite texture not used")
	}

	s = framebuffer.New(40, 40)
	depth = NewDepthBuffer(s.Width)
	compositor().RenderSprites(s, camera(), []Entity{{Pos: raycast.Vec{X: 10}, Sprite: "unknown"}}, depth, a)
	if s.At(20, 20) != blue {
		t.Error("unknown sprite should use the atlas fallback")
	}
}
