package assets

import (
	"github.com/lucasb-eyer/go-colorful"

	"maze-raycaster/internal/config"
	"maze-raycaster/internal/framebuffer"
	"maze-raycaster/internal/maze"
	"maze-raycaster/internal/texture"
)

// TextureSize is the edge length of every built-in texture.
const TextureSize = 64

// SpriteKey is the transparent color of the built-in enemy sprite. It
// matches the default transparent_key.
const SpriteKey = 0x980088

// DefaultAtlas returns an atlas with a distinct texture for every wall kind
// and the built-in enemy sprite.
func DefaultAtlas() *texture.Atlas {
	a := texture.NewAtlas(nil)
	a.Register(maze.CellWall, Bricks(hex("#9c4a3a"), hex("#d8d0c0")))
	a.Register(maze.CellCross, Stones(hex("#7a7f88")))
	a.Register(maze.CellHoriz, Planks(hex("#8a5a2b"), false))
	a.Register(maze.CellVert, Planks(hex("#6b8e4e"), true))
	a.RegisterSprite(config.EnemySprite, Enemy())
	return a
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func pack(c colorful.Color) uint32 {
	r, g, b := c.Clamped().RGB255()
	return framebuffer.RGB(r, g, b)
}

// jitter varies lightness per pixel with a cheap hash so flat surfaces show
// some grain.
func jitter(c colorful.Color, x, y int, amount float64) colorful.Color {
	h := uint32(x*73856093) ^ uint32(y*19349663)
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	f := float64(h%1000)/1000*2 - 1
	l, a, b := c.Lab()
	return colorful.Lab(l+f*amount, a, b)
}

func draw(fn func(x, y int) colorful.Color) *texture.Texture {
	px := make([]uint32, TextureSize*TextureSize)
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			px[y*TextureSize+x] = pack(fn(x, y))
		}
	}
	t, err := texture.New(TextureSize, TextureSize, px)
	if err != nil {
		panic(err)
	}
	return t
}

// Bricks draws running-bond brickwork.
func Bricks(brick, mortar colorful.Color) *texture.Texture {
	const bw, bh = 16, 8
	return draw(func(x, y int) colorful.Color {
		row := y / bh
		ox := 0
		if row%2 == 1 {
			ox = bw / 2
		}
		if y%bh == 0 || (x+ox)%bw == 0 {
			return jitter(mortar, x, y, 0.03)
		}
		return jitter(brick, x, y, 0.06)
	})
}

// Stones draws a grid of square blocks lit from the top left.
func Stones(base colorful.Color) *texture.Texture {
	const size = 16
	light := base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.3)
	dark := base.BlendLab(colorful.Color{}, 0.4)
	return draw(func(x, y int) colorful.Color {
		bx, by := x%size, y%size
		switch {
		case bx == 0 || by == 0:
			return light
		case bx == size-1 || by == size-1:
			return dark
		}
		return jitter(base, x, y, 0.05)
	})
}

// Planks draws wooden boards, running vertically when vertical is set.
func Planks(wood colorful.Color, vertical bool) *texture.Texture {
	const pw = 8
	seam := wood.BlendLab(colorful.Color{}, 0.5)
	return draw(func(x, y int) colorful.Color {
		across, along := y, x
		if vertical {
			across, along = x, y
		}
		if across%pw == 0 {
			return seam
		}
		grain := jitter(wood, across/pw, along/3, 0.08)
		return jitter(grain, x, y, 0.02)
	})
}

// Enemy draws a round creature on the transparent key color.
func Enemy() *texture.Texture {
	body := hex("#c03030")
	eye := colorful.Color{R: 1, G: 1, B: 1}
	pupil := colorful.Color{}
	const c = TextureSize / 2
	px := make([]uint32, TextureSize*TextureSize)
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			dx, dy := x-c, y-c
			col := uint32(SpriteKey)
			switch {
			case inCircle(x-(c-10), y-(c-6), 4):
				col = pack(pupil)
			case inCircle(x-(c+10), y-(c-6), 4):
				col = pack(pupil)
			case inCircle(x-(c-10), y-(c-6), 8), inCircle(x-(c+10), y-(c-6), 8):
				col = pack(eye)
			case dx*dx+dy*dy <= (c-2)*(c-2):
				col = pack(jitter(body, x, y, 0.04))
			}
			px[y*TextureSize+x] = col
		}
	}
	t, err := texture.New(TextureSize, TextureSize, px)
	if err != nil {
		panic(err)
	}
	return t
}

func inCircle(dx, dy, r int) bool { return dx*dx+dy*dy <= r*r }
