package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"maze-raycaster/internal/framebuffer"

	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
)

// Sentinel is returned for lookups outside a texture.
const Sentinel uint32 = 0xFF00FF

var (
	ErrMissingAsset = errors.New("missing texture asset")
	ErrDecode       = errors.New("decode texture")
	ErrSize         = errors.New("texture size mismatch")
)

// Texture is an immutable decoded image with bounds-checked lookup.
type Texture struct {
	width, height int
	pixels        []uint32
}

// New wraps row-major packed pixels. len(pixels) must equal width*height.
func New(width, height int, pixels []uint32) (*Texture, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %dx%d with %d pixels", ErrSize, width, height, len(pixels))
	}
	return &Texture{width: width, height: height, pixels: append([]uint32(nil), pixels...)}, nil
}

// FromImage converts img to packed RGB, discarding alpha.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	t := &Texture{width: b.Dx(), height: b.Dy(), pixels: make([]uint32, b.Dx()*b.Dy())}
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			t.pixels[y*t.width+x] = framebuffer.RGB(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
	return t
}

// Decode reads any registered image format (PNG, JPEG, GIF, BMP).
func Decode(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}
	return FromImage(img), nil
}

// Load opens and decodes the image at path.
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingAsset, path, err)
	}
	defer f.Close()
	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Solid returns a w×h texture of a single color.
func Solid(w, h int, c uint32) *Texture {
	t := &Texture{width: w, height: h, pixels: make([]uint32, w*h)}
	for i := range t.pixels {
		t.pixels[i] = c
	}
	return t
}

func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

// At returns the color at (x, y), or Sentinel when out of range.
func (t *Texture) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return Sentinel
	}
	return t.pixels[y*t.width+x]
}

// Average returns the mean color, averaged in linear RGB so dark and bright
// texels blend the way they look.
func (t *Texture) Average() uint32 {
	var lr, lg, lb float64
	for _, p := range t.pixels {
		r, g, b := framebuffer.Split(p)
		c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		cr, cg, cb := c.LinearRgb()
		lr += cr
		lg += cg
		lb += cb
	}
	n := float64(len(t.pixels))
	r, g, b := colorful.LinearRgb(lr/n, lg/n, lb/n).Clamped().RGB255()
	return framebuffer.RGB(r, g, b)
}
