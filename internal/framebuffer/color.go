package framebuffer

// Colors are packed 24-bit RGB values: 0xRRGGBB. There is no alpha channel.

// RGB packs three 8-bit channels.
func RGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Split unpacks a color into its channels.
func Split(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Scale multiplies every channel by f, clamped to [0, 1].
func Scale(c uint32, f float64) uint32 {
	if f >= 1 {
		return c & 0xFFFFFF
	}
	if f <= 0 {
		return 0
	}
	r, g, b := Split(c)
	return RGB(uint8(float64(r)*f), uint8(float64(g)*f), uint8(float64(b)*f))
}
