package term

import (
	"github.com/gdamore/tcell/v2"

	"maze-raycaster/internal/framebuffer"
)

// UpperHalf is drawn in every viewport cell: the foreground paints the upper
// pixel and the background the lower one.
const UpperHalf = '▀'

// Color converts a packed surface color to a true-color terminal color.
func Color(c uint32) tcell.Color {
	r, g, b := framebuffer.Split(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// HUD styles.
var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorLightYellow).Background(tcell.ColorBlack)
	styleRule    = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorGold).Background(tcell.ColorBlack).Bold(true)
)
