package term

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
)

// Status is the per-frame information shown on the HUD's first line.
type Status struct {
	Mode    string
	X, Y    float64
	Angle   float64 // radians
	FPS     float64
	Sprites int
}

func (s Status) String() string {
	return fmt.Sprintf("%s  pos %.0f,%.0f  facing %3.0f°  sprites %d  %.0f fps",
		s.Mode, s.X, s.Y, s.Angle*180/math.Pi, s.Sprites, s.FPS)
}

// Fit truncates text to at most width display columns, marking the cut with
// an ellipsis.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

// DrawHUD renders the separator, the status line and the latest message in
// the rows below the viewport.
func (p *Presenter) DrawHUD(st Status, messages []string) {
	w, h := p.screen.Size()
	y := h - HUDRows
	if y < 0 {
		return
	}
	p.fillRow(y, '─', styleRule)
	p.fillRow(y+1, ' ', styleHUD)
	p.fillRow(y+2, ' ', styleMessage)
	p.drawText(0, y+1, Fit(st.String(), w), styleHUD)
	if n := len(messages); n > 0 {
		p.drawText(0, y+2, Fit(messages[n-1], w), styleMessage)
	}
}

// DrawBanner clears the screen and centers lines on it, first line in the
// banner style. Used for the win screen.
func (p *Presenter) DrawBanner(lines []string) {
	p.screen.Clear()
	w, h := p.screen.Size()
	top := (h - len(lines)) / 2
	for i, line := range lines {
		line = Fit(line, w)
		x := max((w-runewidth.StringWidth(line))/2, 0)
		style := styleHUD
		if i == 0 {
			style = styleBanner
		}
		p.drawText(x, top+i, line, style)
	}
}
