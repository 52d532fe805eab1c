package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"maze-raycaster/internal/framebuffer"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(w, h)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	return ss
}

func cellColors(t *testing.T, ss tcell.SimulationScreen, x, y int) (rune, tcell.Color, tcell.Color) {
	t.Helper()
	ch, _, style, _ := ss.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return ch, fg, bg
}

// stripes returns a surface whose pixel rows are red, green, blue and white.
func stripes(w int) *framebuffer.Surface {
	s := framebuffer.New(w, 4)
	for y, c := range []uint32{0xFF0000, 0x00FF00, 0x0000FF, 0xFFFFFF} {
		for x := 0; x < w; x++ {
			s.Set(x, y, c)
		}
	}
	return s
}

func TestBlitHalfBlocks(t *testing.T) {
	ss := newScreen(t, 4, 2+HUDRows)
	p := NewPresenter(ss)
	p.Blit(stripes(4))

	tests := []struct {
		x, y   int
		fg, bg uint32
	}{
		{0, 0, 0xFF0000, 0x00FF00},
		{3, 0, 0xFF0000, 0x00FF00},
		{0, 1, 0x0000FF, 0xFFFFFF},
		{2, 1, 0x0000FF, 0xFFFFFF},
	}
	for _, tc := range tests {
		ch, fg, bg := cellColors(t, ss, tc.x, tc.y)
		if ch != UpperHalf {
			t.Errorf("(%d,%d) rune %q, want %q", tc.x, tc.y, ch, UpperHalf)
		}
		if fg != Color(tc.fg) || bg != Color(tc.bg) {
			t.Errorf("(%d,%d) fg/bg = %v/%v, want %06x/%06x", tc.x, tc.y, fg, bg, tc.fg, tc.bg)
		}
	}
}

func TestBlitScalesNearestNeighbour(t *testing.T) {
	// An 8x1 cell viewport samples the 2x4 surface at rows 0 and 2.
	ss := newScreen(t, 8, 1+HUDRows)
	p := NewPresenter(ss)
	p.Blit(stripes(2))
	for x := 0; x < 8; x++ {
		_, fg, bg := cellColors(t, ss, x, 0)
		if fg != Color(0xFF0000) || bg != Color(0x0000FF) {
			t.Errorf("column %d fg/bg = %v/%v", x, fg, bg)
		}
	}
	if ch, _, _ := cellColors(t, ss, 0, 1); ch == UpperHalf {
		t.Error("blit wrote into the HUD rows")
	}
}

func TestDrawHUD(t *testing.T) {
	ss := newScreen(t, 20, 6)
	p := NewPresenter(ss)
	p.DrawHUD(Status{Mode: "walls+sprites+minimap", X: 150, Y: 250, FPS: 30}, []string{"old", "you found the exit"})

	if ch, _, _ := cellColors(t, ss, 0, 3); ch != '─' {
		t.Errorf("separator rune %q", ch)
	}
	if got := rowText(ss, 4, 20); !strings.HasPrefix(got, "walls+sprites+min") {
		t.Errorf("status row %q", got)
	}
	if got := strings.TrimRight(rowText(ss, 5, 20), " "); !strings.HasPrefix(got, "you found the exit") {
		t.Errorf("message row %q", got)
	}
}

func TestDrawBannerCenters(t *testing.T) {
	ss := newScreen(t, 20, 5)
	p := NewPresenter(ss)
	p.DrawBanner([]string{"WIN", "r restart"})
	// Two lines on five rows start at row 1; "WIN" is centered at column 8.
	if got := rowText(ss, 1, 20); got[8:11] != "WIN" {
		t.Errorf("banner row %q", got)
	}
	if got := rowText(ss, 2, 20); !strings.Contains(got, "r restart") {
		t.Errorf("second row %q", got)
	}
}

func TestFitByDisplayWidth(t *testing.T) {
	tests := []struct {
		in    string
		width int
	}{
		{"short", 10},
		{"a much longer status line", 10},
		{"日本語のテキストです", 7},
		{"anything", 0},
	}
	for _, tc := range tests {
		got := Fit(tc.in, tc.width)
		if w := runewidth.StringWidth(got); w > tc.width {
			t.Errorf("Fit(%q, %d) = %q is %d columns wide", tc.in, tc.width, got, w)
		}
		if runewidth.StringWidth(tc.in) <= tc.width && got != tc.in {
			t.Errorf("Fit(%q, %d) = %q, want unchanged", tc.in, tc.width, got)
		}
	}
}

func rowText(ss tcell.SimulationScreen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := ss.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}
