package ssh

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPTY is returned for sessions opened without a terminal.
var ErrNoPTY = errors.New("session has no PTY")

// DefaultTerm is used when the client sends no TERM or one not allowed.
const DefaultTerm = "xterm-256color"

// allowedTerms lists the TERM values a client may select. Anything else
// falls back to DefaultTerm so a client cannot point terminfo lookups at
// arbitrary names.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-truecolor":       true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"rxvt-unicode-256color": true,
	"linux":                 true,
	"vt100":                 true,
}

// Term picks the terminal type from a session environment.
func Term(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			if allowedTerms[v] {
				return v
			}
			break
		}
	}
	return DefaultTerm
}

// termMu serializes the TERM environment swap that tcell's terminfo lookup
// depends on.
var termMu sync.Mutex

// NewScreen builds and initializes a true-color tcell screen for s.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := pty.Term
	if !allowedTerms[term] {
		term = Term(s.Environ())
	}
	tty := NewSessionTty(s, pty, winCh)

	termMu.Lock()
	prevTerm, hadTerm := os.LookupEnv("TERM")
	prevColor, hadColor := os.LookupEnv("COLORTERM")
	_ = os.Setenv("TERM", term)
	_ = os.Setenv("COLORTERM", "truecolor")
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	restoreEnv("TERM", prevTerm, hadTerm)
	restoreEnv("COLORTERM", prevColor, hadColor)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal %s: %w", term, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return FiniOnDone(s.Context(), screen), nil
}

// closingScreen is a screen that may be finalized from two goroutines.
type closingScreen struct {
	tcell.Screen
	once sync.Once
}

func (s *closingScreen) Fini() { s.once.Do(s.Screen.Fini) }

// FiniOnDone finalizes screen when ctx ends, which makes a blocked PollEvent
// return nil. The returned screen tolerates a second Fini from its owner.
func FiniOnDone(ctx context.Context, screen tcell.Screen) tcell.Screen {
	cs := &closingScreen{Screen: screen}
	go func() {
		<-ctx.Done()
		cs.Fini()
	}()
	return cs
}

func restoreEnv(key, val string, had bool) {
	if had {
		_ = os.Setenv(key, val)
		return
	}
	_ = os.Unsetenv(key)
}
