// Package ssh adapts gliderlabs SSH sessions into tcell screens so every
// connection can run its own game.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty over one SSH session's channel.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
	watch    sync.Once
}

// NewSessionTty wraps s. pty holds the initial window size; winCh delivers
// later resizes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

// Read returns keyboard input from the client.
func (t *SessionTty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends rendered output to the client.
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the session channel.
func (t *SessionTty) Close() error { return t.session.Close() }

// Start, Stop and Drain are no-ops: the channel is opened and flushed by the
// SSH server.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the latest client window size in cells.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers the callback tcell uses to learn about resizes.
// Later registrations replace earlier ones; the window channel is watched
// by a single goroutine for the session's lifetime.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()
	t.watch.Do(func() { go t.watchWindow() })
}

func (t *SessionTty) watchWindow() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
