package game

import "time"

// fpsWindow is the number of frames FPS averages over.
const fpsWindow = 16

// Timer measures the time between presented frames.
type Timer struct {
	now  func() time.Time
	last time.Time

	deltas [fpsWindow]time.Duration
	next   int
	count  int
	sum    time.Duration
}

func newTimer(now func() time.Time) *Timer {
	return &Timer{now: now, last: now()}
}

// Tick records a presented frame.
func (t *Timer) Tick() {
	n := t.now()
	d := n.Sub(t.last)
	t.last = n

	if t.count == fpsWindow {
		t.sum -= t.deltas[t.next]
	} else {
		t.count++
	}
	t.deltas[t.next] = d
	t.sum += d
	t.next = (t.next + 1) % fpsWindow
}

// FPS is the frame rate averaged over the last fpsWindow frames, or 0 before
// the first measurable frame.
func (t *Timer) FPS() float64 {
	if t.count == 0 || t.sum <= 0 {
		return 0
	}
	return float64(t.count) / t.sum.Seconds()
}
