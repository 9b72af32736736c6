package animations

import "time"

// FrameTimer is a repeating timer advanced by an explicit per-tick delta.
type FrameTimer struct {
	duration time.Duration
	elapsed  time.Duration
}

func NewFrameTimer(d time.Duration) FrameTimer {
	return FrameTimer{duration: d}
}

// Tick advances the timer by dt and reports whether an interval elapsed.
// A single call never reports more than one completion, however large dt is,
// and a non-positive duration completes on every call.
func (t *FrameTimer) Tick(dt time.Duration) bool {
	if t.duration <= 0 {
		t.elapsed = 0
		return true
	}
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed < t.duration {
		return false
	}
	t.elapsed %= t.duration
	return true
}

// SetDuration changes the interval, keeping the elapsed time.
func (t *FrameTimer) SetDuration(d time.Duration) {
	t.duration = d
}

func (t *FrameTimer) Duration() time.Duration {
	return t.duration
}

func (t *FrameTimer) Elapsed() time.Duration {
	return t.elapsed
}

func (t *FrameTimer) Reset() {
	t.elapsed = 0
}
