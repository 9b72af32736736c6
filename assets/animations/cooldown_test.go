package animations

import (
	"testing"
	"time"
)

func TestCooldown(t *testing.T) {
	c := NewCooldown(100 * time.Millisecond)
	if !c.Ready() || c.Progress() != 1 {
		t.Fatalf("new cooldown not ready")
	}
	if c.Tick(time.Second) {
		t.Fatalf("idle cooldown reported a finish")
	}

	if !c.Start() {
		t.Fatalf("Start on a ready cooldown failed")
	}
	if c.Start() {
		t.Fatalf("Start while running succeeded")
	}

	steps := []struct {
		dt       time.Duration
		finished bool
		progress float64
	}{
		{25 * time.Millisecond, false, 0.25},
		{50 * time.Millisecond, false, 0.75},
		{25 * time.Millisecond, true, 1},
		{time.Second, false, 1},
	}
	for i, s := range steps {
		if got := c.Tick(s.dt); got != s.finished {
			t.Errorf("step %d: finished = %t, want %t", i, got, s.finished)
		}
		if got := c.Progress(); got != s.progress {
			t.Errorf("step %d: progress = %v, want %v", i, got, s.progress)
		}
	}
	if !c.Ready() {
		t.Errorf("cooldown not ready after its duration")
	}
}

func TestCooldownShortenedWhileRunning(t *testing.T) {
	c := NewCooldown(time.Second)
	c.Start()
	c.Tick(600 * time.Millisecond)
	c.SetDuration(500 * time.Millisecond)

	if !c.Tick(0) {
		t.Errorf("shortened cooldown did not finish on the next tick")
	}
}
