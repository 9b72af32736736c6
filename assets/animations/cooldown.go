package animations

import "time"

// Cooldown is a one-shot countdown on a FrameTimer. It starts ready; Start
// arms it and it is ready again once its duration has elapsed.
type Cooldown struct {
	timer  FrameTimer
	active bool
}

func NewCooldown(d time.Duration) Cooldown {
	return Cooldown{timer: NewFrameTimer(d)}
}

func (c *Cooldown) Ready() bool {
	return !c.active
}

// Start arms the cooldown. It reports false while a countdown is running.
func (c *Cooldown) Start() bool {
	if c.active {
		return false
	}
	c.active = true
	c.timer.Reset()
	return true
}

// Tick advances a running countdown by dt and reports whether it finished
// on this call.
func (c *Cooldown) Tick(dt time.Duration) bool {
	if !c.active || !c.timer.Tick(dt) {
		return false
	}
	c.active = false
	c.timer.Reset()
	return true
}

// Progress is the elapsed fraction of a running countdown, 1 when ready.
func (c *Cooldown) Progress() float64 {
	d := c.timer.Duration()
	if !c.active || d <= 0 {
		return 1
	}
	p := float64(c.timer.Elapsed()) / float64(d)
	if p > 1 {
		return 1
	}
	return p
}

// SetDuration changes the length of the countdown. A running countdown keeps
// its elapsed time.
func (c *Cooldown) SetDuration(d time.Duration) {
	c.timer.SetDuration(d)
}

func (c *Cooldown) Duration() time.Duration {
	return c.timer.Duration()
}
