package animations

import (
	"testing"

	"github.com/automoto/quiverfall/config"
)

func TestStateModeZeroValue(t *testing.T) {
	var m StateMode
	if m != Continuous(config.Idle) {
		t.Errorf("zero StateMode = %s, want Continuous(idle)", m)
	}
}

func TestStateModeReplace(t *testing.T) {
	candidates := []StateMode{
		Continuous(config.Idle),
		Continuous(config.Walking),
		OneShot(config.Attack, true, ReturnTo(config.Idle)),
		OneShot(config.Death, false, Die()),
	}

	cases := []struct {
		name    string
		current StateMode
		allowed bool
	}{
		{"continuous", Continuous(config.Walking), true},
		{"interruptable_one_shot", OneShot(config.Attack, true, ReturnTo(config.Idle)), true},
		{"locked_one_shot", OneShot(config.Death, false, Die()), false},
		{"locked_return", OneShot(config.Attack, false, ReturnTo(config.Walking)), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, next := range candidates {
				got, ok := c.current.Replace(next)
				if ok != c.allowed {
					t.Fatalf("Replace(%s) ok = %t, want %t", next, ok, c.allowed)
				}
				want := c.current
				if c.allowed {
					want = next
				}
				if got != want {
					t.Errorf("Replace(%s) = %s, want %s", next, got, want)
				}
			}
		})
	}
}

func TestStateModeComplete(t *testing.T) {
	cases := []struct {
		name    string
		mode    StateMode
		want    StateMode
		wantDie bool
	}{
		{"continuous_loops", Continuous(config.Walking), Continuous(config.Walking), false},
		{"return_to", OneShot(config.Attack, true, ReturnTo(config.Idle)), Continuous(config.Idle), false},
		{"die", OneShot(config.Death, false, Die()), OneShot(config.Death, false, Die()), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, die := c.mode.Complete()
			if die != c.wantDie {
				t.Errorf("die = %t, want %t", die, c.wantDie)
			}
			if got != c.want {
				t.Errorf("next = %s, want %s", got, c.want)
			}
		})
	}
}

func TestStateModeOnEnd(t *testing.T) {
	if _, ok := Continuous(config.Idle).OnEnd(); ok {
		t.Errorf("continuous mode reported an end policy")
	}
	end, ok := OneShot(config.Death, false, Die()).OnEnd()
	if !ok || !end.IsDie() {
		t.Errorf("death one-shot end = %s, ok = %t", end, ok)
	}
	end, _ = OneShot(config.Attack, true, ReturnTo(config.Walking)).OnEnd()
	if end.IsDie() || end.State() != config.Walking {
		t.Errorf("attack one-shot end = %s", end)
	}
}
