package animations

import (
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		v      math.Vec2
		want   Direction
		wantOk bool
	}{
		{"still", math.Vec2{}, DefaultDirection, false},
		{"below_epsilon", math.Vec2{X: 0.05, Y: -0.05}, DefaultDirection, false},
		{"flat_right", math.Vec2{X: 1, Y: 0}, DownRight, true},
		{"right_y_0.4", math.Vec2{X: 1, Y: 0.4}, DownRight, true},
		{"right_y_0.5", math.Vec2{X: 1, Y: 0.5}, UpRight, true},
		{"left_y_0.4", math.Vec2{X: -1, Y: 0.4}, DownLeft, true},
		{"left_y_0.5", math.Vec2{X: -1, Y: 0.5}, UpLeft, true},
		{"straight_up", math.Vec2{X: 0, Y: 3}, UpRight, true},
		{"straight_down", math.Vec2{X: 0, Y: -3}, DownRight, true},
		{"down_left", math.Vec2{X: -2, Y: -2}, DownLeft, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Classify(c.v)
			if ok != c.wantOk {
				t.Fatalf("Classify(%v) ok = %t, want %t", c.v, ok, c.wantOk)
			}
			if got != c.want {
				t.Errorf("Classify(%v) = %s, want %s", c.v, got, c.want)
			}
		})
	}
}

func TestClassifyBiasAcrossSpeeds(t *testing.T) {
	for _, x := range []float64{0, 0.3, 1, 10, 1000} {
		if d, _ := Classify(math.Vec2{X: x, Y: 0.4}); d != DownRight {
			t.Errorf("x=%v y=0.4: got %s, want %s", x, d, DownRight)
		}
		if d, _ := Classify(math.Vec2{X: x, Y: 0.5}); d != UpRight {
			t.Errorf("x=%v y=0.5: got %s, want %s", x, d, UpRight)
		}
	}
}

func TestFollowKeepsDirectionAtLowSpeed(t *testing.T) {
	slow := []math.Vec2{
		{},
		{X: -0.05, Y: 0},
		{X: 0.07, Y: 0.07},
		{X: -0.01, Y: 0.09},
	}
	for _, start := range []Direction{UpLeft, UpRight, DownLeft, DownRight} {
		for _, v := range slow {
			if got := start.Follow(v); got != start {
				t.Errorf("%s.Follow(%v) = %s, want unchanged", start, v, got)
			}
		}
	}
}

func TestFollowChangesDirection(t *testing.T) {
	d := DownRight
	d = d.Follow(math.Vec2{X: -5, Y: 0})
	if d != DownLeft {
		t.Fatalf("got %s, want %s", d, DownLeft)
	}
	d = d.Follow(math.Vec2{X: -5, Y: 5})
	if d != UpLeft {
		t.Fatalf("got %s, want %s", d, UpLeft)
	}
	d = d.Follow(math.Vec2{})
	if d != UpLeft {
		t.Fatalf("stopping changed direction to %s", d)
	}
}
