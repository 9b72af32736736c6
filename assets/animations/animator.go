package animations

import (
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/automoto/quiverfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

var (
	// ErrMissingTexture means no texture was supplied for a state that needs one.
	ErrMissingTexture = errors.New("missing texture")
	// ErrMissingLayout means the descriptor has no sheet layout for a state.
	ErrMissingLayout = errors.New("missing atlas layout")
)

type stateBinding struct {
	texture  *ebiten.Image
	layout   *AtlasLayout
	frames   FrameIndices
	duration time.Duration
}

// TickResult reports what a single Animator.Tick did.
type TickResult struct {
	Advanced bool // the frame timer elapsed and the cursor moved
	Wrapped  bool // the cursor passed its last frame
	Died     bool // a Die one-shot finished
}

// Animator drives the directional animation of one entity. Mode and
// Direction are inputs; the sprite is rebound on the next Sync whenever
// either differs from what was last rendered.
type Animator struct {
	Mode      StateMode
	Direction Direction
	Cursor    Cursor

	timer         FrameTimer
	lastState     config.StateID
	lastDirection Direction
	states        map[config.StateID]*stateBinding
	paused        bool
}

// NewAnimator builds the per-state bindings from def and textures and binds
// the initial state. It fails if initial has no texture or no layout.
func NewAnimator(
	textures map[config.StateID]*ebiten.Image,
	def config.DirectionalAnimationDef,
	initial config.StateID,
	tile image.Point,
) (*Animator, Sprite, error) {
	initDef, ok := def[initial]
	if !ok || initDef.RowLength <= 0 {
		return nil, Sprite{}, fmt.Errorf("%w: state %s", ErrMissingLayout, initial)
	}
	if textures[initial] == nil {
		return nil, Sprite{}, fmt.Errorf("%w: state %s", ErrMissingTexture, initial)
	}

	a := &Animator{
		Mode:          Continuous(initial),
		Direction:     DefaultDirection,
		lastState:     initial,
		lastDirection: DefaultDirection,
		states:        make(map[config.StateID]*stateBinding, len(def)),
	}
	for state, sd := range def {
		a.states[state] = &stateBinding{
			texture:  textures[state],
			layout:   NewAtlasLayout(tile, sd.RowLength),
			frames:   FrameIndicesOfRows(sd.RowLength),
			duration: sd.FrameDuration,
		}
	}

	b := a.states[initial]
	frames, _ := b.frames.Frames(a.Direction)
	a.Cursor.Bind(frames)
	a.timer = NewFrameTimer(b.duration)

	sprite := Sprite{Image: b.texture, Layout: b.layout, Index: a.Cursor.Index()}
	return a, sprite, nil
}

// SetMode installs m unless the current mode is a one-shot that cannot be
// interrupted.
func (a *Animator) SetMode(m StateMode) bool {
	next, ok := a.Mode.Replace(m)
	a.Mode = next
	return ok
}

// Force installs m regardless of the interruption rule. Only entering the
// death sequence uses it.
func (a *Animator) Force(m StateMode) {
	a.Mode = m
}

// Face updates Direction from velocity v. It reports whether it changed.
func (a *Animator) Face(v math.Vec2) bool {
	next := a.Direction.Follow(v)
	if next == a.Direction {
		return false
	}
	a.Direction = next
	return true
}

// ApplySpeed switches between Continuous(Idle) and Continuous(Walking)
// around threshold, if the current mode permits replacement.
func (a *Animator) ApplySpeed(speedSq, threshold float64) bool {
	target := Continuous(config.Walking)
	if speedSq < threshold {
		target = Continuous(config.Idle)
	}
	if a.Mode == target || !a.Mode.CanBeReplaced() {
		return false
	}
	a.Mode = target
	return true
}

// ApplyVelocity is ApplySpeed for a velocity vector.
func (a *Animator) ApplyVelocity(v math.Vec2, threshold float64) bool {
	return a.ApplySpeed(speedSquared(v), threshold)
}

// Sync rebinds sprite when the mode's state or the direction moved since the
// last call. The state's texture and timer are rebound before the frame list,
// and the frame list always comes from the current state's table.
func (a *Animator) Sync(sprite *Sprite) bool {
	state := a.Mode.State()
	stateChanged := state != a.lastState
	if !stateChanged && a.Direction == a.lastDirection {
		return false
	}

	b := a.states[state]
	if b != nil && b.texture == nil {
		// The grid belongs to a sheet that is not there; keep the bound
		// image and layout together and show a single frame.
		if stateChanged {
			log.Printf("Warning: no texture registered for state %s", state)
		}
		b = nil
	}
	if stateChanged {
		if b != nil {
			sprite.Image = b.texture
			sprite.Layout = b.layout
			a.timer.SetDuration(b.duration)
		} else {
			if _, ok := a.states[state]; !ok {
				log.Printf("Warning: no animation registered for state %s", state)
			}
			a.timer.SetDuration(0)
		}
		a.lastState = state
	}

	var frames []int
	if b != nil {
		var ok bool
		if frames, ok = b.frames.Frames(a.Direction); !ok {
			log.Printf("Warning: state %s has no frames facing %s", state, a.Direction)
		}
	}
	a.Cursor.Bind(frames)
	a.lastDirection = a.Direction

	a.timer.Reset()
	sprite.Index = a.Cursor.Index()
	return true
}

// Tick advances playback by dt. At most one frame is advanced per call.
// A wrap completes the current mode; a one-shot returning to a state is
// rebound immediately.
func (a *Animator) Tick(dt time.Duration, sprite *Sprite) TickResult {
	var res TickResult
	if a.paused || !a.timer.Tick(dt) {
		return res
	}

	res.Advanced = true
	res.Wrapped = a.Cursor.Advance()
	if res.Wrapped {
		next, die := a.Mode.Complete()
		res.Died = die
		if next != a.Mode {
			a.Mode = next
			if a.Sync(sprite) {
				return res
			}
		}
	}
	sprite.Index = a.Cursor.Index()
	return res
}

// Pause freezes playback until Resume.
func (a *Animator) Pause() {
	a.paused = true
}

func (a *Animator) Resume() {
	a.paused = false
}

func (a *Animator) IsPlaying() bool {
	return !a.paused
}

// LastState is the state the sprite is currently bound to.
func (a *Animator) LastState() config.StateID {
	return a.lastState
}

// FrameDuration is the interval of the bound state's frame timer.
func (a *Animator) FrameDuration() time.Duration {
	return a.timer.Duration()
}

// HasState reports whether state has a layout registered.
func (a *Animator) HasState(state config.StateID) bool {
	_, ok := a.states[state]
	return ok
}
