package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDescriptor is returned when an animation descriptor cannot drive playback.
var ErrInvalidDescriptor = errors.New("invalid animation descriptor")

// StateAnimationDef describes one sprite sheet: four directional rows of
// RowLength frames each, shown for FrameDuration apiece.
type StateAnimationDef struct {
	RowLength     int
	FrameDuration time.Duration
}

// DirectionalAnimationDef maps each state a character can be in to its sheet layout.
type DirectionalAnimationDef map[StateID]StateAnimationDef

// DirectionalAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var DirectionalAnimations = map[string]DirectionalAnimationDef{
	"player": {
		Idle:    {RowLength: 4, FrameDuration: 150 * time.Millisecond},
		Walking: {RowLength: 6, FrameDuration: 100 * time.Millisecond},
		Attack:  {RowLength: 4, FrameDuration: 60 * time.Millisecond},
		Death:   {RowLength: 6, FrameDuration: 120 * time.Millisecond},
	},
	"slime": {
		Walking: {RowLength: 4, FrameDuration: 150 * time.Millisecond},
		Death:   {RowLength: 6, FrameDuration: 100 * time.Millisecond},
	},
}

// Validate checks every state has a usable row length and a positive frame duration.
func (d DirectionalAnimationDef) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: no states defined", ErrInvalidDescriptor)
	}
	for state, def := range d {
		if def.RowLength <= 0 {
			return fmt.Errorf("%w: state %s has row length %d", ErrInvalidDescriptor, state, def.RowLength)
		}
		if def.FrameDuration <= 0 {
			return fmt.Errorf("%w: state %s has frame duration %s", ErrInvalidDescriptor, state, def.FrameDuration)
		}
	}
	return nil
}

// stateAnimationFile is the on-disk form of StateAnimationDef.
type stateAnimationFile struct {
	RowLength     int     `yaml:"row_length"`
	FrameDuration float64 `yaml:"frame_duration"` // seconds
}

// LoadDirectionalAnimations reads a YAML file of the form
//
//	slime:
//	  walk: {row_length: 4, frame_duration: 0.15}
//	  death: {row_length: 6, frame_duration: 0.1}
//
// and returns the validated descriptors keyed by character.
func LoadDirectionalAnimations(fsys fs.FS, path string) (map[string]DirectionalAnimationDef, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation descriptors: %w", err)
	}

	var raw map[string]map[string]stateAnimationFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse animation descriptors: %w", err)
	}

	out := make(map[string]DirectionalAnimationDef, len(raw))
	for key, states := range raw {
		def := make(DirectionalAnimationDef, len(states))
		for name, s := range states {
			state, err := ParseState(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDescriptor, key, err)
			}
			def[state] = StateAnimationDef{
				RowLength:     s.RowLength,
				FrameDuration: time.Duration(s.FrameDuration * float64(time.Second)),
			}
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out[key] = def
	}
	return out, nil
}

// MergeDirectionalAnimations overrides the built-in descriptors with loaded ones.
func MergeDirectionalAnimations(loaded map[string]DirectionalAnimationDef) {
	for key, def := range loaded {
		DirectionalAnimations[key] = def
	}
}
