package config

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"
)

func TestBuiltinAnimationsValid(t *testing.T) {
	for key, def := range DirectionalAnimations {
		if err := def.Validate(); err != nil {
			t.Errorf("%s: %v", key, err)
		}
	}
}

func TestLoadDirectionalAnimations(t *testing.T) {
	fsys := fstest.MapFS{
		"anim.yaml": {Data: []byte(`
bat:
  walk: {row_length: 3, frame_duration: 0.08}
  Death: {row_length: 5, frame_duration: 0.1}
`)},
	}

	got, err := LoadDirectionalAnimations(fsys, "anim.yaml")
	if err != nil {
		t.Fatalf("LoadDirectionalAnimations: %v", err)
	}
	bat, ok := got["bat"]
	if !ok {
		t.Fatalf("bat not loaded: %v", got)
	}
	if bat[Walking].RowLength != 3 || bat[Walking].FrameDuration != 80*time.Millisecond {
		t.Errorf("walk = %+v", bat[Walking])
	}
	if bat[Death].RowLength != 5 || bat[Death].FrameDuration != 100*time.Millisecond {
		t.Errorf("death = %+v", bat[Death])
	}
}

func TestLoadDirectionalAnimationsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero_duration", "bat:\n  walk: {row_length: 3, frame_duration: 0}\n"},
		{"negative_rows", "bat:\n  walk: {row_length: -1, frame_duration: 0.1}\n"},
		{"unknown_state", "bat:\n  fly: {row_length: 3, frame_duration: 0.1}\n"},
		{"no_states", "bat: {}\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fsys := fstest.MapFS{"anim.yaml": {Data: []byte(c.yaml)}}
			_, err := LoadDirectionalAnimations(fsys, "anim.yaml")
			if !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("err = %v, want ErrInvalidDescriptor", err)
			}
		})
	}
}

func TestLoadDirectionalAnimationsMissingFile(t *testing.T) {
	if _, err := LoadDirectionalAnimations(fstest.MapFS{}, "missing.yaml"); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestParseState(t *testing.T) {
	cases := map[string]StateID{
		"idle":    Idle,
		"WALK":    Walking,
		"walking": Walking,
		" death ": Death,
		"attack":  Attack,
	}
	for name, want := range cases {
		got, err := ParseState(name)
		if err != nil || got != want {
			t.Errorf("ParseState(%q) = %s, %v; want %s", name, got, err, want)
		}
	}
	if _, err := ParseState("jump"); err == nil {
		t.Errorf("ParseState(jump) should fail")
	}
}
