package assets

import (
	"image"
	"testing"
	"time"

	"github.com/automoto/quiverfall/config"
)

func testProvider() *PlaceholderProvider {
	p := NewPlaceholderProvider(image.Pt(16, 16))
	p.Descriptors = map[string]config.DirectionalAnimationDef{
		"bat": {
			config.Walking: {RowLength: 3, FrameDuration: 100 * time.Millisecond},
			config.Death:   {RowLength: 5, FrameDuration: 100 * time.Millisecond},
		},
	}
	return p
}

func TestPlaceholderSheetSize(t *testing.T) {
	p := testProvider()
	img, err := p.Texture("bat", config.Death)
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(80, 64) {
		t.Errorf("sheet size = %v, want (80,64)", got)
	}

	again, _ := p.Texture("bat", config.Death)
	if again != img {
		t.Errorf("sheets are not shared between calls")
	}
}

func TestPlaceholderMissingState(t *testing.T) {
	p := testProvider()
	if _, err := p.Texture("bat", config.Idle); err == nil {
		t.Errorf("expected an error for a state without a descriptor")
	}
	if _, err := p.Texture("ghost", config.Walking); err == nil {
		t.Errorf("expected an error for an unknown character")
	}
}

func TestLoadTexturesSkipsMissing(t *testing.T) {
	p := testProvider()
	def := config.DirectionalAnimationDef{
		config.Walking: {RowLength: 3, FrameDuration: time.Second},
		config.Idle:    {RowLength: 3, FrameDuration: time.Second},
	}
	textures := LoadTextures(p, "bat", def)
	if textures[config.Walking] == nil {
		t.Errorf("walking texture missing")
	}
	if _, ok := textures[config.Idle]; ok {
		t.Errorf("idle texture should be skipped")
	}
}

func TestArenaMapEmbedded(t *testing.T) {
	if _, err := LevelFS.Open(ArenaMapPath); err != nil {
		t.Errorf("arena map not embedded: %v", err)
	}
}
