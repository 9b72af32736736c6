package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/automoto/quiverfall/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed all:levels
	LevelFS embed.FS
)

// ArenaMapPath is the built-in arena inside LevelFS.
const ArenaMapPath = "levels/arena.tmx"

// TextureProvider supplies the sprite sheet of a character in a given state.
// Returned images are shared and must not be written to.
type TextureProvider interface {
	Texture(key string, state config.StateID) (*ebiten.Image, error)
}

// LoadTextures collects the sheets for every state in def. A state without a
// texture is skipped with a warning; the animator decides whether that is
// fatal for the initial state.
func LoadTextures(p TextureProvider, key string, def config.DirectionalAnimationDef) map[config.StateID]*ebiten.Image {
	textures := make(map[config.StateID]*ebiten.Image, len(def))
	for state := range def {
		img, err := p.Texture(key, state)
		if err != nil {
			log.Printf("Warning: %v", err)
			continue
		}
		textures[state] = img
	}
	return textures
}

type sheetKey struct {
	key   string
	state config.StateID
}

// PlaceholderProvider paints flat-colored sheets sized from the animation
// descriptors. Each cell gets a marker in the corner it faces and a bar that
// grows with the frame number.
type PlaceholderProvider struct {
	Tile        image.Point
	Descriptors map[string]config.DirectionalAnimationDef
	Colors      map[string]color.RGBA

	cache map[sheetKey]*ebiten.Image
}

func NewPlaceholderProvider(tile image.Point) *PlaceholderProvider {
	return &PlaceholderProvider{
		Tile:        tile,
		Descriptors: config.DirectionalAnimations,
		Colors: map[string]color.RGBA{
			"player": config.LightBlue,
		},
		cache: make(map[sheetKey]*ebiten.Image),
	}
}

func (p *PlaceholderProvider) Texture(key string, state config.StateID) (*ebiten.Image, error) {
	k := sheetKey{key, state}
	if img, ok := p.cache[k]; ok {
		return img, nil
	}

	def, ok := p.Descriptors[key][state]
	if !ok {
		return nil, fmt.Errorf("no sheet for %s in state %s", key, state)
	}
	if def.RowLength <= 0 {
		return nil, fmt.Errorf("sheet %s/%s has row length %d", key, state, def.RowLength)
	}

	base, ok := p.Colors[key]
	if !ok {
		base = config.White
	}
	img := paintSheet(p.Tile, def.RowLength, stateShade(base, state))
	p.cache[k] = img
	return img, nil
}

// Row order matches the directional sheet layout: down-right, down-left,
// up-right, up-left. Marker offsets are in screen space (y-down).
var rowMarkers = [4]image.Point{{1, 1}, {0, 1}, {1, 0}, {0, 0}}

func paintSheet(tile image.Point, rowLength int, base color.RGBA) *ebiten.Image {
	sheet := ebiten.NewImage(tile.X*rowLength, tile.Y*len(rowMarkers))
	marker := image.Pt(tile.X/4, tile.Y/4)
	for row, m := range rowMarkers {
		for col := 0; col < rowLength; col++ {
			origin := image.Pt(col*tile.X, row*tile.Y)
			cell := image.Rectangle{Min: origin, Max: origin.Add(tile)}
			sheet.SubImage(cell.Inset(1)).(*ebiten.Image).Fill(base)

			mo := origin.Add(image.Pt(m.X*(tile.X-marker.X), m.Y*(tile.Y-marker.Y)))
			sheet.SubImage(image.Rectangle{Min: mo, Max: mo.Add(marker)}).(*ebiten.Image).Fill(config.White)

			barWidth := (tile.X - 2) * (col + 1) / rowLength
			bar := image.Rect(origin.X+1, origin.Y+tile.Y/2, origin.X+1+barWidth, origin.Y+tile.Y/2+2)
			sheet.SubImage(bar).(*ebiten.Image).Fill(color.RGBA{A: 255})
		}
	}
	return sheet
}

func stateShade(c color.RGBA, state config.StateID) color.RGBA {
	switch state {
	case config.Death:
		return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
	case config.Attack:
		return color.RGBA{R: 255, G: c.G, B: c.B / 2, A: c.A}
	}
	return c
}
