package animations

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// AtlasLayout is a uniform grid over a directional sprite sheet: one row per
// facing, Columns cells per row.
type AtlasLayout struct {
	Tile    image.Point
	Columns int
	Rows    int
}

func NewAtlasLayout(tile image.Point, rowLength int) *AtlasLayout {
	return &AtlasLayout{Tile: tile, Columns: rowLength, Rows: len(sheetRows)}
}

func (l *AtlasLayout) Len() int {
	return l.Columns * l.Rows
}

// Rect returns the sheet area of cell index, counted left to right then top
// to bottom. ok is false for indices outside the grid.
func (l *AtlasLayout) Rect(index int) (image.Rectangle, bool) {
	if l.Columns <= 0 || index < 0 || index >= l.Len() {
		return image.Rectangle{}, false
	}
	col := index % l.Columns
	row := index / l.Columns
	origin := image.Pt(col*l.Tile.X, row*l.Tile.Y)
	return image.Rectangle{Min: origin, Max: origin.Add(l.Tile)}, true
}

// Sprite is what gets drawn for an animated entity.
type Sprite struct {
	Image  *ebiten.Image
	Layout *AtlasLayout
	Index  int
}

// Frame returns the current cell of the sheet, or nil if nothing is bound.
func (s *Sprite) Frame() *ebiten.Image {
	if s == nil || s.Image == nil || s.Layout == nil {
		return nil
	}
	r, ok := s.Layout.Rect(s.Index)
	if !ok {
		return nil
	}
	return s.Image.SubImage(r).(*ebiten.Image)
}
