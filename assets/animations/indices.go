package animations

// sheetRows is the fixed top-to-bottom row order of every directional sheet.
// It is not the declaration order of Direction.
var sheetRows = [4]Direction{DownRight, DownLeft, UpRight, UpLeft}

// FrameIndices maps each facing to the ordered sheet cells that animate it.
type FrameIndices map[Direction][]int

// FrameIndicesOfRows builds the table for a sheet with rowLength frames per
// direction, row i covering cells [i*rowLength, (i+1)*rowLength).
func FrameIndicesOfRows(rowLength int) FrameIndices {
	indices := make(FrameIndices, len(sheetRows))
	if rowLength <= 0 {
		return indices
	}
	for row, dir := range sheetRows {
		frames := make([]int, rowLength)
		for i := range frames {
			frames[i] = row*rowLength + i
		}
		indices[dir] = frames
	}
	return indices
}

// Frames returns the cells for d, or false if the table has none.
func (f FrameIndices) Frames(d Direction) ([]int, bool) {
	frames, ok := f[d]
	if !ok || len(frames) == 0 {
		return nil, false
	}
	return frames, true
}
