package animations

// Cursor walks the frame list currently bound to a sprite.
type Cursor struct {
	indices []int
	offset  int
}

// Bind replaces the frame list and rewinds to its first frame.
func (c *Cursor) Bind(indices []int) {
	c.indices = indices
	c.offset = 0
}

// Advance moves to the next frame. It returns true when the list wrapped back
// to its first frame, and always for an empty list.
func (c *Cursor) Advance() bool {
	if len(c.indices) == 0 {
		return true
	}
	c.offset++
	if c.offset >= len(c.indices) {
		c.offset = 0
		return true
	}
	return false
}

// Index returns the sheet cell at the current offset, or 0 for an empty list.
func (c *Cursor) Index() int {
	if len(c.indices) == 0 {
		return 0
	}
	return c.indices[c.offset]
}

func (c *Cursor) Offset() int {
	return c.offset
}

func (c *Cursor) Len() int {
	return len(c.indices)
}

// Reset rewinds to the first frame without changing the list.
func (c *Cursor) Reset() {
	c.offset = 0
}
