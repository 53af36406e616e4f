package render

// Camera translates between map coordinates and screen coordinates.
// Map X is doubled on screen because emoji occupy two terminal columns.
type Camera struct {
	OffsetX, OffsetY int
	ViewWidth        int // terminal columns
	ViewHeight       int // terminal rows
}

// Center repositions the camera so that map position (cx, cy) is in the
// middle of the view.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - c.ViewWidth/4
	c.OffsetY = cy - c.ViewHeight/2
}

// ToScreen converts map (mx, my) to screen (sx, sy).
// visible is false when the glyph would not fit in the view.
func (c Camera) ToScreen(mx, my int) (sx, sy int, visible bool) {
	sx = (mx - c.OffsetX) * 2
	sy = my - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
