package render

// Surface accepts fill and rectangle commands in pixel space:
// origin top-left, x rightward, y downward.
type Surface interface {
	SetFill(c RGB)
	DrawRect(x, y, w, h int)
}

// Canvas is a Surface that can also be cleared and labelled.
type Canvas interface {
	Surface
	// Background fills the whole canvas with c.
	Background(c RGB)
	// Text draws s in the current fill color with its baseline origin at (x, y).
	Text(s string, x, y int)
}
