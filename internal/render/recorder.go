package render

// Op names a draw command.
type Op string

const (
	OpBackground Op = "background"
	OpFill       Op = "fill"
	OpRect       Op = "rect"
	OpText       Op = "text"
)

// Command is one recorded draw instruction. Color is set only on fill and
// background commands. Coordinates are always encoded, zero included.
type Command struct {
	Op    Op     `json:"op"`
	Color *RGB   `json:"color,omitempty"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	W     int    `json:"w"`
	H     int    `json:"h"`
	Text  string `json:"text,omitempty"`
}

// Recorder is a Canvas that keeps every command it receives in order.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) SetFill(c RGB) {
	r.Commands = append(r.Commands, Command{Op: OpFill, Color: &c})
}

func (r *Recorder) DrawRect(x, y, w, h int) {
	r.Commands = append(r.Commands, Command{Op: OpRect, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) Background(c RGB) {
	r.Commands = append(r.Commands, Command{Op: OpBackground, Color: &c})
}

func (r *Recorder) Text(s string, x, y int) {
	r.Commands = append(r.Commands, Command{Op: OpText, X: x, Y: y, Text: s})
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// FilledRect is a rectangle together with the fill active when it was drawn.
type FilledRect struct {
	X, Y, W, H int
	Color      RGB
}

// Rects returns the rectangle commands with their effective fill colors.
func (r *Recorder) Rects() []FilledRect {
	var (
		out  []FilledRect
		fill RGB
	)
	for _, c := range r.Commands {
		switch c.Op {
		case OpFill:
			fill = *c.Color
		case OpRect:
			out = append(out, FilledRect{X: c.X, Y: c.Y, W: c.W, H: c.H, Color: fill})
		}
	}
	return out
}
