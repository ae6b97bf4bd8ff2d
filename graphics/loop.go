package graphics

// State is where the render loop is.
type State int

const (
	Running State = iota
	Closed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Loop drives a Context until it asks to close.
type Loop struct {
	ctx    Context
	draw   func()
	state  State
	frames int
}

func NewLoop(ctx Context, draw func()) *Loop {
	return &Loop{ctx: ctx, draw: draw}
}

func (l *Loop) State() State { return l.state }

// Frames is the number of frames presented so far.
func (l *Loop) Frames() int { return l.frames }

// Step runs one iteration and returns the state afterwards. The close flag is
// read before any work so a window closed between frames draws nothing more.
func (l *Loop) Step() State {
	if l.state == Closed {
		return Closed
	}
	if l.ctx.ShouldClose() {
		l.state = Closed
		return Closed
	}
	l.ctx.ProcessInput()
	if l.draw != nil {
		l.draw()
	}
	l.ctx.EndFrame()
	l.frames++
	return l.state
}

// Run steps until the loop closes and returns the frame count.
func (l *Loop) Run() int {
	for l.Step() == Running {
	}
	return l.frames
}

// Run is NewLoop(ctx, draw).Run().
func Run(ctx Context, draw func()) int {
	return NewLoop(ctx, draw).Run()
}
