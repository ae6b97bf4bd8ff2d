package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeContext closes after closeAfter ProcessInput calls, the way an Escape
// press seen during polling would.
type fakeContext struct {
	closeAfter int
	closed     bool
	calls      []string
}

func (f *fakeContext) ShouldClose() bool {
	f.calls = append(f.calls, "close?")
	return f.closed
}

func (f *fakeContext) ProcessInput() {
	f.calls = append(f.calls, "input")
	f.closeAfter--
	if f.closeAfter <= 0 {
		f.closed = true
	}
}

func (f *fakeContext) EndFrame() {
	f.calls = append(f.calls, "present")
}

func (f *fakeContext) MakeCurrent() {}

func (f *fakeContext) GetFramebufferSize() (int, int) { return 640, 480 }

func TestRunOrder(t *testing.T) {
	ctx := &fakeContext{closeAfter: 2}
	frames := Run(ctx, func() { ctx.calls = append(ctx.calls, "draw") })

	assert.Equal(t, 2, frames)
	assert.Equal(t, []string{
		"close?", "input", "draw", "present",
		"close?", "input", "draw", "present",
		"close?",
	}, ctx.calls)
}

func TestRunAlreadyClosed(t *testing.T) {
	ctx := &fakeContext{closed: true}
	drawn := 0
	frames := Run(ctx, func() { drawn++ })

	assert.Equal(t, 0, frames)
	assert.Equal(t, 0, drawn)
	assert.Equal(t, []string{"close?"}, ctx.calls)
}

func TestStepStaysClosed(t *testing.T) {
	ctx := &fakeContext{closeAfter: 1}
	l := NewLoop(ctx, nil)

	assert.Equal(t, Running, l.State())
	assert.Equal(t, Running, l.Step())
	assert.Equal(t, Closed, l.Step())
	assert.Equal(t, Closed, l.Step())
	assert.Equal(t, 1, l.Frames())
	assert.Equal(t, "closed", l.State().String())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "unknown", State(7).String())
}
