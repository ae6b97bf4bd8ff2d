package graphics

// Context defines the interface for a window with an OpenGL context.
type Context interface {
	MakeCurrent()
	ShouldClose() bool
	// ProcessInput polls pending events and flags the window for closing
	// when Escape is down.
	ProcessInput()
	// EndFrame presents the back buffer.
	EndFrame()
	GetFramebufferSize() (int, int)
}
