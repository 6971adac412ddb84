package renderer

type Renderer interface {
	// Run the render loop until the window is closed.
	Render() error

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}
