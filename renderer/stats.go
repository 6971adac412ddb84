package renderer

import "time"

type FrameStats struct {
	// Number of rendered frames.
	Frames uint64

	// Number of scene buffer uploads.
	SceneUploads uint32

	// Render time for all frames and for the last frame.
	TotalTime     time.Duration
	LastFrameTime time.Duration
}

// Average time per frame.
func (s FrameStats) AvgFrameTime() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.TotalTime / time.Duration(s.Frames)
}

func (s *FrameStats) record(frameTime time.Duration) {
	s.Frames++
	s.TotalTime += frameTime
	s.LastFrameTime = frameTime
}

// fpsCounter smooths the displayed frame rate by only refreshing it once
// per interval.
type fpsCounter struct {
	interval float32

	elapsed float32
	frames  uint32
	fps     float32
}

// Add a frame that took dt seconds. Returns true if the displayed value
// changed.
func (c *fpsCounter) update(dt float32) bool {
	c.elapsed += dt
	c.frames++
	if c.elapsed < c.interval {
		return false
	}

	c.fps = float32(c.frames) / c.elapsed
	c.elapsed = 0
	c.frames = 0
	return true
}
