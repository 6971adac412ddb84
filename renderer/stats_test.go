package renderer

import (
	"testing"
	"time"
)

func TestFrameStats(t *testing.T) {
	var stats FrameStats
	if stats.AvgFrameTime() != 0 {
		t.Fatalf("expected avg frame time with no frames to be 0; got %s", stats.AvgFrameTime())
	}

	stats.record(10 * time.Millisecond)
	stats.record(20 * time.Millisecond)
	stats.record(30 * time.Millisecond)

	if stats.Frames != 3 {
		t.Fatalf("expected frame count to be 3; got %d", stats.Frames)
	}
	if stats.TotalTime != 60*time.Millisecond {
		t.Fatalf("expected total time to be 60ms; got %s", stats.TotalTime)
	}
	if stats.LastFrameTime != 30*time.Millisecond {
		t.Fatalf("expected last frame time to be 30ms; got %s", stats.LastFrameTime)
	}
	if stats.AvgFrameTime() != 20*time.Millisecond {
		t.Fatalf("expected avg frame time to be 20ms; got %s", stats.AvgFrameTime())
	}
}

func TestFpsCounter(t *testing.T) {
	c := fpsCounter{interval: 1}

	for i := 0; i < 3; i++ {
		if c.update(0.25) {
			t.Fatalf("expected fps not to refresh after %d frames", i+1)
		}
	}
	if !c.update(0.25) {
		t.Fatal("expected fps to refresh once the interval elapsed")
	}
	if c.fps != 4 {
		t.Fatalf("expected fps to be 4; got %f", c.fps)
	}
	if c.elapsed != 0 || c.frames != 0 {
		t.Fatal("expected counter to restart after refresh")
	}
}
