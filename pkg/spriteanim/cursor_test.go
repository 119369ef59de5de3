package spriteanim

import "testing"

func buildWalkResource() *Resource {
	r := NewResource("atlas.png")
	r.AddAnimation(Animation{
		Name:       "walk",
		Looping:    true,
		SpeedScale: 1.0,
		Frames: []Frame{
			{Region: Rect{W: 1, H: 1}, Duration: 0.1},
			{Region: Rect{X: 0.25, W: 1, H: 1}, Duration: 0.1},
			{Region: Rect{X: 0.5, W: 1, H: 1}, Duration: 0.1},
			{Region: Rect{X: 0.75, W: 1, H: 1}, Duration: 0.1},
		},
	})
	return r
}

// S4 — sprite loop: advancing by exactly one full cycle returns the cursor
// to its starting frame.
func TestCursorLoopsAndConservesPhase(t *testing.T) {
	r := buildWalkResource()
	c := NewCursor(r)
	c.SetAnimation("walk")

	for i := 0; i < 4; i++ {
		c.Advance(0.1)
	}

	if c.CurrentFrame() != 0 {
		t.Errorf("expected a full cycle to return to frame 0, got %d", c.CurrentFrame())
	}
	if !c.IsPlaying() {
		t.Error("expected a looping animation to keep playing")
	}
}

// P5 — frame-time conservation: the sum of elapsed-in-frame plus
// completed-frame durations equals total time advanced, modulo looping.
func TestCursorAdvanceConservesElapsedTime(t *testing.T) {
	r := buildWalkResource()
	c := NewCursor(r)
	c.SetAnimation("walk")

	c.Advance(0.25)

	// 0.25s at 0.1s/frame: frame 0 and 1 consumed (0.2s), 0.05s into frame 2.
	if c.CurrentFrame() != 2 {
		t.Errorf("expected frame 2, got %d", c.CurrentFrame())
	}
	if d := c.elapsed - 0.05; d > 1e-9 || d < -1e-9 {
		t.Errorf("expected 0.05s into frame 2, got %v", c.elapsed)
	}
}

func TestCursorAdvanceHandlesLargeDtBounded(t *testing.T) {
	r := buildWalkResource()
	c := NewCursor(r)
	c.SetAnimation("walk")

	// A large stall should still terminate and land on a valid frame.
	c.Advance(100.0)

	if c.CurrentFrame() < 0 || c.CurrentFrame() >= 4 {
		t.Errorf("expected a valid frame index, got %d", c.CurrentFrame())
	}
}

func TestCursorNonLoopingStopsAtLastFrame(t *testing.T) {
	r := NewResource("atlas.png")
	r.AddAnimation(Animation{
		Name:    "death",
		Looping: false,
		Frames: []Frame{
			{Region: Rect{W: 1, H: 1}, Duration: 0.1},
			{Region: Rect{X: 0.5, W: 1, H: 1}, Duration: 0.1},
		},
	})

	c := NewCursor(r)
	c.SetAnimation("death")
	c.Advance(1.0)

	if c.CurrentFrame() != 1 {
		t.Errorf("expected to stop at the last frame, got %d", c.CurrentFrame())
	}
	if c.IsPlaying() {
		t.Error("expected a non-looping animation to stop playing at the end")
	}
}

func TestCursorSetUnknownAnimationGoesIdle(t *testing.T) {
	r := buildWalkResource()
	c := NewCursor(r)
	c.SetAnimation("missing")

	if c.IsPlaying() {
		t.Error("expected an unknown animation name to leave the cursor idle")
	}
	if _, ok := c.CurrentRegion(); ok {
		t.Error("expected no region while idle")
	}
}

func TestCursorPauseResumeFreezesFrame(t *testing.T) {
	r := buildWalkResource()
	c := NewCursor(r)
	c.SetAnimation("walk")

	c.Advance(0.1)
	c.Pause()
	frame := c.CurrentFrame()
	c.Advance(0.5)

	if c.CurrentFrame() != frame {
		t.Errorf("expected frame to stay %d while paused, got %d", frame, c.CurrentFrame())
	}

	c.Resume()
	c.Advance(0.1)
	if c.CurrentFrame() == frame {
		t.Error("expected frame to advance again after resuming")
	}
}
