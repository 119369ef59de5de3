package spriteanim

// Cursor is a transient playback position into a Resource's animations. A
// Cursor owns no I/O and allocates nothing on its Advance path.
type Cursor struct {
	resource     *Resource
	animation    string
	currentFrame int
	elapsed      float64
	playing      bool
	paused       bool
}

// NewCursor returns a Cursor over resource, idle until SetAnimation is
// called.
func NewCursor(resource *Resource) *Cursor {
	return &Cursor{resource: resource}
}

// SetAnimation switches the cursor to the named animation, resetting
// playback to its first frame. If name is unknown, the cursor goes idle
// (no emissions) until a known name is set.
func (c *Cursor) SetAnimation(name string) {
	c.currentFrame = 0
	c.elapsed = 0
	c.paused = false
	if _, ok := c.resource.Animations[name]; !ok {
		c.animation = ""
		c.playing = false
		return
	}
	c.animation = name
	c.playing = true
}

// Pause freezes the cursor in place; Advance is a no-op until Resume.
func (c *Cursor) Pause() { c.paused = true }

// Resume continues advancing a paused cursor from exactly where it froze.
func (c *Cursor) Resume() { c.paused = false }

// IsPlaying reports whether the cursor is actively advancing (not idle,
// not paused, and not stopped at the last frame of a non-looping
// animation).
func (c *Cursor) IsPlaying() bool { return c.playing && !c.paused }

// Advance moves the cursor forward by dt seconds of wall-clock time,
// scaled by the animation's authored speed. It may cross several frame
// boundaries in one call (catching up after a stall) but always
// terminates: with dt >= 0 and every frame duration > 0, the advancement
// loop runs at most ceil(dt*speed/min_duration)+1 iterations.
func (c *Cursor) Advance(dt float64) {
	if !c.playing || c.paused || c.animation == "" {
		return
	}

	anim := c.resource.Animations[c.animation]
	if len(anim.Frames) == 0 {
		c.playing = false
		return
	}

	speed := anim.SpeedScale
	if speed == 0 {
		speed = 1.0
	}
	c.elapsed += dt * speed

	for c.elapsed >= anim.Frames[c.currentFrame].Duration {
		c.elapsed -= anim.Frames[c.currentFrame].Duration
		c.currentFrame++

		if c.currentFrame >= len(anim.Frames) {
			if anim.Looping {
				c.currentFrame = 0
				continue
			}
			c.currentFrame = len(anim.Frames) - 1
			c.elapsed = anim.Frames[c.currentFrame].Duration
			c.playing = false
			break
		}
	}
}

// CurrentRegion returns the region to display this tick and whether the
// cursor currently has an active animation to show.
func (c *Cursor) CurrentRegion() (Rect, bool) {
	if c.animation == "" {
		return Rect{}, false
	}
	anim := c.resource.Animations[c.animation]
	if len(anim.Frames) == 0 {
		return Rect{}, false
	}
	return anim.Frames[c.currentFrame].Region, true
}

// CurrentAnimation returns the name of the animation the cursor is
// currently playing, or "" if idle.
func (c *Cursor) CurrentAnimation() string { return c.animation }

// CurrentFrame returns the index of the frame the cursor is currently on.
func (c *Cursor) CurrentFrame() int { return c.currentFrame }
