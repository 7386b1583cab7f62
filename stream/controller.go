package stream

import (
	"sync"

	"github.com/matt-g-everett/animtx/anim"
)

// Controller manages the active animation and crossfades to the next one.
// The fade is an animated transition, so its pace comes from the clock and
// the configured easing rather than a per-frame increment.
type Controller struct {
	mu          sync.Mutex
	name        string
	current     Animation
	nextName    string
	next        Animation
	fade        *anim.Animated[anim.Bool, anim.Instant]
}

// NewController creates a Controller showing the initial animation.
func NewController(name string, initial Animation, fadeDurationMS float32, easing anim.Easing) *Controller {
	c := new(Controller)
	c.name = name
	c.current = initial
	c.fade = anim.New[anim.Bool, anim.Instant](false).
		Duration(fadeDurationMS).
		Easing(easing)

	return c
}

// SetNext begins a crossfade toward a. A crossfade already underway adopts
// its target as the new base before fading again.
func (c *Controller) SetNext(name string, a Animation, now anim.Instant) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.next != nil {
		c.name = c.nextName
		c.current = c.next
	}
	c.nextName = name
	c.next = a
	c.fade.TransitionInstantaneous(false, now)
	c.fade.Transition(true, now)
}

// Status reports the visible animation name and whether a crossfade is
// underway.
func (c *Controller) Status() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.next != nil {
		return c.nextName, true
	}
	return c.name, false
}

// CalculateFrame renders the current animation, blending in the next one
// while a crossfade is underway.
func (c *Controller) CalculateFrame(now anim.Instant) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.next == nil {
		return c.current.CalculateFrame(now)
	}

	f1 := c.current.CalculateFrame(now)
	f2 := c.next.CalculateFrame(now)
	f := f1.Interpolate(f2, float64(c.fade.AnimateFloat(0, 1, now)))

	if !c.fade.InProgress(now) {
		c.name = c.nextName
		c.current = c.next
		c.next = nil
		c.fade.TransitionInstantaneous(false, now)
	}

	return f
}
