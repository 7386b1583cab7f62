package stream

import "github.com/matt-g-everett/animtx/anim"

// An Animation renders the strip at a single instant. Implementations are
// sampled on demand by the streaming loop and hold no timers of their own.
type Animation interface {
	CalculateFrame(now anim.Instant) *Frame
}
