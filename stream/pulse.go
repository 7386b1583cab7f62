package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animtx/anim"
)

// A Pulse is an Animation that breathes the whole strip between a background
// and a foreground colour.
type Pulse struct {
	foreColour colorful.Color
	backColour colorful.Color
	numPixels  int
	level      *anim.Animated[anim.Bool, anim.Instant]
}

// NewPulse creates a Pulse with the given breath period.
func NewPulse(fore, back colorful.Color, periodMS float32, numPixels int, now anim.Instant) *Pulse {
	p := new(Pulse)
	p.foreColour = fore
	p.backColour = back
	p.numPixels = numPixels
	p.level = anim.New[anim.Bool, anim.Instant](false).
		Duration(periodMS).
		Easing(anim.EaseInOut).
		RepeatForever().
		AutoReverse().
		AutoStart(true, now)

	return p
}

// CalculateFrame creates a new Frame instance.
func (p *Pulse) CalculateFrame(now anim.Instant) *Frame {
	f := NewFrame(p.numPixels)
	bias := float64(p.level.AnimateFloat(0, 1, now))
	f.Fill(p.backColour.BlendHcl(p.foreColour, bias))

	return f
}
