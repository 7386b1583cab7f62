package stream

import (
	"math"

	"github.com/matt-g-everett/animtx/anim"
)

// A Trail is an Animation that cycles a hue gradient along the strip. The
// cycle position is driven by the clock rather than a per-frame increment,
// so the speed is independent of the frame rate.
type Trail struct {
	gradient    GradientTable
	trailLength int
	numPixels   int
	offset      *anim.Animated[anim.Bool, anim.Instant]
}

// NewTrail creates a Trail that completes one gradient cycle every cycleMS.
func NewTrail(gradient GradientTable, trailLength int, cycleMS float32, numPixels int, now anim.Instant) *Trail {
	g := new(Trail)
	g.gradient = gradient
	g.trailLength = trailLength
	g.numPixels = numPixels
	g.offset = anim.New[anim.Bool, anim.Instant](false).
		Duration(cycleMS).
		Easing(anim.Linear).
		RepeatForever().
		AutoStart(true, now)

	return g
}

// CalculateFrame creates a new Frame instance.
func (g *Trail) CalculateFrame(now anim.Instant) *Frame {
	f := NewFrame(g.numPixels)
	saturation := 1.0
	luminance := 0.05
	current := float64(g.offset.AnimateFloat(0, float32(g.trailLength), now))
	for i := 0; i < g.numPixels; i++ {
		t := math.Mod(float64(i+g.numPixels)-current, float64(g.trailLength)) / float64(g.trailLength)
		f.pixels[i] = g.gradient.GetColor(t, saturation, luminance)
	}

	return f
}
