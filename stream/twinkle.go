package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/util"
)

type twinkleParticle struct {
	colour colorful.Color
	level  *anim.Animated[anim.Bool, anim.Instant]
}

// A Twinkle is an Animation that fades random particles in and out over the
// background colour. Each particle runs its own staggered fade loop.
type Twinkle struct {
	foreColour colorful.Color
	backColour colorful.Color
	numPixels  int
	particles  map[int]*twinkleParticle
}

// NewTwinkle creates a Twinkle with numParticles fading particles scattered
// over the strip.
func NewTwinkle(numParticles int, fore, back colorful.Color, numPixels int, now anim.Instant) *Twinkle {
	t := new(Twinkle)
	t.foreColour = fore
	t.backColour = back
	t.numPixels = numPixels
	t.particles = make(map[int]*twinkleParticle)

	h, _, l := fore.Hcl()
	for i := 0; i < numParticles; i++ {
		colour := colorful.Hcl(h, util.RandomiseSaturation(0.4, 1.0), l)
		level := anim.New[anim.Bool, anim.Instant](false).
			Duration(float32(800 + rand.Intn(800))).
			Easing(anim.EaseInOutQuad).
			Delay(float32(rand.Intn(4000))).
			RepeatForever().
			AutoReverse().
			AutoStart(true, now)
		t.particles[rand.Intn(numPixels)] = &twinkleParticle{colour: colour, level: level}
	}

	return t
}

// CalculateFrame creates a new Frame instance.
func (t *Twinkle) CalculateFrame(now anim.Instant) *Frame {
	f := NewFrame(t.numPixels)
	f.Fill(t.backColour)
	for i, p := range t.particles {
		gain := float64(p.level.AnimateFloat(0, 1, now))
		f.pixels[i] = t.backColour.BlendHcl(p.colour, gain)
	}

	return f
}
