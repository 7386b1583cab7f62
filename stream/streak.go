package stream

import (
	"container/list"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/util"
)

type streakParticle struct {
	colour   colorful.Color
	length   float64
	from     float32
	to       float32
	position *anim.Animated[anim.Float, anim.Instant]
}

func newStreakParticle(numPixels int, travelMS float32, now anim.Instant) *streakParticle {
	p := new(streakParticle)
	p.colour = colorful.Color{R: 0.45, G: -0.54, B: 0.02}
	p.length = 10
	p.from = float32(-p.length)
	p.to = float32(numPixels)
	p.position = anim.New[anim.Float, anim.Instant](anim.Float(p.from)).
		Duration(travelMS).
		Easing(anim.Linear)
	p.position.Transition(anim.Float(p.to), now)
	return p
}

func (p *streakParticle) live(now anim.Instant) bool {
	return p.position.InProgress(now)
}

// overallGain looks the particle's travel fraction up in the shared
// rise-and-fall profile so streaks fade in and then out.
func (p *streakParticle) overallGain(lut []float64, now anim.Instant) float64 {
	fraction := (p.position.Progress(now) - p.from) / (p.to - p.from)
	idx := int(float64(fraction) * float64(len(lut)-1))
	if idx < 0 {
		idx = 0
	} else if idx >= len(lut) {
		idx = len(lut) - 1
	}
	return lut[idx]
}

func (p *streakParticle) addStreak(frame *Frame, lut []float64, now anim.Instant) {
	bias := p.overallGain(lut, now)
	current := float64(p.position.Progress(now))
	start := int(math.Ceil(current))
	end := int(math.Floor(current + p.length))
	for i := start; i <= end; i++ {
		if i < 0 || i >= frame.Len() {
			continue
		}
		frame.pixels[i] = frame.pixels[i].BlendHcl(p.colour, bias)
	}
}

// A Streak is an Animation that sweeps fading streaks along the strip.
type Streak struct {
	backColour   colorful.Color
	streakChance int32
	numPixels    int
	travelMS     float32
	lut          []float64
	particles    *list.List
}

// NewStreak creates a Streak. streakChance is the per-frame one-in-N chance
// of launching a new particle.
func NewStreak(streakChance int32, backColour colorful.Color, numPixels int, travelMS float32) *Streak {
	s := new(Streak)
	s.streakChance = streakChance
	s.backColour = backColour
	s.numPixels = numPixels
	s.travelMS = travelMS
	s.lut = util.GenerateLut(64, anim.EaseInOutQuad)
	s.particles = list.New()

	return s
}

// CalculateFrame creates a new Frame instance.
func (s *Streak) CalculateFrame(now anim.Instant) *Frame {
	f := NewFrame(s.numPixels)
	f.Fill(s.backColour)

	toDelete := make([]*list.Element, 0, s.particles.Len())
	for e := s.particles.Front(); e != nil; e = e.Next() {
		particle, _ := e.Value.(*streakParticle)
		if particle.live(now) {
			particle.addStreak(f, s.lut, now)
		} else {
			toDelete = append(toDelete, e)
		}
	}

	if rand.Int31n(s.streakChance) == 0 {
		s.particles.PushBack(newStreakParticle(s.numPixels, s.travelMS, now))
	}

	for _, e := range toDelete {
		s.particles.Remove(e)
	}

	return f
}
