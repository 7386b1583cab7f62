package anim

import "math"

// DefaultDurationMS is the forward duration an animation starts out with.
const DefaultDurationMS = 100

// settings is one duration/easing pair. An Animation carries a primary pair
// and an optional asymmetric pair that applies while moving toward a smaller
// scalar value.
type settings struct {
	durationMS float32
	easing     Easing
}

type activeTransition[Tm any] struct {
	destination float32
	startedAt   Tm
}

// Animation is the scalar transition state machine. It converts transition
// requests plus a monotonically increasing time source into a continuous,
// interruption-stable progress signal. All computation happens on demand at
// sample time; there are no timers and no background work.
//
// The zero value is not usable; construct with NewAnimation.
type Animation[Tm AnimationTime[Tm]] struct {
	origin        float32
	main          settings
	asymmetric    *settings
	delayMS       float32
	repetitions   uint32
	repeatForever bool
	autoReverse   bool
	active        *activeTransition[Tm]
}

// NewAnimation returns a settled machine at origin with the default
// configuration: 100ms, ease-in-out, no delay, a single play.
func NewAnimation[Tm AnimationTime[Tm]](origin float32) *Animation[Tm] {
	return &Animation[Tm]{
		origin:      origin,
		main:        settings{durationMS: DefaultDurationMS, easing: EaseInOut},
		repetitions: 1,
	}
}

// Duration sets the forward duration in milliseconds.
func (a *Animation[Tm]) Duration(ms float32) *Animation[Tm] {
	a.main.durationMS = ms
	return a
}

// Easing sets the forward easing curve.
func (a *Animation[Tm]) Easing(e Easing) *Animation[Tm] {
	a.main.easing = e
	return a
}

// Delay holds the animation at its origin for ms milliseconds after each
// transition starts.
func (a *Animation[Tm]) Delay(ms float32) *Animation[Tm] {
	a.delayMS = ms
	return a
}

// Repeat plays each transition count times. 1 plays once.
func (a *Animation[Tm]) Repeat(count uint32) *Animation[Tm] {
	a.repetitions = count
	return a
}

// RepeatForever loops each transition until it is interrupted.
func (a *Animation[Tm]) RepeatForever() *Animation[Tm] {
	a.repeatForever = true
	return a
}

// AutoReverse plays each forward leg backward before the next repetition.
// Playback with a bounded repeat count therefore ends back at the origin.
func (a *Animation[Tm]) AutoReverse() *Animation[Tm] {
	a.autoReverse = true
	return a
}

func (a *Animation[Tm]) ensureAsymmetric() *settings {
	if a.asymmetric == nil {
		s := a.main
		a.asymmetric = &s
	}
	return a.asymmetric
}

// AsymmetricDuration sets an alternate duration used while animating toward
// a smaller scalar value.
func (a *Animation[Tm]) AsymmetricDuration(ms float32) *Animation[Tm] {
	a.ensureAsymmetric().durationMS = ms
	return a
}

// AsymmetricEasing sets an alternate easing curve used while animating toward
// a smaller scalar value.
func (a *Animation[Tm]) AsymmetricEasing(e Easing) *Animation[Tm] {
	a.ensureAsymmetric().easing = e
	return a
}

// Transition begins animating toward destination. Interrupting an in-flight
// transition toward a different destination re-bases the origin at the eased
// position, so the visible value is continuous, and restarts the clock: the
// new leg always runs the full configured duration, regardless of remaining
// distance. That is a policy choice, not an approximation; asymmetric and
// auto-reverse timing depend on it.
func (a *Animation[Tm]) Transition(destination float32, now Tm) {
	if a.active == nil || a.active.destination == destination {
		a.origin = a.LinearProgress(now)
		a.active = &activeTransition[Tm]{destination: destination, startedAt: now}
		return
	}
	a.origin = a.Progress(now)
	a.active.destination = destination
	a.active.startedAt = now
}

// TransitionInstantaneous snaps to destination, bypassing duration, easing
// and delay entirely.
func (a *Animation[Tm]) TransitionInstantaneous(destination float32) {
	a.origin = destination
	a.active = nil
}

// legSettings returns the settings for the forward (origin to destination)
// leg and for the auto-reverse return leg of the current transition. The
// asymmetric pair applies to whichever of the two moves toward the smaller
// scalar value.
func (a *Animation[Tm]) legSettings() (fwd, rev settings) {
	fwd, rev = a.main, a.main
	if a.asymmetric != nil && a.active != nil {
		if a.active.destination < a.origin {
			fwd = *a.asymmetric
		} else {
			rev = *a.asymmetric
		}
	}
	return fwd, rev
}

func (a *Animation[Tm]) elapsed(now Tm) float32 {
	e := now.ElapsedSince(a.active.startedAt) - a.delayMS
	if e < 0 {
		return 0
	}
	return e
}

// unitProgress returns the linear unit fraction within the current leg and
// the easing curve that applies to it. Bounded playback pins at 1 once the
// total playable time has elapsed; auto-reverse playback pins at 0 because
// an even number of half-cycles lands back at the origin. Reverse legs
// invert the fraction so the observed motion is symmetric.
func (a *Animation[Tm]) unitProgress(now Tm) (float32, Easing) {
	fwd, rev := a.legSettings()
	elapsed := a.elapsed(now)

	if a.autoReverse {
		combined := fwd.durationMS + rev.durationMS
		if combined <= 0 {
			return 0, fwd.easing
		}
		if !a.repeatForever && elapsed >= combined*float32(a.repetitions) {
			return 0, fwd.easing
		}
		pos := float32(math.Mod(float64(elapsed), float64(combined)))
		if pos < fwd.durationMS {
			return pos / fwd.durationMS, fwd.easing
		}
		return 1 - (pos-fwd.durationMS)/rev.durationMS, rev.easing
	}

	if fwd.durationMS <= 0 {
		return 1, fwd.easing
	}
	if !a.repeatForever && elapsed >= fwd.durationMS*float32(a.repetitions) {
		return 1, fwd.easing
	}
	return float32(math.Mod(float64(elapsed), float64(fwd.durationMS))) / fwd.durationMS, fwd.easing
}

// LinearProgress returns the scalar position at now before easing is applied.
// Settled machines report their origin.
func (a *Animation[Tm]) LinearProgress(now Tm) float32 {
	if a.active == nil {
		return a.origin
	}
	f, _ := a.unitProgress(now)
	return a.origin + f*(a.active.destination-a.origin)
}

// Progress returns the eased scalar position at now. For a fixed
// configuration it is a pure function of origin, destination, start time and
// now.
func (a *Animation[Tm]) Progress(now Tm) float32 {
	if a.active == nil {
		return a.origin
	}
	f, e := a.unitProgress(now)
	return a.origin + e.Value(f)*(a.active.destination-a.origin)
}

// InProgress reports whether the animation is still moving at now.
// Zero-range and zero-duration transitions complete immediately.
func (a *Animation[Tm]) InProgress(now Tm) bool {
	if a.active == nil || a.active.destination == a.origin {
		return false
	}
	if a.repeatForever {
		return true
	}
	fwd, rev := a.legSettings()
	total := fwd.durationMS * float32(a.repetitions)
	if a.autoReverse {
		total = (fwd.durationMS + rev.durationMS) * float32(a.repetitions)
	}
	return a.elapsed(now) < total
}
