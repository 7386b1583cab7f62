package anim

// Transitionable constrains the domain types Animated can drive: a stable
// scalar projection plus comparability for no-op detection.
type Transitionable interface {
	FloatRepresentable
	comparable
}

// Animated associates a domain value with a scalar transition state machine.
// The value can be anything reducible to a position on the float axis (a
// bool, an enum, a float); the machine animates the position, and callers
// reconstruct the rendered value from the progress ratio.
//
// An Animated expects exclusive access during Transition calls and shared
// read-only access while sampling. It holds no locks and no timers.
type Animated[T Transitionable, Tm AnimationTime[Tm]] struct {
	// Value is the most recently requested domain value.
	Value T

	previous  T
	animation Animation[Tm]
}

// New returns an Animated settled at value with the default configuration.
func New[T Transitionable, Tm AnimationTime[Tm]](value T) *Animated[T, Tm] {
	return &Animated[T, Tm]{
		Value:     value,
		previous:  value,
		animation: *NewAnimation[Tm](value.FloatValue()),
	}
}

// Duration sets the forward duration in milliseconds.
func (a *Animated[T, Tm]) Duration(ms float32) *Animated[T, Tm] {
	a.animation.Duration(ms)
	return a
}

// Easing sets the forward easing curve.
func (a *Animated[T, Tm]) Easing(e Easing) *Animated[T, Tm] {
	a.animation.Easing(e)
	return a
}

// Delay holds each transition at its origin for ms milliseconds.
func (a *Animated[T, Tm]) Delay(ms float32) *Animated[T, Tm] {
	a.animation.Delay(ms)
	return a
}

// Repeat plays each transition count times.
func (a *Animated[T, Tm]) Repeat(count uint32) *Animated[T, Tm] {
	a.animation.Repeat(count)
	return a
}

// RepeatForever loops each transition until interrupted.
func (a *Animated[T, Tm]) RepeatForever() *Animated[T, Tm] {
	a.animation.RepeatForever()
	return a
}

// AutoReverse plays each forward leg backward before repeating.
func (a *Animated[T, Tm]) AutoReverse() *Animated[T, Tm] {
	a.animation.AutoReverse()
	return a
}

// AsymmetricDuration sets the duration used while moving toward a smaller
// scalar value.
func (a *Animated[T, Tm]) AsymmetricDuration(ms float32) *Animated[T, Tm] {
	a.animation.AsymmetricDuration(ms)
	return a
}

// AsymmetricEasing sets the easing used while moving toward a smaller scalar
// value.
func (a *Animated[T, Tm]) AsymmetricEasing(e Easing) *Animated[T, Tm] {
	a.animation.AsymmetricEasing(e)
	return a
}

// AutoStart transitions to value immediately, for animations that should be
// moving from the moment they are built.
func (a *Animated[T, Tm]) AutoStart(value T, now Tm) *Animated[T, Tm] {
	a.Transition(value, now)
	return a
}

// Transition begins animating toward value. Requesting the value that is
// already current is a no-op: it neither resets progress nor restarts timing.
func (a *Animated[T, Tm]) Transition(value T, now Tm) {
	if value == a.Value {
		return
	}
	a.previous = a.Value
	a.Value = value
	a.animation.Transition(value.FloatValue(), now)
}

// TransitionInstantaneous snaps to value without animating. Used for
// programmatic resets that must not tween.
func (a *Animated[T, Tm]) TransitionInstantaneous(value T, now Tm) {
	a.previous = value
	a.Value = value
	a.animation.TransitionInstantaneous(value.FloatValue())
}

// InProgress reports whether the value is still moving at now.
func (a *Animated[T, Tm]) InProgress(now Tm) bool {
	return a.animation.InProgress(now)
}

// Progress returns the eased scalar position at now, in the units of the
// value's float projection. For Bool-backed animations this is a unit
// fraction between 0 (false) and 1 (true).
func (a *Animated[T, Tm]) Progress(now Tm) float32 {
	return a.animation.Progress(now)
}

// AnimateFloat interpolates between two floats pinned to scalar positions 0
// and 1. It is the common sampling call for Bool-backed animations, e.g.
// animating a height between collapsed and expanded.
func (a *Animated[T, Tm]) AnimateFloat(zero, one float32, now Tm) float32 {
	return InterpolateFloat(zero, one, a.animation.Progress(now))
}

// blendRatio is the eased progress normalized between the previous and
// current value's projections: 0 is fully the previous value, 1 fully the
// current one. Normalizing against the previous value rather than the raw
// unit fraction keeps mapped values continuous across interrupts.
func (a *Animated[T, Tm]) blendRatio(now Tm) float32 {
	from := a.previous.FloatValue()
	to := a.Value.FloatValue()
	if to == from {
		return 1
	}
	return (a.animation.Progress(now) - from) / (to - from)
}

// Animate maps the previous and current domain values through mapFn and
// blends the results. The indirection lets discrete types with no
// interpolation of their own (bools, enums) drive any Interpolable output;
// continuity is reconstructed purely from the scalar progress.
//
// This is a package function because the interpolable result needs its own
// type parameter, which Go methods cannot introduce.
func Animate[T Transitionable, Tm AnimationTime[Tm], I Interpolable[I]](a *Animated[T, Tm], mapFn func(T) I, now Tm) I {
	return mapFn(a.previous).Interpolated(mapFn(a.Value), a.blendRatio(now))
}
