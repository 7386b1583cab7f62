package anim

// FloatRepresentable projects a domain value onto the scalar axis the state
// machine animates over. The projection decides direction and magnitude of a
// transition; it is never rendered directly, so the actual numbers are
// arbitrary as long as they are stable and deterministic.
type FloatRepresentable interface {
	FloatValue() float32
}

// Bool is a FloatRepresentable bool: false sits at 0, true at 1.
type Bool bool

// FloatValue implements FloatRepresentable.
func (b Bool) FloatValue() float32 {
	if b {
		return 1
	}
	return 0
}

// Float is a FloatRepresentable and Interpolable float32.
type Float float32

// FloatValue implements FloatRepresentable.
func (f Float) FloatValue() float32 {
	return float32(f)
}

// Interpolated implements Interpolable.
func (f Float) Interpolated(other Float, ratio float32) Float {
	return Float(InterpolateFloat(float32(f), float32(other), ratio))
}

// Interpolable is any render-facing value that can blend toward another value
// of its own type. Ratios outside [0,1] must extrapolate sanely; overshooting
// easing curves depend on it.
type Interpolable[I any] interface {
	Interpolated(other I, ratio float32) I
}

// InterpolateFloat blends from toward to. The ratio is deliberately not
// clamped.
func InterpolateFloat(from, to, ratio float32) float32 {
	return from*(1-ratio) + to*ratio
}
