package anim

import "time"

// AnimationTime is the capability the engine needs from a time source:
// the elapsed milliseconds since an earlier instant of the same type.
// Instants must come from a monotonic source; the engine does not validate
// this, and a clock that runs backwards produces undefined (but non-crashing)
// motion.
type AnimationTime[T any] interface {
	ElapsedSince(earlier T) float32
}

// Instant adapts the system clock to AnimationTime.
type Instant struct {
	time.Time
}

// Now returns the current instant.
func Now() Instant {
	return Instant{time.Now()}
}

// ElapsedSince returns the milliseconds between earlier and i.
func (i Instant) ElapsedSince(earlier Instant) float32 {
	return float32(i.Sub(earlier.Time)) / float32(time.Millisecond)
}

// AddMS returns the instant ms milliseconds after i.
func (i Instant) AddMS(ms float32) Instant {
	return Instant{i.Add(time.Duration(ms * float32(time.Millisecond)))}
}
