package anim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/animtx/anim"
)

// phase is a discrete domain type with no interpolation of its own.
type phase int

const (
	phaseIdle phase = iota
	phaseLoading
	phaseDone
)

func (p phase) FloatValue() float32 {
	return float32(p)
}

func TestTransitionSameValueIsNoOp(t *testing.T) {
	a := anim.New[anim.Float, millis](0).Duration(1000).Easing(anim.Linear)
	a.Transition(5, 0)

	// Requesting the identical value must not restart timing.
	a.Transition(5, 400)
	require.InDelta(t, 2.5, a.Progress(500), 1e-5)
	require.InDelta(t, 5.0, a.Progress(1000), 1e-5)
	assert.False(t, a.InProgress(1000))
}

func TestAnimateFloatBool(t *testing.T) {
	a := anim.New[anim.Bool, millis](false).Duration(1000).Easing(anim.Linear)

	a.Transition(true, 0)
	require.InDelta(t, 155.0, a.AnimateFloat(10, 300, 500), 1e-3)
	require.InDelta(t, 300.0, a.AnimateFloat(10, 300, 1000), 1e-3)

	// Toggling back walks the same range down.
	a.Transition(false, 2000)
	require.InDelta(t, 155.0, a.AnimateFloat(10, 300, 2500), 1e-3)
	require.InDelta(t, 10.0, a.AnimateFloat(10, 300, 3000), 1e-3)
}

func TestDefaultsAre100msEaseInOut(t *testing.T) {
	a := anim.New[anim.Bool, millis](false)
	a.Transition(true, 0)

	require.InDelta(t, float64(anim.EaseInOut.Value(0.5)), float64(a.Progress(50)), 1e-5)
	require.InDelta(t, 1.0, a.Progress(100), 1e-5)
	assert.False(t, a.InProgress(100))
}

func TestAnimateMapsDomainValues(t *testing.T) {
	widths := func(p phase) anim.Float {
		switch p {
		case phaseLoading:
			return 120
		case phaseDone:
			return 400
		default:
			return 0
		}
	}

	a := anim.New[phase, millis](phaseIdle).Duration(1000).Easing(anim.Linear)
	a.Transition(phaseDone, 0)

	require.InDelta(t, 200.0, float64(anim.Animate(a, widths, 500)), 1e-3)
	require.InDelta(t, 400.0, float64(anim.Animate(a, widths, 1000)), 1e-3)
}

func TestAnimateStaysContinuousAcrossInterrupt(t *testing.T) {
	widths := func(b anim.Bool) anim.Float {
		if b {
			return 300
		}
		return 100
	}

	a := anim.New[anim.Bool, millis](false).Duration(1000).Easing(anim.Linear)
	a.Transition(true, 0)
	require.InDelta(t, 200.0, float64(anim.Animate(a, widths, 500)), 1e-3)

	// Reverse mid-flight: the mapped value must not jump.
	a.Transition(false, 500)
	require.InDelta(t, 200.0, float64(anim.Animate(a, widths, 500)), 1e-3)
	require.InDelta(t, 100.0, float64(anim.Animate(a, widths, 1500)), 1e-3)
}

func TestAutoStart(t *testing.T) {
	a := anim.New[anim.Bool, millis](false).
		Duration(1000).
		Easing(anim.Linear).
		AutoStart(true, 0)

	assert.True(t, a.InProgress(500))
	require.InDelta(t, 0.5, a.Progress(500), 1e-5)
	assert.Equal(t, anim.Bool(true), a.Value)
}

func TestTransitionInstantaneousSnaps(t *testing.T) {
	widths := func(b anim.Bool) anim.Float {
		if b {
			return 300
		}
		return 100
	}

	a := anim.New[anim.Bool, millis](false).Duration(1000).Easing(anim.Linear)
	a.Transition(true, 0)
	require.True(t, a.InProgress(200))

	a.TransitionInstantaneous(false, 200)
	assert.False(t, a.InProgress(200))
	require.InDelta(t, 100.0, float64(anim.Animate(a, widths, 200)), 1e-3)
	require.InDelta(t, 100.0, float64(anim.Animate(a, widths, 5000)), 1e-3)
}

func TestRepeatForeverBoolPulse(t *testing.T) {
	a := anim.New[anim.Bool, millis](false).
		Duration(500).
		Easing(anim.Linear).
		RepeatForever().
		AutoReverse().
		AutoStart(true, 0)

	require.InDelta(t, 0.5, a.Progress(250), 1e-3)  // rising
	require.InDelta(t, 1.0, a.Progress(500), 1e-3)  // peak
	require.InDelta(t, 0.5, a.Progress(750), 1e-3)  // falling
	require.InDelta(t, 0.0, a.Progress(1000), 1e-3) // trough, next cycle
	assert.True(t, a.InProgress(100000))
}
