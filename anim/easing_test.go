package anim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/animtx/anim"
)

var builtinEasings = map[string]anim.Easing{
	"linear":           anim.Linear,
	"easeIn":           anim.EaseIn,
	"easeOut":          anim.EaseOut,
	"easeInOut":        anim.EaseInOut,
	"easeInQuad":       anim.EaseInQuad,
	"easeOutQuad":      anim.EaseOutQuad,
	"easeInOutQuad":    anim.EaseInOutQuad,
	"easeInCubic":      anim.EaseInCubic,
	"easeOutCubic":     anim.EaseOutCubic,
	"easeInOutCubic":   anim.EaseInOutCubic,
	"easeInQuart":      anim.EaseInQuart,
	"easeOutQuart":     anim.EaseOutQuart,
	"easeInOutQuart":   anim.EaseInOutQuart,
	"easeInQuint":      anim.EaseInQuint,
	"easeOutQuint":     anim.EaseOutQuint,
	"easeInOutQuint":   anim.EaseInOutQuint,
	"easeInExpo":       anim.EaseInExpo,
	"easeOutExpo":      anim.EaseOutExpo,
	"easeInOutExpo":    anim.EaseInOutExpo,
	"easeInCirc":       anim.EaseInCirc,
	"easeOutCirc":      anim.EaseOutCirc,
	"easeInOutCirc":    anim.EaseInOutCirc,
	"easeInBack":       anim.EaseInBack,
	"easeOutBack":      anim.EaseOutBack,
	"easeInOutBack":    anim.EaseInOutBack,
	"easeInElastic":    anim.EaseInElastic,
	"easeOutElastic":   anim.EaseOutElastic,
	"easeInOutElastic": anim.EaseInOutElastic,
	"easeInBounce":     anim.EaseInBounce,
	"easeOutBounce":    anim.EaseOutBounce,
	"easeInOutBounce":  anim.EaseInOutBounce,
}

func TestBuiltinCurvesHitEndpoints(t *testing.T) {
	for name, e := range builtinEasings {
		assert.InDelta(t, 0.0, e.Value(0), 0.01, "%s at 0", name)
		assert.InDelta(t, 1.0, e.Value(1), 0.01, "%s at 1", name)
	}
}

func TestLinearIsIdentity(t *testing.T) {
	for _, x := range []float32{0, 0.25, 0.5, 0.75, 1} {
		require.Equal(t, x, anim.Linear.Value(x))
	}
}

func TestBackOvershoots(t *testing.T) {
	// Overshoot past the destination is the whole point of the back curve.
	assert.Greater(t, anim.EaseOutBack.Value(0.5), float32(1))
	assert.Less(t, anim.EaseInBack.Value(0.5), float32(0))
}

func TestCustomDefersToCallable(t *testing.T) {
	doubler := anim.Custom(func(x float32) float32 { return x * 2 })
	require.Equal(t, float32(1.4), doubler.Value(0.7))
	require.Equal(t, "custom", doubler.String())
}

func TestParseEasing(t *testing.T) {
	for name, want := range builtinEasings {
		got, err := anim.ParseEasing(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	got, err := anim.ParseEasing("EASEINOUT")
	require.NoError(t, err)
	assert.Equal(t, anim.EaseInOut, got)

	_, err = anim.ParseEasing("wobble")
	require.Error(t, err)
}
