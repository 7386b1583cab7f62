package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matt-g-everett/animtx/anim"
)

func TestGenerateLutIsSymmetric(t *testing.T) {
	lut := GenerateLut(64, anim.EaseInOutQuad)

	assert.Len(t, lut, 64)
	assert.Equal(t, 0.0, lut[0])
	assert.Equal(t, 0.0, lut[63])
	for i := 0; i < 32; i++ {
		assert.Equal(t, lut[i], lut[63-i], "index %d", i)
	}
	assert.Greater(t, lut[31], lut[0])
}

func TestRandomiseSaturationStaysInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := RandomiseSaturation(0.4, 1.0)
		assert.GreaterOrEqual(t, s, 0.4)
		assert.Less(t, s, 1.0)
	}
}
