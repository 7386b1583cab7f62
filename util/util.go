package util

import (
	"math/rand"

	"github.com/matt-g-everett/animtx/anim"
)

// RandomiseSaturation picks a random saturation between min and max.
func RandomiseSaturation(min float64, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// GenerateLut builds a symmetric rise-and-fall look-up table shaped by the
// given easing curve: the first half eases from 0 up, the second half mirrors
// it back down.
func GenerateLut(length int, easing anim.Easing) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(easing.Value(float32(float64(i) * increment)))
		lut[i] = value
		lut[j] = value
	}
	return lut
}
