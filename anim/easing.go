package anim

import (
	"fmt"
	"strings"

	"github.com/fogleman/ease"
)

type curve int

const (
	curveLinear curve = iota
	curveEaseIn
	curveEaseOut
	curveEaseInOut
	curveEaseInQuad
	curveEaseOutQuad
	curveEaseInOutQuad
	curveEaseInCubic
	curveEaseOutCubic
	curveEaseInOutCubic
	curveEaseInQuart
	curveEaseOutQuart
	curveEaseInOutQuart
	curveEaseInQuint
	curveEaseOutQuint
	curveEaseInOutQuint
	curveEaseInExpo
	curveEaseOutExpo
	curveEaseInOutExpo
	curveEaseInCirc
	curveEaseOutCirc
	curveEaseInOutCirc
	curveEaseInBack
	curveEaseOutBack
	curveEaseInOutBack
	curveEaseInElastic
	curveEaseOutElastic
	curveEaseInOutElastic
	curveEaseInBounce
	curveEaseOutBounce
	curveEaseInOutBounce
	curveCustom
)

// An Easing bends linear unit progress into a motion curve. The built-in
// curves map [0,1] to [0,1]; back and elastic curves transiently overshoot
// that range to produce spring-like motion. The zero value is Linear.
type Easing struct {
	curve  curve
	custom func(float32) float32
}

var (
	Linear            = Easing{curve: curveLinear}
	EaseIn            = Easing{curve: curveEaseIn}
	EaseOut           = Easing{curve: curveEaseOut}
	EaseInOut         = Easing{curve: curveEaseInOut}
	EaseInQuad        = Easing{curve: curveEaseInQuad}
	EaseOutQuad       = Easing{curve: curveEaseOutQuad}
	EaseInOutQuad     = Easing{curve: curveEaseInOutQuad}
	EaseInCubic       = Easing{curve: curveEaseInCubic}
	EaseOutCubic      = Easing{curve: curveEaseOutCubic}
	EaseInOutCubic    = Easing{curve: curveEaseInOutCubic}
	EaseInQuart       = Easing{curve: curveEaseInQuart}
	EaseOutQuart      = Easing{curve: curveEaseOutQuart}
	EaseInOutQuart    = Easing{curve: curveEaseInOutQuart}
	EaseInQuint       = Easing{curve: curveEaseInQuint}
	EaseOutQuint      = Easing{curve: curveEaseOutQuint}
	EaseInOutQuint    = Easing{curve: curveEaseInOutQuint}
	EaseInExpo        = Easing{curve: curveEaseInExpo}
	EaseOutExpo       = Easing{curve: curveEaseOutExpo}
	EaseInOutExpo     = Easing{curve: curveEaseInOutExpo}
	EaseInCirc        = Easing{curve: curveEaseInCirc}
	EaseOutCirc       = Easing{curve: curveEaseOutCirc}
	EaseInOutCirc     = Easing{curve: curveEaseInOutCirc}
	EaseInBack        = Easing{curve: curveEaseInBack}
	EaseOutBack       = Easing{curve: curveEaseOutBack}
	EaseInOutBack     = Easing{curve: curveEaseInOutBack}
	EaseInElastic     = Easing{curve: curveEaseInElastic}
	EaseOutElastic    = Easing{curve: curveEaseOutElastic}
	EaseInOutElastic  = Easing{curve: curveEaseInOutElastic}
	EaseInBounce      = Easing{curve: curveEaseInBounce}
	EaseOutBounce     = Easing{curve: curveEaseOutBounce}
	EaseInOutBounce   = Easing{curve: curveEaseInOutBounce}
)

// Custom wraps a caller-supplied unit curve. The function is trusted as-is;
// no validation is applied.
func Custom(fn func(float32) float32) Easing {
	return Easing{curve: curveCustom, custom: fn}
}

var curveFuncs = [...]func(float64) float64{
	curveLinear:           ease.Linear,
	curveEaseIn:           ease.InSine,
	curveEaseOut:          ease.OutSine,
	curveEaseInOut:        ease.InOutSine,
	curveEaseInQuad:       ease.InQuad,
	curveEaseOutQuad:      ease.OutQuad,
	curveEaseInOutQuad:    ease.InOutQuad,
	curveEaseInCubic:      ease.InCubic,
	curveEaseOutCubic:     ease.OutCubic,
	curveEaseInOutCubic:   ease.InOutCubic,
	curveEaseInQuart:      ease.InQuart,
	curveEaseOutQuart:     ease.OutQuart,
	curveEaseInOutQuart:   ease.InOutQuart,
	curveEaseInQuint:      ease.InQuint,
	curveEaseOutQuint:     ease.OutQuint,
	curveEaseInOutQuint:   ease.InOutQuint,
	curveEaseInExpo:       ease.InExpo,
	curveEaseOutExpo:      ease.OutExpo,
	curveEaseInOutExpo:    ease.InOutExpo,
	curveEaseInCirc:       ease.InCirc,
	curveEaseOutCirc:      ease.OutCirc,
	curveEaseInOutCirc:    ease.InOutCirc,
	curveEaseInBack:       ease.InBack,
	curveEaseOutBack:      ease.OutBack,
	curveEaseInOutBack:    ease.InOutBack,
	curveEaseInElastic:    ease.InElastic,
	curveEaseOutElastic:   ease.OutElastic,
	curveEaseInOutElastic: ease.InOutElastic,
	curveEaseInBounce:     ease.InBounce,
	curveEaseOutBounce:    ease.OutBounce,
	curveEaseInOutBounce:  ease.InOutBounce,
}

var curveNames = [...]string{
	curveLinear:           "linear",
	curveEaseIn:           "easeIn",
	curveEaseOut:          "easeOut",
	curveEaseInOut:        "easeInOut",
	curveEaseInQuad:       "easeInQuad",
	curveEaseOutQuad:      "easeOutQuad",
	curveEaseInOutQuad:    "easeInOutQuad",
	curveEaseInCubic:      "easeInCubic",
	curveEaseOutCubic:     "easeOutCubic",
	curveEaseInOutCubic:   "easeInOutCubic",
	curveEaseInQuart:      "easeInQuart",
	curveEaseOutQuart:     "easeOutQuart",
	curveEaseInOutQuart:   "easeInOutQuart",
	curveEaseInQuint:      "easeInQuint",
	curveEaseOutQuint:     "easeOutQuint",
	curveEaseInOutQuint:   "easeInOutQuint",
	curveEaseInExpo:       "easeInExpo",
	curveEaseOutExpo:      "easeOutExpo",
	curveEaseInOutExpo:    "easeInOutExpo",
	curveEaseInCirc:       "easeInCirc",
	curveEaseOutCirc:      "easeOutCirc",
	curveEaseInOutCirc:    "easeInOutCirc",
	curveEaseInBack:       "easeInBack",
	curveEaseOutBack:      "easeOutBack",
	curveEaseInOutBack:    "easeInOutBack",
	curveEaseInElastic:    "easeInElastic",
	curveEaseOutElastic:   "easeOutElastic",
	curveEaseInOutElastic: "easeInOutElastic",
	curveEaseInBounce:     "easeInBounce",
	curveEaseOutBounce:    "easeOutBounce",
	curveEaseInOutBounce:  "easeInOutBounce",
	curveCustom:           "custom",
}

// Value evaluates the curve at x. Pure and total; x outside [0,1] is
// evaluated as-is, callers clamp upstream where strict bounding matters.
func (e Easing) Value(x float32) float32 {
	if e.curve == curveCustom {
		if e.custom == nil {
			return x
		}
		return e.custom(x)
	}
	return float32(curveFuncs[e.curve](float64(x)))
}

func (e Easing) String() string {
	return curveNames[e.curve]
}

// ParseEasing resolves a built-in curve by its case-insensitive name, as used
// in configuration files.
func ParseEasing(name string) (Easing, error) {
	for c, n := range curveNames {
		if curve(c) == curveCustom {
			continue
		}
		if strings.EqualFold(n, name) {
			return Easing{curve: curve(c)}, nil
		}
	}
	return Easing{}, fmt.Errorf("unknown easing %q", name)
}
