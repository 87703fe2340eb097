package motion

import (
	"github.com/lucasb-eyer/go-colorful"
)

// A Phrase produces a value for any time offset within its duration. Value
// must be pure: deterministic for a given time and free of side effects,
// since it is queried once per motion step. Times outside [0, Duration]
// clamp to the boundary values.
type Phrase[T any] interface {
	Value(t float64) T
	Duration() float64
}

// A LerpFunc interpolates between a and b at fraction f, where f is in
// [0, 1].
type LerpFunc[T any] func(a, b T, f float64) T

// An EaseFunc remaps a normalised time fraction in [0, 1]. The functions in
// github.com/fogleman/ease satisfy this type.
type EaseFunc func(f float64) float64

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, f float64) float64 {
	return a + (b-a)*f
}

// LerpColor blends two colours in HCL space, which keeps the transition
// perceptually even on an LED strip.
func LerpColor(a, b colorful.Color, f float64) colorful.Color {
	return a.BlendHcl(b, f).Clamped()
}

// holdPhrase produces a constant value for its duration.
type holdPhrase[T any] struct {
	value    T
	duration float64
}

func (p holdPhrase[T]) Value(float64) T   { return p.value }
func (p holdPhrase[T]) Duration() float64 { return p.duration }

// rampPhrase interpolates from start to end over its duration, optionally
// shaping the time fraction with an easing function.
type rampPhrase[T any] struct {
	start    T
	end      T
	duration float64
	lerp     LerpFunc[T]
	easing   EaseFunc
}

func (p rampPhrase[T]) Value(t float64) T {
	f := 1.0
	if p.duration > 0 {
		f = t / p.duration
		if f < 0 {
			f = 0
		} else if f > 1 {
			f = 1
		}
	}
	if p.easing != nil {
		f = p.easing(f)
	}
	return p.lerp(p.start, p.end, f)
}

func (p rampPhrase[T]) Duration() float64 { return p.duration }
