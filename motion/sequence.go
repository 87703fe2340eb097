package motion

import "math"

// A Sequence is an ordered concatenation of phrases with cumulative time
// offsets. It is itself a pure producer: queries before zero clamp to the
// first phrase's start value and queries past the end clamp to the final
// phrase's end value, however extreme the time.
type Sequence[T any] struct {
	initial  T
	end      T
	phrases  []Phrase[T]
	duration float64
	lerp     LerpFunc[T]
}

// NewSequence creates a Sequence that produces initial until phrases are
// appended. lerp is used by RampTo and RampToEase to interpolate values.
func NewSequence[T any](initial T, lerp LerpFunc[T]) *Sequence[T] {
	return &Sequence[T]{initial: initial, end: initial, lerp: lerp}
}

// Set jumps the sequence's current end value to v without consuming time.
func (s *Sequence[T]) Set(v T) *Sequence[T] {
	if len(s.phrases) == 0 {
		s.initial = v
	} else {
		s.phrases = append(s.phrases, holdPhrase[T]{value: v})
	}
	s.end = v
	return s
}

// Hold keeps the current end value steady for duration seconds.
func (s *Sequence[T]) Hold(duration float64) *Sequence[T] {
	s.phrases = append(s.phrases, holdPhrase[T]{value: s.end, duration: duration})
	s.duration += duration
	return s
}

// RampTo interpolates linearly from the current end value to v over
// duration seconds.
func (s *Sequence[T]) RampTo(v T, duration float64) *Sequence[T] {
	return s.RampToEase(v, duration, nil)
}

// RampToEase interpolates from the current end value to v over duration
// seconds, shaping the time fraction with easing. A nil easing is linear.
func (s *Sequence[T]) RampToEase(v T, duration float64, easing EaseFunc) *Sequence[T] {
	s.phrases = append(s.phrases, rampPhrase[T]{
		start:    s.end,
		end:      v,
		duration: duration,
		lerp:     s.lerp,
		easing:   easing,
	})
	s.end = v
	s.duration += duration
	return s
}

// Duration returns the total length of the sequence in seconds.
func (s *Sequence[T]) Duration() float64 { return s.duration }

// Value returns the sequence's value at time t. Times below zero clamp to
// the start value and times at or past the duration clamp to the end value.
func (s *Sequence[T]) Value(t float64) T {
	if len(s.phrases) == 0 {
		return s.initial
	}
	offset := 0.0
	for _, p := range s.phrases {
		d := p.Duration()
		if t < offset+d {
			return p.Value(t - offset)
		}
		offset += d
	}
	return s.end
}

// WrapTime reduces t modulo the sequence duration for looped playback. The
// result lies in [0, duration) and is periodic for all real t, including
// magnitudes many orders larger than the duration; math.Mod on float64 keeps
// the reduction exact to the representable precision of t. A sequence with
// no duration never loops and WrapTime returns 0.
func (s *Sequence[T]) WrapTime(t float64) float64 {
	if s.duration <= 0 {
		return 0
	}
	m := math.Mod(t, s.duration)
	if m < 0 {
		m += s.duration
	}
	return m
}

// ValueWrapped returns the value at t reduced into one loop of the
// sequence.
func (s *Sequence[T]) ValueWrapped(t float64) T {
	return s.Value(s.WrapTime(t))
}
