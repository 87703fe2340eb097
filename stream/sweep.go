package stream

import (
	"github.com/fogleman/ease"

	"github.com/matt-g-everett/motiontx/motion"
)

// A Sweep is an Animation that chases an eased pulse of luminance along the
// strip, colouring each pixel from a gradient by its position.
type Sweep struct {
	gradient GradientTable
	timeline *motion.Timeline
	levels   []motion.Output[float64]
	motions  []*motion.Motion[float64]
}

// NewSweep creates an instance of a Sweep object. sweepSecs is the time the
// pulse takes to travel the whole strip.
func NewSweep(gradient GradientTable, sweepSecs float64) *Sweep {
	s := new(Sweep)
	s.gradient = gradient
	s.timeline = motion.NewTimeline()
	s.levels = make([]motion.Output[float64], numPixels)
	s.motions = make([]*motion.Motion[float64], numPixels)

	stagger := sweepSecs / numPixels
	for i := range s.levels {
		seq := motion.NewSequence(0.0, motion.LerpFloat64).
			Hold(float64(i) * stagger).
			RampToEase(1.0, 0.35, ease.OutQuad).
			RampToEase(0.0, 0.8, ease.InQuad)
		s.motions[i] = motion.Apply(s.timeline, &s.levels[i], seq)
	}

	return s
}

// CalculateFrame creates a new Frame instance.
func (s *Sweep) CalculateFrame(dt float64) *Frame {
	s.timeline.Step(dt)

	f := NewFrame()
	for i := range s.levels {
		pos := float64(i) / numPixels
		lum := 0.02 + 0.4*s.levels[i].Value()
		f.pixels[i] = s.gradient.GetColor(pos, 1.0, lum)
	}

	// restart the chase once every pulse has finished
	finished := true
	for _, m := range s.motions {
		if !m.IsFinished() {
			finished = false
			break
		}
	}
	if finished {
		for _, m := range s.motions {
			m.ResetTime()
		}
	}

	return f
}
