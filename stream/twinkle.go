package stream

import (
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/motiontx/motion"
	"github.com/matt-g-everett/motiontx/util"
)

// A Twinkle is an Animation that fades random sparkles in and out. Each
// sparkle is a colour motion that removes itself once it has faded.
type Twinkle struct {
	backColour    colorful.Color
	sparkleChance int32
	timeline      *motion.Timeline
	sparkles      map[int]*motion.Output[colorful.Color]
}

// NewTwinkle creates an instance of a Twinkle object.
func NewTwinkle(sparkleChance int32, backColour colorful.Color) *Twinkle {
	t := new(Twinkle)
	t.backColour = backColour
	t.sparkleChance = sparkleChance
	t.timeline = motion.NewTimeline()
	t.sparkles = make(map[int]*motion.Output[colorful.Color])

	return t
}

func (t *Twinkle) spawn() {
	i := rand.Intn(numPixels)
	if _, found := t.sparkles[i]; found {
		return
	}

	peak := colorful.Hsv(45, util.RandomiseSaturation(0.1, 0.5), 0.5)
	out := motion.NewOutput(t.backColour)
	seq := motion.NewSequence(t.backColour, motion.LerpColor).
		RampToEase(peak, 0.4, ease.InOutQuad).
		RampToEase(t.backColour, 0.7, ease.InOutQuad)
	motion.Apply(t.timeline, out, seq).SetRemoveOnFinish(true)
	t.sparkles[i] = out
}

// CalculateFrame creates a new Frame instance.
func (t *Twinkle) CalculateFrame(dt float64) *Frame {
	t.timeline.Step(dt)

	f := NewFrame()
	f.Fill(t.backColour)
	for i, out := range t.sparkles {
		if !out.IsConnected() {
			// faded out and reaped by the timeline
			delete(t.sparkles, i)
			continue
		}
		f.pixels[i] = out.Value()
	}

	if rand.Int31n(t.sparkleChance) == 0 {
		t.spawn()
	}

	return f
}
