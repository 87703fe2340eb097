package stream

import (
	"container/list"
	"math"
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/motiontx/motion"
	"github.com/matt-g-everett/motiontx/util"
)

type streakParticle struct {
	colour colorful.Color
	pos    *motion.Output[float64]
	gain   *motion.Output[float64]
	length float64
	lut    []float64
}

func newStreakParticle(tl *motion.Timeline) *streakParticle {
	p := new(streakParticle)
	p.colour = colorful.Color{R: 0.45, G: -0.54, B: 0.02}
	p.length = 10
	p.lut = util.GenerateLut(int(p.length))

	travel := 4.0 + rand.Float64()*2.0

	p.pos = motion.NewOutput(-p.length)
	posSeq := motion.NewSequence(-p.length, motion.LerpFloat64).
		RampTo(numPixels, travel)
	motion.Apply(tl, p.pos, posSeq).SetRemoveOnFinish(true)

	p.gain = motion.NewOutput(0.0)
	gainSeq := motion.NewSequence(0.0, motion.LerpFloat64).
		RampToEase(1.0, travel/2, ease.InOutQuad).
		RampToEase(0.0, travel/2, ease.InOutQuad)
	motion.Apply(tl, p.gain, gainSeq).SetRemoveOnFinish(true)

	return p
}

func (p *streakParticle) live() bool {
	return p.pos.IsConnected()
}

func (p *streakParticle) addStreak(f *Frame) {
	bias := p.gain.Value()
	start := int(math.Ceil(p.pos.Value()))
	for i := 0; i < len(p.lut); i++ {
		pixel := start + i
		if pixel < 0 || pixel >= numPixels {
			continue
		}
		f.pixels[pixel] = f.pixels[pixel].BlendHcl(p.colour, bias*p.lut[i])
	}
}

// A Streak is an Animation that creates streaks across the tree that fade
// in then out while travelling.
type Streak struct {
	backColour   colorful.Color
	streakChance int32
	timeline     *motion.Timeline
	particles    *list.List
}

// NewStreak creates an instance of a Streak object.
func NewStreak(streakChance int32, backColour colorful.Color) *Streak {
	s := new(Streak)
	s.streakChance = streakChance
	s.backColour = backColour
	s.timeline = motion.NewTimeline()
	s.particles = list.New()

	return s
}

// CalculateFrame creates a new Frame instance.
func (s *Streak) CalculateFrame(dt float64) *Frame {
	s.timeline.Step(dt)

	f := NewFrame()
	f.Fill(s.backColour)

	toDelete := make([]*list.Element, 0, s.particles.Len())
	for e := s.particles.Front(); e != nil; e = e.Next() {
		particle, _ := e.Value.(*streakParticle)
		if particle.live() {
			particle.addStreak(f)
		} else {
			toDelete = append(toDelete, e)
		}
	}

	if rand.Int31n(s.streakChance) == 0 {
		s.particles.PushBack(newStreakParticle(s.timeline))
	}

	for _, e := range toDelete {
		s.particles.Remove(e)
	}

	return f
}
