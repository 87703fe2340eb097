package stream

import (
	"log"
	"time"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/motiontx/motion"
)

var xmasGradient = GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},   // Pink
	{87.0, 0.14},  // Red
	{88.0, 0.28},  // Orange
	{98.0, 0.42},  // Yellow
	{180.0, 0.56}, // Green
	{190.0, 0.70}, // Turquiose
	{320.0, 0.84}, // Blue
	{328.0, 0.91}, // Violet
	{360.0, 1.0},  // Pink wrap
}

// Controller that manages animations, cross-fading between them on a cycle.
// The fade weight is itself a motion on a private timeline, so the blend
// tracks real frame time rather than a fixed per-frame increment.
type Controller struct {
	animation     Animation
	nextAnimation Animation
	animationTime time.Duration
	fadeSecs      float64
	elapsed       float64

	fadeTimeline *motion.Timeline
	fade         *motion.Output[float64]

	cycle chan struct{}
}

// NewController creates an instance of a Controller.
func NewController(animationTime time.Duration, fadeSecs float64) *Controller {
	c := new(Controller)
	c.animation = NewSweep(xmasGradient, 6.0)
	c.nextAnimation = nil
	c.animationTime = animationTime
	c.fadeSecs = fadeSecs
	c.fadeTimeline = motion.NewTimeline()
	c.cycle = make(chan struct{}, 1)

	return c
}

// CycleAnimation requests a switch to the next animation in the rotation.
// Safe to call from other goroutines; the switch happens on the next frame.
func (c *Controller) CycleAnimation() {
	select {
	case c.cycle <- struct{}{}:
	default:
	}
}

func (c *Controller) cycleAnimation() {
	if c.nextAnimation != nil {
		return
	}

	backColour, _ := colorful.Hex("#000005")
	switch c.animation.(type) {
	case *Sweep:
		c.nextAnimation = NewTwinkle(3, backColour)
	case *Twinkle:
		c.nextAnimation = NewStreak(40, backColour)
	default:
		c.nextAnimation = NewSweep(xmasGradient, 6.0)
	}
	log.Printf("Fading to %T", c.nextAnimation)

	c.fade = motion.NewOutput(0.0)
	seq := motion.NewSequence(0.0, motion.LerpFloat64).
		RampToEase(1.0, c.fadeSecs, ease.InOutQuad)
	motion.Apply(c.fadeTimeline, c.fade, seq).SetRemoveOnFinish(true)
}

// CalculateFrame renders the current animation, blending toward the next
// one while a cross-fade is in progress.
func (c *Controller) CalculateFrame(dt float64) *Frame {
	select {
	case <-c.cycle:
		c.cycleAnimation()
	default:
	}

	c.elapsed += dt
	if c.elapsed >= c.animationTime.Seconds() {
		c.elapsed = 0
		c.cycleAnimation()
	}

	var f *Frame
	if c.nextAnimation != nil {
		c.fadeTimeline.Step(dt)
		f1 := c.animation.CalculateFrame(dt)
		f2 := c.nextAnimation.CalculateFrame(dt)
		f = f1.InterpolateFrame(f2, c.fade.Value())

		if !c.fade.IsConnected() {
			// fade motion finished and was reaped
			c.animation = c.nextAnimation
			c.nextAnimation = nil
			c.fade = nil
		}
	} else {
		f = c.animation.CalculateFrame(dt)
	}

	return f
}
