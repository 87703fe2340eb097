package stream

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/motiontx/motion"
)

func TestSweepLightsLeadingPixel(t *testing.T) {
	s := NewSweep(xmasGradient, 6.0)
	base := s.CalculateFrame(0).pixels[0]

	// the first pixel's ramp-in completes after 0.35s
	f := s.CalculateFrame(0.35)
	if d := f.pixels[0].DistanceRgb(base); d < 0.01 {
		t.Errorf("leading pixel did not brighten, colour drift %v", d)
	}
}

func TestSweepRestartsWhenFinished(t *testing.T) {
	s := NewSweep(xmasGradient, 1.0)
	s.CalculateFrame(100)
	for i, m := range s.motions {
		if m.IsFinished() {
			t.Fatalf("motion %d still finished, sweep did not restart", i)
		}
	}
}

func TestTwinkleSparklesFadeOutAndAreReaped(t *testing.T) {
	back, _ := colorful.Hex("#000005")
	tw := NewTwinkle(1, back)

	for i := 0; i < 10; i++ {
		tw.CalculateFrame(0.05)
	}
	if len(tw.sparkles) == 0 {
		t.Fatal("no sparkles spawned with a certain chance")
	}

	var out *motion.Output[colorful.Color]
	for _, o := range tw.sparkles {
		out = o
		break
	}
	for i := 0; i < 30; i++ {
		tw.CalculateFrame(0.1)
	}
	if out.IsConnected() {
		t.Error("sparkle outlived its fade, should have been reaped")
	}
}

func TestStreakParticleLifecycle(t *testing.T) {
	back, _ := colorful.Hex("#000005")
	s := NewStreak(1, back)

	s.CalculateFrame(0.05)
	if s.particles.Len() == 0 {
		t.Fatal("no particle spawned with a certain chance")
	}

	first, _ := s.particles.Front().Value.(*streakParticle)
	for i := 0; i < 80; i++ {
		s.CalculateFrame(0.1)
	}
	if first.live() {
		t.Error("particle should have finished its travel and been reaped")
	}
}

func TestControllerCrossFade(t *testing.T) {
	c := NewController(time.Hour, 0.5)
	if _, ok := c.animation.(*Sweep); !ok {
		t.Fatalf("initial animation = %T, want *Sweep", c.animation)
	}

	c.CycleAnimation()
	c.CalculateFrame(0.1)
	if c.nextAnimation == nil {
		t.Fatal("cross-fade did not start")
	}

	for i := 0; i < 10; i++ {
		c.CalculateFrame(0.1)
	}
	if c.nextAnimation != nil {
		t.Error("cross-fade never completed")
	}
	if _, ok := c.animation.(*Twinkle); !ok {
		t.Errorf("animation = %T, want *Twinkle after the fade", c.animation)
	}
}
