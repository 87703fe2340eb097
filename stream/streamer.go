package stream

import (
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	config     Config
	client     mqtt.Client
	controller *Controller
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.controller = NewController(
		time.Duration(config.AnimationSecs*float64(time.Second)),
		config.FadeSecs)

	return s
}

// Subscribe registers for control messages that skip to the next animation.
func (s *Streamer) Subscribe() {
	token := s.client.Subscribe(s.config.Mqtt.Topics.Control, 0, s.handleControlMessage)
	if token.Wait() && token.Error() != nil {
		log.Println(token.Error())
	}
}

func (s *Streamer) handleControlMessage(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Control message on %s: %s", msg.Topic(), msg.Payload())
	s.controller.CycleAnimation()
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(dt float64) {
	f := s.controller.CalculateFrame(dt)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// Run causes the Streamer to send Frames continuously at the configured
// frame rate, stepping the animations by the measured frame interval.
func (s *Streamer) Run() {
	interval := time.Duration(float64(time.Second) / s.config.FrameRate)
	publishTimer := time.NewTicker(interval)
	last := time.Now()
	for {
		now := <-publishTimer.C
		dt := now.Sub(last).Seconds()
		last = now
		s.SendFrame(dt)
	}
}
