package stream

import (
	"fmt"
	"log"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/animtx/anim"
)

// Streamer streams RGB data frames to an ledrx device and listens for
// animation switch requests on the control topic.
type Streamer struct {
	client    mqtt.Client
	config    Config
	ctrl      *Controller
	factories map[string]func(now anim.Instant) Animation
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client) (*Streamer, error) {
	s := new(Streamer)
	s.client = client
	s.config = config

	backColour, _ := colorful.Hex("#000005")
	foreColour, _ := colorful.Hex("#808080")
	pixels := config.Strip.NumPixels

	s.factories = map[string]func(anim.Instant) Animation{
		"pulse": func(now anim.Instant) Animation {
			return NewPulse(foreColour, backColour, 4000, pixels, now)
		},
		"twinkle": func(now anim.Instant) Animation {
			return NewTwinkle(400, foreColour, backColour, pixels, now)
		},
		"trail": func(now anim.Instant) Animation {
			return NewTrail(RainbowGradient, 180, 6000, pixels, now)
		},
		"streak": func(now anim.Instant) Animation {
			return NewStreak(40, backColour, pixels, 8000)
		},
	}

	factory, ok := s.factories[config.Animation]
	if !ok {
		return nil, fmt.Errorf("unknown animation %q", config.Animation)
	}
	easing, err := config.CrossfadeEasing()
	if err != nil {
		return nil, err
	}
	s.ctrl = NewController(config.Animation, factory(anim.Now()), config.Crossfade.DurationMS, easing)

	return s, nil
}

// Subscribe registers the control topic handler. Call once connected.
func (s *Streamer) Subscribe() {
	topic := s.config.Mqtt.Topics.Control
	if token := s.client.Subscribe(topic, 1, s.handleControl); token.Wait() && token.Error() != nil {
		log.Printf("subscribe %s: %v", topic, token.Error())
	}
}

func (s *Streamer) handleControl(client mqtt.Client, msg mqtt.Message) {
	name := strings.TrimSpace(string(msg.Payload()))
	factory, ok := s.factories[name]
	if !ok {
		log.Printf("unknown animation %q", name)
		return
	}

	now := anim.Now()
	s.ctrl.SetNext(name, factory(now), now)
	crossfades.Inc()
	log.Printf("crossfading to %s", name)
}

// Status reports the visible animation and whether a crossfade is underway.
func (s *Streamer) Status() (string, bool) {
	return s.ctrl.Status()
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(now anim.Instant) {
	f := s.ctrl.CalculateFrame(now)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		publishErrors.Inc()
		log.Printf("publish: %v", err)
		return
	}
	framesPublished.Inc()
}

// Run causes the Streamer to send Frames continuously.
func (s *Streamer) Run() {
	interval := time.Duration(float64(time.Second) / s.config.Strip.FrameRateHz)
	publishTimer := time.NewTicker(interval)
	for range publishTimer.C {
		s.SendFrame(anim.Now())
	}
}
