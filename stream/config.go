package stream

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/animtx/anim"
)

// Config holds the streamer settings read from YAML.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Strip struct {
		NumPixels   int     `yaml:"numPixels"`
		FrameRateHz float64 `yaml:"frameRateHz"`
	} `yaml:"strip"`
	Crossfade struct {
		DurationMS float32 `yaml:"durationMs"`
		Easing     string  `yaml:"easing"`
	} `yaml:"crossfade"`
	Animation string `yaml:"animation"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c := new(Config)
	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	c.applyDefaults()
	if _, err := c.CrossfadeEasing(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Strip.NumPixels == 0 {
		c.Strip.NumPixels = 500
	}
	if c.Strip.FrameRateHz == 0 {
		c.Strip.FrameRateHz = 30
	}
	if c.Crossfade.DurationMS == 0 {
		c.Crossfade.DurationMS = 5000
	}
	if c.Crossfade.Easing == "" {
		c.Crossfade.Easing = "easeInOut"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if c.Mqtt.Topics.Control == "" {
		c.Mqtt.Topics.Control = "home/xmastree/animation"
	}
	if c.Animation == "" {
		c.Animation = "pulse"
	}
}

// CrossfadeEasing resolves the configured crossfade easing curve.
func (c *Config) CrossfadeEasing() (anim.Easing, error) {
	return anim.ParseEasing(c.Crossfade.Easing)
}
