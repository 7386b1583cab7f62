package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/animtx/anim"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
mqtt:
  url: tcp://broker:1883
  username: led
  password: secret
  topics:
    stream: home/tree/stream
    control: home/tree/animation
strip:
  numPixels: 250
  frameRateHz: 60
crossfade:
  durationMs: 2500
  easing: easeInOutQuad
animation: trail
`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "tcp://broker:1883", c.Mqtt.URL)
	assert.Equal(t, "home/tree/stream", c.Mqtt.Topics.Stream)
	assert.Equal(t, 250, c.Strip.NumPixels)
	assert.Equal(t, 60.0, c.Strip.FrameRateHz)
	assert.Equal(t, float32(2500), c.Crossfade.DurationMS)
	assert.Equal(t, "trail", c.Animation)

	easing, err := c.CrossfadeEasing()
	require.NoError(t, err)
	assert.Equal(t, anim.EaseInOutQuad, easing)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
mqtt:
  url: tcp://broker:1883
`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 500, c.Strip.NumPixels)
	assert.Equal(t, 30.0, c.Strip.FrameRateHz)
	assert.Equal(t, float32(5000), c.Crossfade.DurationMS)
	assert.Equal(t, "easeInOut", c.Crossfade.Easing)
	assert.Equal(t, "pulse", c.Animation)
	assert.NotEmpty(t, c.Mqtt.Topics.Stream)
	assert.NotEmpty(t, c.Mqtt.Topics.Control)
}

func TestLoadConfigRejectsUnknownEasing(t *testing.T) {
	path := writeConfig(t, `
crossfade:
  easing: wobble
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
