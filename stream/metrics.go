package stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	framesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "animtx_frames_published_total",
		Help: "Frames successfully published to the stream topic.",
	})
	publishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "animtx_publish_errors_total",
		Help: "Frame publishes that failed.",
	})
	crossfades = promauto.NewCounter(prometheus.CounterOpts{
		Name: "animtx_crossfades_total",
		Help: "Animation crossfades requested over the control topic.",
	})
)
