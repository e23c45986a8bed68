package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

//nolint:gochecknoglobals
var (
	logEvents     *prometheus.CounterVec
	logEventsOnce sync.Once
)

// LevelCounter is a zerolog hook feeding log_statements_total.
type LevelCounter struct {
	events *prometheus.CounterVec
}

// Run counts every leveled event.
func (h LevelCounter) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level == zerolog.NoLevel || h.events == nil {
		return
	}

	h.events.WithLabelValues(level.String()).Inc()
}

// NewLevelCounter registers the counter on first use. Later calls reuse the
// collector, so the labels of the first Init win.
func NewLevelCounter(cfg Log) LevelCounter {
	logEventsOnce.Do(func() {
		logEvents = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "log_statements_total",
				Help: "Log events written, by level.",
				ConstLabels: prometheus.Labels{
					"app":     cfg.AppName,
					"service": cfg.ServiceName,
				},
			},
			[]string{"level"},
		)
	})

	return LevelCounter{events: logEvents}
}
