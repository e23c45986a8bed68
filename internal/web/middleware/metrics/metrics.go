// Package metrics provides the HTTP request metrics middleware.
package metrics

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requests     *prometheus.CounterVec   //nolint:gochecknoglobals
	duration     *prometheus.HistogramVec //nolint:gochecknoglobals
	registerOnce sync.Once                //nolint:gochecknoglobals
)

// Config for the metrics middleware.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	Next func(c *fiber.Ctx) bool

	// ServiceName is attached as constant label.
	ServiceName string
}

// New counts requests and observes their duration, labelled by method,
// matched route and status. The collectors are registered once per process.
func New(cfg Config) fiber.Handler {
	registerOnce.Do(func() {
		labels := prometheus.Labels{"service": cfg.ServiceName}

		requests = promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Number of HTTP requests, by method, route and status.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"})

		duration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests, by method and route.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"})
	})

	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		// Chain errors are normally rendered by the access log middleware
		// further down, so the response status is final here.
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		route := c.Route().Path
		method := c.Method()

		requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}
