// Package metrics holds the Prometheus metrics of the application.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var collectors = []prometheus.Collector{
	requestCount,
	requestDuration,
	SelectorNavigations,
	Calculations,
}

// Register registers all Prometheus metrics with the default registry.
func Register() error {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			Unregister()
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// Unregister unregisters all Prometheus metrics.
//
// This is needed to cleanly exit.
func Unregister() bool {
	ok := true
	for _, c := range collectors {
		ok = prometheus.Unregister(c) && ok
	}

	return ok
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// SelectorNavigations counts month selector changes, partitioned by action.
var SelectorNavigations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "selector_navigations_total",
		Help: "How many times the selected month was changed, partitioned by action.",
	},
	[]string{"action"},
)

// Calculations counts budget calculations, partitioned by calculation and result.
var Calculations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "calculations_total",
		Help: "How many budget calculations were performed, partitioned by calculation and result.",
	},
	[]string{"calculation", "result"},
)

// Middleware updates the request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Use the route template to keep the cardinality low.
		// Unmatched routes are all counted together
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.FullPath()
		if url == "" {
			url = "unmatched"
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}
