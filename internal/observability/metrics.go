// Package observability holds the Prometheus instrumentation of the bridge.
package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthbridge",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by route and status code.",
	}, []string{"route", "status"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "healthbridge",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	sampleWrittenGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "healthbridge",
		Subsystem: "store",
		Name:      "last_sample_written_timestamp_seconds",
		Help:      "Unix timestamp of the most recent sample written to the store.",
	})
)

func init() {
	prometheus.MustRegister(requestCounter, requestDuration, sampleWrittenGauge)
}

// Middleware instruments every request with a counter and a latency
// histogram keyed by route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestCounter.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// RecordSampleWritten updates the write watermark gauge.
func RecordSampleWritten(ts time.Time) {
	if ts.IsZero() {
		return
	}
	sampleWrittenGauge.Set(float64(ts.Unix()))
}
