package metrics

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resume"

var (
	once sync.Once

	renderTotal           *prometheus.CounterVec
	renderDurationSeconds *prometheus.HistogramVec
	extractTotal          *prometheus.CounterVec
	extractDuration       prometheus.Histogram
)

func initMetrics() {
	once.Do(func() {
		renderTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "total",
			Help:      "Total resume renders by template, format and outcome",
		}, []string{"template", "format", "outcome"})

		renderDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Duration of resume renders",
			Buckets:   prometheus.DefBuckets,
		}, []string{"format"})

		extractTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "extract",
			Name:      "total",
			Help:      "Total resume extractions by outcome",
		}, []string{"outcome"})

		extractDuration = promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "extract",
			Name:      "duration_seconds",
			Help:      "Duration of resume extractions including the model call",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		})
	})
}

// ObserveRender records one render attempt.
func ObserveRender(template, format string, ok bool, elapsed time.Duration) {
	initMetrics()
	renderTotal.WithLabelValues(template, format, outcome(ok)).Inc()
	renderDurationSeconds.WithLabelValues(format).Observe(elapsed.Seconds())
}

// ObserveExtract records one extraction attempt.
func ObserveExtract(ok bool, elapsed time.Duration) {
	initMetrics()
	extractTotal.WithLabelValues(outcome(ok)).Inc()
	extractDuration.Observe(elapsed.Seconds())
}

// Handler exposes the default registry in Prometheus text format.
func Handler() gin.HandlerFunc {
	initMetrics()
	return gin.WrapH(promhttp.Handler())
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
