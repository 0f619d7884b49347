package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	AssessmentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_total",
			Help: "Completed assessments by domain and overall knowledge level",
		},
		[]string{"domain", "overall_level"},
	)

	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "awareness_predictions_total",
			Help: "Awareness classifier outcomes by domain and label",
		},
		[]string{"domain", "label"},
	)

	PersistFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_persist_failures_total",
			Help: "Assessment results that could not be stored",
		},
		[]string{"domain"},
	)
)

var initOnce sync.Once

// Init 注册全部指标，重复调用无副作用
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(AssessmentsTotal)
		prometheus.MustRegister(PredictionsTotal)
		prometheus.MustRegister(PersistFailures)
	})
}

// ObserveAssessment records one completed assessment. saveFailed is set only
// when a configured store rejected the write.
func ObserveAssessment(domain, overallLevel, awareness string, saveFailed bool) {
	AssessmentsTotal.WithLabelValues(domain, overallLevel).Inc()
	PredictionsTotal.WithLabelValues(domain, awareness).Inc()
	if saveFailed {
		PersistFailures.WithLabelValues(domain).Inc()
	}
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
