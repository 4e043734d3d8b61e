package monitoring

import (
	"strconv"
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

	RegenerationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_regenerations_total",
			Help: "Schedule regeneration runs by trigger reason and outcome",
		},
		[]string{"reason", "status"},
	)

	ScheduleBlocksCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "schedule_blocks_created_total",
			Help: "Total schedule blocks written by regenerations",
		},
	)

	AIPredictionCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ai_predictions_total",
			Help: "Total success-probability predictions served",
		},
	)

	AITrainingCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ai_training_sessions_total",
			Help: "Total training sessions fed to the study AI",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(RegenerationCounter)
	prometheus.MustRegister(ScheduleBlocksCreated)
	prometheus.MustRegister(AIPredictionCounter)
	prometheus.MustRegister(AITrainingCounter)
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
