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

	GoalMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goal_mutations_total",
			Help: "Goal collection mutations by operation and result",
		},
		[]string{"op", "result"},
	)

	ScheduleGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_generations_total",
			Help: "Study schedule generation attempts by result",
		},
		[]string{"result"},
	)

	// 生成耗时可能很长，桶比 HTTP 请求更宽
	ScheduleGenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "schedule_generation_duration_seconds",
			Help:    "Duration of study schedule generation calls",
			Buckets: []float64{1, 2, 5, 10, 20, 40, 80},
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(GoalMutations)
		prometheus.MustRegister(ScheduleGenerations)
		prometheus.MustRegister(ScheduleGenerationDuration)
	})
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
