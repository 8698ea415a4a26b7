package monitoring

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "route"},
	)

	ResourceFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_resource_fetch_total",
			Help: "Dashboard resource fetches by resource and outcome",
		},
		[]string{"resource", "outcome"},
	)

	ResourceWarningsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_resource_warnings_total",
			Help: "Out-of-range values found in accepted dashboard resources",
		},
		[]string{"resource"},
	)

	DashboardLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_loads_total",
			Help: "Dashboard page loads by terminal view state",
		},
		[]string{"state"},
	)

	DashboardLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_load_duration_seconds",
			Help:    "Time from the first fetch to the terminal view state",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			ResourceFetchTotal,
			ResourceWarningsTotal,
			DashboardLoadsTotal,
			DashboardLoadDuration,
		)
	})
}

func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			var httpErr *echo.HTTPError
			if err != nil && errors.As(err, &httpErr) {
				status = httpErr.Code
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			RequestCounter.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			RequestDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func PrometheusHandler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
