package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"techhelp-dashboard/pkg/config"
)

func TestRateLimiter_DeniesOverBurst(t *testing.T) {
	e := echo.New()
	e.Use(RateLimiter(config.RateLimitConfig{PerSecond: 0.001, Burst: 2}, zap.NewNop()))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestInjectLogger_TagsRequestID(t *testing.T) {
	e := echo.New()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: func() string { return "req-1" }}))
	e.Use(InjectLogger(zap.NewNop()))

	var got *zap.Logger
	e.GET("/", func(c echo.Context) error {
		got = LoggerFrom(c, nil)
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotNil(t, got)
	assert.Equal(t, "req-1", rec.Header().Get(echo.HeaderXRequestID))
}

func TestLoggerFrom_Fallback(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	fallback := zap.NewNop()

	assert.Same(t, fallback, LoggerFrom(c, fallback))
}
