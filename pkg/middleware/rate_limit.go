package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"techhelp-dashboard/pkg/config"
	apperrors "techhelp-dashboard/pkg/errors"
	"techhelp-dashboard/pkg/utils"
)

// RateLimiter limits requests per client IP.
func RateLimiter(cfg config.RateLimitConfig, logger *zap.Logger) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.PerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: 3 * time.Minute,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusForbidden, "Não foi possível identificar o cliente", err, nil), logger)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusTooManyRequests, "Muitas requisições, tente novamente em instantes", nil, map[string]interface{}{"client": identifier}), logger)
		},
	})
}
