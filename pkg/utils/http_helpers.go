package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"techhelp-dashboard/pkg/api"
	apperrors "techhelp-dashboard/pkg/errors"
)

func SuccessResponse[T any](ctx echo.Context, body T, message string, code int) error {
	return api.SuccessOne(ctx, code, message, body)
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return api.Failure(c, httpErr.Code, httpErr.Message, httpErr.Details)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Field(), e.Tag()))
		}
		return api.Failure(c, http.StatusBadRequest, "Erro de validação: "+strings.Join(msgs, "; "), nil)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return api.Failure(c, echoErr.Code, fmt.Sprint(echoErr.Message), nil)
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return api.Failure(c, http.StatusInternalServerError, "Erro interno do servidor", nil)
}
