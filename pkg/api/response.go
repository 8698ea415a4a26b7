package api

import (
	"github.com/labstack/echo/v4"
)

// Response is the JSON envelope shared by every API endpoint.
type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

// SuccessOne writes a single object with status=true.
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

// Failure writes an envelope with status=false and an optional body.
func Failure(c echo.Context, code int, message string, body interface{}) error {
	return c.JSON(code, Response[interface{}]{
		Status:  false,
		Message: message,
		Body:    body,
	})
}
