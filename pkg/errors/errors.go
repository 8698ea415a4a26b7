package errors

import "fmt"

var (
	// Resource loading
	ErrResourceUnavailable = fmt.Errorf("resource unavailable")
	ErrMalformedResource   = fmt.Errorf("resource is not valid JSON")
	ErrResourceRejected    = fmt.Errorf("resource rejected")
	ErrLoadTimedOut        = fmt.Errorf("dashboard load timed out")

	// Dashboard
	ErrDashboardUnavailable = fmt.Errorf("dashboard data unavailable")

	// General
	ErrNotFound   = fmt.Errorf("not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

// HttpError carries the status code and the user-facing message that
// utils.ErrorResponse sends back. Err is logged, never sent.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewInternalError(message string) *HttpError {
	return &HttpError{Code: 500, Message: message}
}

// InvalidInputError is returned for input that fails parsing before validation.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
