package response

import (
	"maps"
	"net/http"
)

// HTTPError is an error with an HTTP status and a JSON body of the form
// {"code": ..., "message": ..., "details": ...}. Values are copied on every
// With* call, so predefined errors are never mutated.
type HTTPError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// NewHTTPError returns an error for status with the standard status text as message.
func NewHTTPError(status int, code string) HTTPError {
	return HTTPError{Status: status, Code: code, Message: http.StatusText(status)}
}

func (e HTTPError) Error() string { return e.Message }

// StatusCode reports the HTTP status; the logging middleware reads it.
func (e HTTPError) StatusCode() int { return e.Status }

func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

// WithError records err under details["cause"] without touching the receiver's map.
func (e HTTPError) WithError(err error) HTTPError {
	details := make(map[string]any, len(e.Details)+1)
	maps.Copy(details, e.Details)
	details["cause"] = err.Error()
	e.Details = details
	return e
}

var (
	ErrBadRequest            = NewHTTPError(http.StatusBadRequest, "bad_request")
	ErrUnauthorized          = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden             = NewHTTPError(http.StatusForbidden, "forbidden")
	ErrNotFound              = NewHTTPError(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed      = NewHTTPError(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrRequestEntityTooLarge = NewHTTPError(http.StatusRequestEntityTooLarge, "request_entity_too_large")
	ErrInternalServerError   = NewHTTPError(http.StatusInternalServerError, "internal_server_error")
	ErrServiceUnavailable    = NewHTTPError(http.StatusServiceUnavailable, "service_unavailable")

	// ErrValidationFailed is returned for form input that fails validation.
	ErrValidationFailed = NewHTTPError(http.StatusUnprocessableEntity, "validation_failed").WithMessage("Validation failed")
)

// knownErrors is indexed by status when an arbitrary error is converted.
var knownErrors = func() map[int]HTTPError {
	m := make(map[int]HTTPError)
	for _, e := range []HTTPError{
		ErrBadRequest,
		ErrUnauthorized,
		ErrForbidden,
		ErrNotFound,
		ErrMethodNotAllowed,
		ErrRequestEntityTooLarge,
		ErrValidationFailed,
		ErrInternalServerError,
		ErrServiceUnavailable,
	} {
		m[e.Status] = e
	}
	return m
}()
