package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/admingate/core/handler"
)

// Error returns a response that fails with err, handing it to the router's
// error handler.
func Error(err error) handler.Response {
	return func(http.ResponseWriter, *http.Request) error {
		return err
	}
}

// asHTTPError unwraps an HTTPError from err. Other errors are classified by an
// optional StatusCode() int method and fall back to 500; the original message
// is kept as details["cause"].
func asHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	base, ok := knownErrors[status]
	if !ok {
		base = ErrInternalServerError
	}
	return base.WithError(err)
}

// JSONErrorHandler writes the error as an HTTPError document.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	e := asHTTPError(err)
	Render(ctx, JSONWithStatus(e, e.Status))
}
