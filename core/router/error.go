package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/admingate/core/handler"
)

// routeError is a router error that carries its HTTP status.
type routeError struct {
	status  int
	message string
}

func (e routeError) Error() string   { return e.message }
func (e routeError) StatusCode() int { return e.status }

var (
	ErrNotFound         error = routeError{status: http.StatusNotFound, message: "not found"}
	ErrMethodNotAllowed error = routeError{status: http.StatusMethodNotAllowed, message: "method not allowed"}
	ErrNilResponse            = errors.New("nil response")

	ErrNoContextFactory = errors.New("no context factory provided")
	ErrInvalidMethod    = errors.New("invalid http method")
	ErrInvalidPattern   = errors.New("invalid route path pattern")
)

// statusCode is implemented by errors that carry their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler writes the error as plain text.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()
	if Written(w) {
		return
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	http.Error(w, err.Error(), status)
}

// PanicError is passed to the error handler when a handler panics.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
