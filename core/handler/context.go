package handler

import (
	"context"
	"net/http"
)

// Context is the request context seen by handlers and middleware.
// The router's default implementation is router.Context.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
