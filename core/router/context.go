package router

import (
	"context"
	"net/http"
	"time"
)

// Context is the default handler.Context implementation.
// Values set with SetValue shadow values of the request context.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	values map[any]any
}

// NewContext creates a Context for a single request.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

// Request returns the HTTP request.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the response writer.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the path value bound to key by the route pattern.
func (c *Context) Param(key string) string {
	if c.r == nil {
		return ""
	}
	return c.r.PathValue(key)
}

// SetValue stores a request-scoped value. Not safe for concurrent use.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

func (c *Context) Deadline() (time.Time, bool) {
	return c.parent().Deadline()
}

func (c *Context) Done() <-chan struct{} {
	return c.parent().Done()
}

func (c *Context) Err() error {
	return c.parent().Err()
}

func (c *Context) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.parent().Value(key)
}

func (c *Context) parent() context.Context {
	if c.r == nil {
		return context.Background()
	}
	return c.r.Context()
}
