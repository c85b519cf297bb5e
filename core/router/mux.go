package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/dmitrymomot/admingate/core/handler"
)

// knownMethods is the order used for the Allow header of 405 responses.
var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// mux is the Router implementation on top of http.ServeMux.
// Inline routers created by With and Group share the root's ServeMux.
type mux[C handler.Context] struct {
	serveMux     *http.ServeMux
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
	routes       []Route
	hasRoutes    bool
	catchAll     handler.HandlerFunc[C]
	parent       *mux[C]
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		serveMux:     http.NewServeMux(),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		var zero C
		if _, ok := any(zero).(*Context); !ok {
			panic(ErrNoContextFactory)
		}
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			return any(NewContext(w, r)).(C)
		}
	}

	m.serveMux.HandleFunc("/", m.serve(m.fallback))

	return m
}

// root returns the router that owns the ServeMux.
func (m *mux[C]) root() *mux[C] {
	for m.parent != nil {
		m = m.parent
	}
	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.root().serveMux.ServeHTTP(w, r)
}

// serve adapts a routed handler to net/http, applying global middleware,
// recovering panics and routing errors to the error handler.
func (m *mux[C]) serve(h handler.HandlerFunc[C]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		ctx := m.newContext(ww, r)

		defer func() {
			if p := recover(); p != nil {
				panicErr := &panicError{value: p, stack: debug.Stack()}
				if ww.Written() {
					m.logger.Error("panic after response written",
						"value", panicErr.value,
						"stack", string(panicErr.stack),
						"path", r.URL.Path,
						"method", r.Method,
						"status", ww.Status(),
					)
					return
				}
				m.errorHandler(ctx, panicErr)
			}
		}()

		fn := handler.Chain(h, m.middlewares...)

		response := fn(ctx)
		if response == nil {
			m.errorHandler(ctx, ErrNilResponse)
			return
		}

		if err := response(ww, r); err != nil {
			if ww.Written() {
				m.logger.Error("error after response written",
					"error", err,
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			m.errorHandler(ctx, err)
		}
	}
}

// fallback answers requests no pattern matched: 405 with an Allow header when
// the path exists under another method, 404 otherwise.
func (m *mux[C]) fallback(ctx C) handler.Response {
	if m.catchAll != nil {
		return m.catchAll(ctx)
	}

	r := ctx.Request()
	var allowed []string
	for _, method := range knownMethods {
		probe := r.Clone(r.Context())
		probe.Method = method
		if _, pattern := m.serveMux.Handler(probe); pattern != "" && pattern != "/" {
			allowed = append(allowed, method)
		}
	}

	if len(allowed) > 0 {
		ctx.ResponseWriter().Header().Set("Allow", strings.Join(allowed, ", "))
		return func(w http.ResponseWriter, r *http.Request) error {
			return ErrMethodNotAllowed
		}
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		return ErrNotFound
	}
}

// Get registers a handler for GET requests. GET routes also answer HEAD.
func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

// Put registers a handler for PUT requests.
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

// Delete registers a handler for DELETE requests.
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

// Patch registers a handler for PATCH requests.
func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

// Options registers a handler for OPTIONS requests.
func (m *mux[C]) Options(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodOptions, pattern, h)
}

// Handle registers a handler for all HTTP methods.
// Handling "/" replaces the built-in not found response.
func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle("", pattern, h)
}

// Method registers a handler for one or more specific HTTP methods.
func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}

	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(method)
		if !slices.Contains(knownMethods, method) {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, h)
	}
}

// Use appends global middleware. It must be called before any route is registered.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.parent != nil {
		m.middlewares = append(m.middlewares, middlewares...)
		return
	}
	if m.hasRoutes {
		panic("router: all middlewares must be defined before routes on a mux")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// With creates an inline router whose routes get additional middleware.
func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		parent:      m,
		middlewares: slices.Clone(middlewares),
	}
}

// Group creates an inline router for grouping routes under shared middleware.
func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	im := m.With()
	if fn != nil {
		fn(im)
	}
	return im
}

// Routes returns all registered routes in registration order.
func (m *mux[C]) Routes() []Route {
	return slices.Clone(m.root().routes)
}

// handle registers fn on the root ServeMux wrapped with inline middleware.
func (m *mux[C]) handle(method, pattern string, fn handler.HandlerFunc[C]) {
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}

	// Inline middlewares are fixed at registration, outermost router first.
	var inline []handler.Middleware[C]
	for curr := m; curr.parent != nil; curr = curr.parent {
		inline = append(slices.Clone(curr.middlewares), inline...)
	}
	h := handler.Chain(fn, inline...)

	root := m.root()
	root.hasRoutes = true
	root.routes = append(root.routes, Route{Method: method, Pattern: pattern})

	if method == "" && pattern == "/" {
		root.catchAll = h
		return
	}

	if method != "" {
		pattern = method + " " + pattern
	}
	root.serveMux.HandleFunc(pattern, root.serve(h))
}
