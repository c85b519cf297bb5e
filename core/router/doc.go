// Package router provides a generic HTTP router built on net/http.ServeMux.
//
// Handlers receive a typed context and return a handler.Response. The router
// creates the context, runs middleware, renders the response and sends any error
// to a single error handler. Panics in handlers are recovered and reported to the
// error handler as PanicError.
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//	)
//	r.Use(middleware.RequestID[*router.Context]())
//
//	r.Get("/{$}", dashboard)
//	r.Post("/login", login)
//
//	r.Group(func(r router.Router[*router.Context]) {
//		r.Use(requireSession)
//		r.Get("/settings", settings)
//	})
//
// Patterns use ServeMux syntax without the method: "/{$}" matches only the root,
// "/items/{id}" binds a value read through ctx.Param("id"). Unmatched paths produce
// ErrNotFound; paths registered under other methods produce ErrMethodNotAllowed
// with an Allow header. Registering Handle("/", h) replaces the not found handling.
//
// Custom context types need WithContextFactory.
package router
