// Package handler defines the typed handler abstractions shared by the router,
// the response helpers and middleware.
//
// A handler receives a Context and returns a Response. The Response is a plain
// render function, so handlers decide what to send and the router decides when:
//
//	func dashboard(ctx handler.Context) handler.Response {
//		return response.JSON(map[string]bool{"authenticated": true})
//	}
//
// Middleware wraps a HandlerFunc and may short-circuit by returning its own Response:
//
//	func requireHeader[C handler.Context](name string) handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				if ctx.Request().Header.Get(name) == "" {
//					return response.Error(response.ErrBadRequest)
//				}
//				return next(ctx)
//			}
//		}
//	}
//
// Chain composes middleware with the first one outermost.
package handler
