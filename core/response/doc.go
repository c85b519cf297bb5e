// Package response builds the handler.Response values this service replies with:
// plain text, JSON, 303 redirects and errors.
//
//	func status(ctx handler.Context) handler.Response {
//		return response.JSON(map[string]bool{"authenticated": true})
//	}
//
//	func login(ctx handler.Context) handler.Response {
//		if ctx.Request().FormValue("password") == "" {
//			return response.Error(response.ErrValidationFailed.WithMessage("Password is required"))
//		}
//		return response.RedirectSeeOther("/")
//	}
//
// # Errors
//
// HTTPError carries a status, a machine-readable code, a message and optional details.
// Error returns a Response that fails with the given error so the router's error handler
// renders it. JSONErrorHandler writes the error as JSON.
// Errors that are not HTTPError are mapped through a StatusCode() int method when present
// and become 500 otherwise.
package response
