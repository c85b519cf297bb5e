package admin

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/admingate/core/handler"
	"github.com/dmitrymomot/admingate/core/logger"
	"github.com/dmitrymomot/admingate/core/response"
	"github.com/dmitrymomot/admingate/core/router"
	"github.com/dmitrymomot/admingate/middleware"
)

const (
	loginPath  = "/login"
	logoutPath = "/logout"
	homePath   = "/"

	passwordField = "password"
)

// SessionStatus is the JSON body of the login and dashboard pages.
type SessionStatus struct {
	Authenticated bool `json:"authenticated"`
}

// APIInfo is the JSON body of GET /api.
type APIInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// Version of the HTTP API.
const Version = "0.0.1"

var errPasswordRequired = response.ErrValidationFailed.
	WithMessage("Password is required").
	WithDetails(map[string]any{"field": passwordField})

var errInvalidPassword = response.ErrUnauthorized.WithMessage("Invalid password")

// login checks the submitted password and, on success, starts a session and redirects home.
func (a *App) login(ctx *router.Context) handler.Response {
	r := ctx.Request()
	// ParseMultipartForm reports ErrNotMultipart in place of urlencoded parse
	// errors, so the urlencoded body is parsed on its own first.
	if err := r.ParseForm(); err != nil {
		return formError(err)
	}
	if err := r.ParseMultipartForm(a.config.MaxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return formError(err)
	}

	password := r.PostForm.Get(passwordField)
	if password == "" {
		return response.Error(errPasswordRequired)
	}

	ip, _ := middleware.GetClientIP(ctx)
	if !a.verifier.Verify(password) {
		a.logger.WarnContext(ctx, "admin login rejected",
			logger.Component("admin"),
			logger.Event("login"),
			logger.Result("failure"),
			logger.ClientIP(ip),
		)
		return response.Error(errInvalidPassword)
	}

	// A fresh login supersedes whatever session the browser still carries.
	if previous, err := a.transport.Extract(r); err == nil {
		a.sessions.Delete(previous)
	}

	id := a.sessions.Create()
	a.logger.InfoContext(ctx, "admin login succeeded",
		logger.Component("admin"),
		logger.Event("login"),
		logger.Result("success"),
		logger.ClientIP(ip),
		logger.Count("active_sessions", a.sessions.Len()),
	)

	return func(w http.ResponseWriter, r *http.Request) error {
		if err := a.transport.Embed(w, id); err != nil {
			a.sessions.Delete(id)
			return err
		}
		return response.RedirectSeeOther(homePath)(w, r)
	}
}

// logout ends the caller's session, if any, and redirects to the login page.
func (a *App) logout(ctx *router.Context) handler.Response {
	id, err := a.transport.Extract(ctx.Request())
	hadSession := err == nil
	if hadSession {
		a.sessions.Delete(id)
		a.logger.InfoContext(ctx, "admin logout",
			logger.Component("admin"),
			logger.Event("logout"),
		)
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		if hadSession {
			a.transport.Revoke(w)
		}
		return response.RedirectSeeOther(loginPath)(w, r)
	}
}

func (a *App) loginPage(*router.Context) handler.Response {
	return response.WithCache(response.JSON(SessionStatus{Authenticated: false}), 0)
}

func (a *App) dashboard(*router.Context) handler.Response {
	return response.WithCache(response.JSON(SessionStatus{Authenticated: true}), 0)
}

func (a *App) apiInfo(*router.Context) handler.Response {
	return response.JSON(APIInfo{
		Message: "API Server",
		Version: Version,
		Status:  "healthy",
	})
}

// formError maps a body read past the limit to 413 and anything else to 400.
func formError(err error) handler.Response {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return response.Error(response.ErrRequestEntityTooLarge)
	}
	return response.Error(response.ErrBadRequest.WithError(err))
}
