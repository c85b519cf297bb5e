package middleware_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/admingate/core/handler"
	"github.com/dmitrymomot/admingate/core/response"
	"github.com/dmitrymomot/admingate/core/router"
	"github.com/dmitrymomot/admingate/middleware"
)

func echoBody(ctx *router.Context) handler.Response {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return response.Error(response.ErrRequestEntityTooLarge)
		}
		return response.Error(err)
	}
	return response.String(string(body))
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	newRouter := func() router.Router[*router.Context] {
		r := router.New[*router.Context]()
		r.Use(middleware.BodyLimitWithSize[*router.Context](16))
		r.Post("/login", echoBody)
		return r
	}

	t.Run("within limit", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("password=secret1")))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "password=secret1", w.Body.String())
	})

	t.Run("declared length over limit", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(strings.Repeat("x", 17))))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("undeclared length over limit", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(strings.Repeat("x", 64)))
		req.ContentLength = -1
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("default limit", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Use(middleware.BodyLimit[*router.Context]())
		r.Post("/login", echoBody)

		w := httptest.NewRecorder()
		body := strings.Repeat("x", int(middleware.DefaultBodyLimit)+1)
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
