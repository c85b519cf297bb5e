package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/admingate/core/handler"
	"github.com/dmitrymomot/admingate/core/router"
)

func TestChain(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Middleware[*router.Context] {
		return func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
			return func(ctx *router.Context) handler.Response {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	h := handler.Chain(func(ctx *router.Context) handler.Response {
		order = append(order, "handler")
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}
	}, mark("outer"), mark("inner"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := router.NewContext(w, r)

	require.NoError(t, h(ctx)(w, r))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestChain_NoMiddleware(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.Chain(func(ctx *router.Context) handler.Response {
		called = true
		return func(w http.ResponseWriter, r *http.Request) error { return nil }
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, h(router.NewContext(w, r))(w, r))
	assert.True(t, called)
}
