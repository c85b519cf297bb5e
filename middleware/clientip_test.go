package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/admingate/core/handler"
	"github.com/dmitrymomot/admingate/core/router"
	"github.com/dmitrymomot/admingate/middleware"
)

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		trust bool
		want  string
	}{
		{name: "ignores proxy headers by default", trust: false, want: "192.0.2.10"},
		{name: "trusts proxy headers when enabled", trust: true, want: "198.51.100.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := router.New[*router.Context]()
			r.Use(middleware.ClientIPWithConfig[*router.Context](middleware.ClientIPConfig{
				TrustProxyHeaders: tt.trust,
			}))

			var got string
			r.Get("/", func(ctx *router.Context) handler.Response {
				got, _ = middleware.GetClientIP(ctx)
				return ok()
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.10:4321"
			req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
			r.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetClientIP_Missing(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/", func(ctx *router.Context) handler.Response {
		_, found := middleware.GetClientIP(ctx)
		assert.False(t, found)
		return ok()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
