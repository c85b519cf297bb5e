package response

import (
	"net/http"

	"github.com/dmitrymomot/admingate/core/handler"
)

// Render writes resp to the context's writer. If resp fails before anything
// was sent, the client gets a bare 500.
func Render(ctx handler.Context, resp handler.Response) {
	if err := resp(ctx.ResponseWriter(), ctx.Request()); err != nil {
		http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
	}
}

// String replies 200 with a text/plain body.
func String(body string) handler.Response {
	return func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(body))
		return err
	}
}
