package response

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrymomot/admingate/core/handler"
)

// WithCache sets caching headers before resp renders. maxAge <= 0 forbids
// caching, which is what pages reflecting session state need.
func WithCache(resp handler.Response, maxAge time.Duration) handler.Response {
	if resp == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		h := w.Header()
		if maxAge <= 0 {
			h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")
		} else {
			h.Set("Cache-Control", "public, max-age="+strconv.Itoa(int(maxAge/time.Second)))
			h.Set("Expires", time.Now().Add(maxAge).UTC().Format(http.TimeFormat))
		}
		return resp(w, r)
	}
}
