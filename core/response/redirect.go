package response

import (
	"net/http"

	"github.com/dmitrymomot/admingate/core/handler"
)

// RedirectSeeOther replies 303 so the browser follows up with a GET, which is
// what every form post in this service expects.
func RedirectSeeOther(url string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		http.Redirect(w, r, url, http.StatusSeeOther)
		return nil
	}
}
