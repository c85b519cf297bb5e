package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/admingate/core/handler"
)

// JSON replies 200 with v encoded as JSON.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus replies with status and v encoded as JSON.
// Status 0 means 200, or 204 when v is nil. Bodies are never written for 204 or 304.
func JSONWithStatus(v any, status int) handler.Response {
	if status == 0 {
		status = http.StatusOK
		if v == nil {
			status = http.StatusNoContent
		}
	}
	return func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		if status == http.StatusNoContent || status == http.StatusNotModified {
			return nil
		}
		return json.NewEncoder(w).Encode(v)
	}
}
