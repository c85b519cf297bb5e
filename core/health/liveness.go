package health

import (
	"github.com/dmitrymomot/admingate/core/handler"
	"github.com/dmitrymomot/admingate/core/response"
)

// Liveness reports that the process is serving requests.
// Always "ALIVE" with 200 OK. No dependency checks.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}
