package health

import (
	"time"

	"github.com/dmitrymomot/admingate/core/handler"
	"github.com/dmitrymomot/admingate/core/response"
)

// StatusHealthy is the status reported while the process is up.
const StatusHealthy = "healthy"

// Document is the JSON body of the status endpoint.
type Document struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Status returns a handler answering {"status":"healthy","timestamp":...}.
// now defaults to time.Now; the timestamp is rendered in UTC.
func Status[C handler.Context](now func() time.Time) handler.HandlerFunc[C] {
	if now == nil {
		now = time.Now
	}
	return func(C) handler.Response {
		return response.JSON(Document{
			Status:    StatusHealthy,
			Timestamp: now().UTC(),
		})
	}
}
