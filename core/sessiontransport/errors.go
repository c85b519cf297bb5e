package sessiontransport

import "errors"

var (
	// ErrNoToken is returned when no session id is present in the request
	ErrNoToken = errors.New("sessiontransport: no token")
)
