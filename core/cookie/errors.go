package cookie

import (
	"errors"
	"strconv"
)

var (
	// ErrCookieNotFound is returned by Get for a missing or empty cookie.
	ErrCookieNotFound = errors.New("cookie: not found")
	ErrEmptyName      = errors.New("cookie: empty name")
)

// ErrCookieTooLarge is returned by Set when the serialized cookie exceeds Max bytes.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

func (e ErrCookieTooLarge) Error() string {
	return "cookie: " + strconv.Quote(e.Name) + " is " + strconv.Itoa(e.Size) +
		" bytes, limit " + strconv.Itoa(e.Max)
}
