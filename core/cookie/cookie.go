package cookie

import (
	"errors"
	"net/http"
	"time"
)

// MaxCookieSize is the maximum size of a serialized Set-Cookie value (4KB).
const MaxCookieSize = 4096

// Manager sets, reads and deletes HTTP cookies with shared default attributes.
// Safe for concurrent use; defaults are immutable after New.
type Manager struct {
	defaults Attributes
	maxSize  int
}

// New creates a cookie manager. Defaults are Path "/", HttpOnly and SameSite=Lax;
// opts override them for every cookie the manager writes.
func New(opts ...Option) *Manager {
	defaults := Attributes{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{defaults: defaults.with(opts), maxSize: MaxCookieSize}
}

// Defaults returns the attributes applied to every cookie.
func (m *Manager) Defaults() Attributes {
	return m.defaults
}

// Set writes a cookie. Per-call opts override the manager defaults.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if name == "" {
		return ErrEmptyName
	}

	attrs := m.defaults.with(opts)
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     attrs.Path,
		Domain:   attrs.Domain,
		MaxAge:   attrs.MaxAge,
		Secure:   attrs.Secure,
		HttpOnly: attrs.HttpOnly,
		SameSite: attrs.SameSite,
	}

	if size := len(c.String()); size > m.maxSize {
		return ErrCookieTooLarge{Name: name, Size: size, Max: m.maxSize}
	}

	http.SetCookie(w, c)
	return nil
}

// Get returns the value of the named cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	switch {
	case errors.Is(err, http.ErrNoCookie):
		return "", ErrCookieNotFound
	case err != nil:
		return "", err
	case c.Value == "":
		return "", ErrCookieNotFound
	}
	return c.Value, nil
}

// Delete instructs the client to drop the named cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	d := m.defaults
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Path:     d.Path,
		Domain:   d.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   d.Secure,
		HttpOnly: d.HttpOnly,
		SameSite: d.SameSite,
	})
}
