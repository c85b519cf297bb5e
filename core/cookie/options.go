package cookie

import "net/http"

// Attributes are the Set-Cookie attributes a Manager writes besides name and value.
type Attributes struct {
	Path     string
	Domain   string
	MaxAge   int // seconds; negative deletes the cookie
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

// Option overrides one attribute, either for every cookie (New) or for a single Set.
type Option func(*Attributes)

func WithPath(path string) Option       { return func(a *Attributes) { a.Path = path } }
func WithDomain(domain string) Option   { return func(a *Attributes) { a.Domain = domain } }
func WithMaxAge(seconds int) Option     { return func(a *Attributes) { a.MaxAge = seconds } }
func WithSecure(secure bool) Option     { return func(a *Attributes) { a.Secure = secure } }
func WithHTTPOnly(httpOnly bool) Option { return func(a *Attributes) { a.HttpOnly = httpOnly } }

func WithSameSite(mode http.SameSite) Option {
	return func(a *Attributes) { a.SameSite = mode }
}

// with returns a copy of a with opts applied.
func (a Attributes) with(opts []Option) Attributes {
	for _, opt := range opts {
		opt(&a)
	}
	return a
}
