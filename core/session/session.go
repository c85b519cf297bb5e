package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"time"
)

// Session is an authenticated admin session.
// Only the id and creation instant are tracked; sessions carry no user data.
type Session struct {
	// ID is the opaque token handed to the client (cookie value).
	ID string

	CreatedAt time.Time
}

// ExpiresAt returns the instant after which the session is no longer valid.
func (s Session) ExpiresAt(ttl time.Duration) time.Time {
	return s.CreatedAt.Add(ttl)
}

// expired reports whether the session is older than ttl at now.
// A session aged exactly ttl is still valid.
func (s Session) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CreatedAt) > ttl
}

// tokenKey is the table key for a session id.
type tokenKey [sha256.Size]byte

// keyOf hashes the id so lookups never compare attacker-controlled bytes
// against stored ids directly.
func keyOf(id string) tokenKey {
	return sha256.Sum256([]byte(id))
}

// generateToken creates a cryptographically secure random token using 32 bytes (256 bits)
// encoded as base64 URL-safe string without padding.
// crypto/rand.Read never returns an error; a broken entropy source crashes the process.
func generateToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
