// Package credential verifies a plaintext secret against a stored bcrypt hash.
//
// Verification never fails loudly: empty input, malformed hashes and mismatches all
// yield false. The comparison is bcrypt's, which is constant-time over the hash.
package credential

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt cost used for new hashes.
	DefaultCost = 10
	// MinPasswordLength is the shortest password Hash accepts.
	MinPasswordLength = 8
)

var (
	// ErrEmptyPassword is returned when hashing an empty password.
	ErrEmptyPassword = errors.New("password cannot be empty")
	// ErrPasswordTooShort is returned when the password is shorter than MinPasswordLength.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	// ErrInvalidCost is returned for a bcrypt cost outside the supported range.
	ErrInvalidCost = errors.New("invalid bcrypt cost")
	// ErrInvalidHash is returned when a configured hash is not a bcrypt hash.
	ErrInvalidHash = errors.New("invalid password hash format")
)

// Verifier checks a submitted password against a stored secret.
type Verifier interface {
	Verify(password string) bool
}

// Hash creates a bcrypt hash of password with the given cost.
func Hash(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return "", ErrInvalidCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hash.
func Verify(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsValidHash reports whether hash is a well-formed bcrypt hash.
func IsValidHash(hash string) bool {
	_, err := bcrypt.Cost([]byte(hash))
	return err == nil
}

// Bcrypt verifies passwords against a single configured hash.
type Bcrypt struct {
	hash string
}

// NewBcrypt returns a Verifier bound to hash. A malformed hash is accepted here
// and simply never verifies; use IsValidHash to reject it at startup.
func NewBcrypt(hash string) *Bcrypt {
	return &Bcrypt{hash: hash}
}

// Verify implements Verifier.
func (b *Bcrypt) Verify(password string) bool {
	return Verify(password, b.hash)
}

// Ready returns nil when the bound hash is usable. Suitable as a readiness check.
func (b *Bcrypt) Ready() error {
	if !IsValidHash(b.hash) {
		return ErrInvalidHash
	}
	return nil
}
