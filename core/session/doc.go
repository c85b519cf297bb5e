// Package session provides an in-memory session table for password-gated areas.
//
// A Manager issues opaque session ids after the caller has verified a credential,
// validates ids presented by clients and removes sessions on logout or expiry.
// Sessions live for a fixed TTL measured from creation (24 hours by default);
// there is no sliding expiration.
//
// # Basic Usage
//
//	manager := session.New(session.WithTTL(24 * time.Hour))
//
//	// after the password has been verified
//	id := manager.Create()
//
//	// on every protected request
//	if !manager.Validate(id) {
//		// treat as "never logged in"
//	}
//
//	// on logout
//	manager.Delete(id)
//
// # Expiry
//
// Expired sessions are never returned. They are deleted lazily when Validate or Get
// encounters them, opportunistically by a sweep on every Create, and periodically
// when the janitor is running:
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(manager.Run(ctx, 10*time.Minute))
//
// # Scope
//
// The table lives in process memory. Sessions are lost on restart and are not shared
// between instances.
//
// Ids are 32 random bytes from crypto/rand encoded as base64url. The table is keyed
// by the SHA-256 digest of the id.
package session
